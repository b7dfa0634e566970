// Package dialogue builds the per-game vault of AI flavor lines by asking an
// ordered chain of text-generation providers for one batched JSON document.
package dialogue

import (
	"context"
	"errors"
)

// Provider is a single text-generation backend
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	errEmptyResponse = errors.New("empty response")
	errNoLines       = errors.New("response contained no usable lines")
)
