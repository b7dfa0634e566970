package dialogue

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"sanguo/internal/config"
	"sanguo/internal/model"
)

// Pipeline tries its providers in order until one yields a parseable vault
type Pipeline struct {
	providers []Provider
	timeout   time.Duration
}

// NewPipeline creates a pipeline; timeout bounds each provider call
func NewPipeline(timeout time.Duration, providers ...Provider) *Pipeline {
	return &Pipeline{providers: providers, timeout: timeout}
}

// NewPipelineFromConfig builds the provider chain in the configured order.
// Providers without credentials are left out of the chain.
func NewPipelineFromConfig(cfg *config.AIConfig, client *http.Client) *Pipeline {
	var providers []Provider
	for _, name := range cfg.ProviderOrder {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case config.ProviderGemini:
			if cfg.GeminiEnabled() {
				providers = append(providers, NewGeminiProvider(cfg, client))
			}
		case config.ProviderOpenAI:
			if cfg.OpenAIEnabled() {
				providers = append(providers, NewOpenAIProvider(cfg, client))
			}
		default:
			log.Printf("dialogue: ignoring unknown provider %q", name)
		}
	}
	return NewPipeline(cfg.Timeout(), providers...)
}

// Providers returns the names of the chain, in order
func (p *Pipeline) Providers() []string {
	names := make([]string, 0, len(p.providers))
	for _, pr := range p.providers {
		names = append(names, pr.Name())
	}
	return names
}

// GenerateDialogueVault returns the first vault any provider produces along
// with that provider's name. When every provider fails it returns an empty
// vault and an empty name; the game carries on with filler lines.
func (p *Pipeline) GenerateDialogueVault(ctx context.Context, personalities []model.Personality) (model.DialogueVault, string) {
	if len(personalities) == 0 || len(p.providers) == 0 {
		return model.DialogueVault{}, ""
	}
	prompt := BuildPrompt(personalities)

	for _, pr := range p.providers {
		if ctx.Err() != nil {
			break
		}
		vault, err := p.try(ctx, pr, prompt, personalities)
		if err != nil {
			log.Printf("dialogue: provider %s failed: %v", pr.Name(), err)
			continue
		}
		log.Printf("dialogue: vault generated by %s (%d lines)", pr.Name(), vault.Size())
		return vault, pr.Name()
	}

	log.Printf("dialogue: all providers failed, using filler lines")
	return model.DialogueVault{}, ""
}

func (p *Pipeline) try(ctx context.Context, pr Provider, prompt string, personalities []model.Personality) (model.DialogueVault, error) {
	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	raw, err := pr.Generate(callCtx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseVault(raw, personalities)
}
