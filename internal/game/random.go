package game

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"sanguo/internal/model"
)

// Source yields uniform integers in [0, n)
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

// CryptoSource draws from crypto/rand. The attribute draw decides real points,
// so it must not be predictable by a client.
func CryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return int(v.Int64())
}

// DrawAttribute picks one of the six attributes uniformly
func DrawAttribute(src Source) model.Attribute {
	return model.AllAttributes[src.Intn(len(model.AllAttributes))]
}

// shufflePersonalities returns the personality pool in random order
func shufflePersonalities(src Source) []model.Personality {
	pool := make([]model.Personality, len(model.AllPersonalities))
	copy(pool, model.AllPersonalities)
	for i := len(pool) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool
}
