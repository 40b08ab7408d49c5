package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_rng.go github.com/KirkDiggler/trebek/internal/rng Rand

// Rand provides the engine's randomness: picking the opening controller and
// choosing message templates.
type Rand interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Source implements the Rand interface with a seeded generator
type Source struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Source{
		random: rand.New(source),
	}
}

// Intn returns a uniform value in [0, n)
func (s *Source) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return s.random.Intn(n)
}
