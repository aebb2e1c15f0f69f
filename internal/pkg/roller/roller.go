// Package roller provides a reproducible dice.Roller for replays and
// statistical tests.
package roller

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// Seeded rolls dice from a seeded PRNG, so two rollers with the same seed
// produce the same sequence.
type Seeded struct {
	mu   sync.Mutex
	seed int64
	src  *rand.Rand
}

var _ dice.Roller = (*Seeded)(nil)

// NewSeeded returns a roller seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)), //nolint:gosec // game dice, not crypto
	}
}

// Seed returns the seed the roller was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
