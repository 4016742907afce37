package services

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSelector picks the starting provider pseudo-randomly.
// It is safe for concurrent use.
type RandomSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSelector creates a selector seeded with seed; zero seeds from the clock.
func NewRandomSelector(seed uint64) *RandomSelector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSelector{
		rnd: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// PickExchangeRateAPI returns true when ExchangeRate-API should be tried first.
func (s *RandomSelector) PickExchangeRateAPI() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(2) == 0
}
