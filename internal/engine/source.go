package engine

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniform indices. IntN returns a value in [0, n) and is only
// called with n > 0. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the runtime-seeded math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededSource returns a reproducible PCG-backed source.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// ScriptedSource replays a fixed list of picks, cycling when it reaches the
// end. Each pick is reduced modulo n, so any non-negative script is valid
// for any candidate count.
type ScriptedSource struct {
	mu    sync.Mutex
	picks []int
	idx   int
}

// NewScriptedSource creates a source that replays picks. An empty script
// always yields 0.
func NewScriptedSource(picks ...int) *ScriptedSource {
	return &ScriptedSource{picks: picks}
}

func (s *ScriptedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[s.idx%len(s.picks)]
	s.idx++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls reports how many picks have been drawn.
func (s *ScriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}
