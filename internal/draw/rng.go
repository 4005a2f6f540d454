package draw

import "math/rand/v2"

// Source supplies uniform samples in [0, SampleMax). Implementations must be
// safe for concurrent use if shared across goroutines.
type Source interface {
	Sample() float64
}

// randSource draws from math/rand/v2's global generator, which is
// goroutine-safe. Game randomness, not security critical.
type randSource struct{}

func (randSource) Sample() float64 {
	return rand.Float64() * SampleMax
}

// NewRandSource returns the production sample source.
func NewRandSource() Source {
	return randSource{}
}

// FixedSource replays a fixed sequence of samples, wrapping around when
// exhausted. Test helper: a single-element sequence forces every draw.
type FixedSource struct {
	Samples []float64
	next    int
}

func (f *FixedSource) Sample() float64 {
	s := f.Samples[f.next%len(f.Samples)]
	f.next++
	return s
}
