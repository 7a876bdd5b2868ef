package game

import "math/rand"

// NumberSource draws question numbers. It exists as an interface so tests
// can script the sequence while production shares one seeded generator.
type NumberSource interface {
	// IntN returns a uniformly random int in [0, n). Panics if n <= 0.
	IntN(n int) int
}

type randSource struct{}

// NewRandSource returns a NumberSource backed by math/rand's shared,
// auto-seeded generator.
func NewRandSource() NumberSource {
	return randSource{}
}

func (randSource) IntN(n int) int {
	return rand.Intn(n)
}
