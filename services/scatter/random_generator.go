package scatter

import (
	"math/rand"
)

// RandomGeneratorInterface abstracts the random source so placements can be
// tested against a deterministic implementation.
type RandomGeneratorInterface interface {
	Intn(n int) int
	Float64() float64
	NormFloat64() float64
	Shuffle(n int, swap func(i, j int))
}

// RandomGenerator implements RandomGeneratorInterface using math/rand.
type RandomGenerator struct {
	rand *rand.Rand
}

// NewRandomGenerator creates a new random generator with the given seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	source := rand.NewSource(seed)
	return &RandomGenerator{
		rand: rand.New(source),
	}
}

func (r *RandomGenerator) Intn(n int) int {
	return r.rand.Intn(n)
}

func (r *RandomGenerator) Float64() float64 {
	return r.rand.Float64()
}

func (r *RandomGenerator) NormFloat64() float64 {
	return r.rand.NormFloat64()
}

func (r *RandomGenerator) Shuffle(n int, swap func(i, j int)) {
	r.rand.Shuffle(n, swap)
}
