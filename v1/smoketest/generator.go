package smoketest

import (
	"math/rand/v2"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

// Generator produces random vectors with components uniformly distributed
// in [0, 1). It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed, or with a random seed
// when seed is zero.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Vector returns a fresh vector of length dim.
func (g *Generator) Vector(dim int) []float32 {
	v := make([]float32, dim)
	for i := range v {
		v[i] = g.rng.Float32()
	}
	return v
}

// Points returns n points with sequential IDs 0..n-1 in generation order.
func (g *Generator) Points(n, dim int) []vectordb.Point {
	points := make([]vectordb.Point, n)
	for i := range points {
		points[i] = vectordb.Point{
			ID:     uint64(i),
			Vector: g.Vector(dim),
		}
	}
	return points
}
