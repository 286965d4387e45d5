package particles

import (
	"iter"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sample yields n points distributed uniformly inside the closed unit ball.
//
// Candidates are drawn from the [-1, 1] cube and rejected when their squared
// norm exceeds 1 (about 52% are accepted). Ranging over the sequence again
// draws fresh points from rng.
func Sample(rng *rand.Rand, n int) iter.Seq[r3.Vec] {
	return func(yield func(r3.Vec) bool) {
		for i := 0; i < n; i++ {
			if !yield(samplePoint(rng)) {
				return
			}
		}
	}
}

// samplePoint draws until a candidate lands inside the unit ball.
func samplePoint(rng *rand.Rand) r3.Vec {
	for {
		p := r3.Vec{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}
		if r3.Norm2(p) <= 1 {
			return p
		}
	}
}

// Scatter places n points uniformly in the axis-aligned cube of edge
// length spread centered on the origin.
func Scatter(rng *rand.Rand, n int, spread float64) []r3.Vec {
	points := make([]r3.Vec, n)
	for i := range points {
		points[i] = r3.Vec{
			X: (rng.Float64() - 0.5) * spread,
			Y: (rng.Float64() - 0.5) * spread,
			Z: (rng.Float64() - 0.5) * spread,
		}
	}
	return points
}
