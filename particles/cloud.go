package particles

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cloud is an immutable particle cloud in unit-ball local space.
// Positions and Colors are aligned index to index.
type Cloud struct {
	Positions []r3.Vec
	Colors    []Color
}

// NewCloud samples one position per color. The colors slice is owned by
// the cloud afterwards.
func NewCloud(rng *rand.Rand, colors []Color) *Cloud {
	c := &Cloud{
		Positions: make([]r3.Vec, 0, len(colors)),
		Colors:    colors,
	}
	for p := range Sample(rng, len(colors)) {
		c.Positions = append(c.Positions, p)
	}
	return c
}

// Build creates a cloud of exactly total particles. Each palette color is
// repeated counts[i] times and the buffer is shuffled before sampling.
// If counts sum to less than total the tail is white; if they sum to more,
// the shuffled buffer is cut to total.
func Build(rng *rand.Rand, total int, palette []Color, counts []int) *Cloud {
	if total < 0 {
		total = 0
	}
	colors := Repeat(palette, counts)
	Shuffle(rng, colors)

	switch {
	case len(colors) > total:
		colors = colors[:total]
	case len(colors) < total:
		for len(colors) < total {
			colors = append(colors, White)
		}
	}
	return NewCloud(rng, colors)
}

// Len returns the particle count.
func (c *Cloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Positions)
}

// Flat returns positions scaled by radius and colors as flat xyz / rgb
// triplet buffers, the layout vertex buffers expect.
func (c *Cloud) Flat(radius float64) (positions, colors []float32) {
	positions = make([]float32, 0, 3*len(c.Positions))
	colors = make([]float32, 0, 3*len(c.Colors))
	for i, p := range c.Positions {
		p = r3.Scale(radius, p)
		positions = append(positions, float32(p.X), float32(p.Y), float32(p.Z))
		col := c.Colors[i]
		colors = append(colors, col.R, col.G, col.B)
	}
	return positions, colors
}
