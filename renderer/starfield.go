package renderer

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orbit/particles"
)

// StarfieldRenderer draws the slowly turning background stars.
type StarfieldRenderer struct {
	stars []r3.Vec
	spin  float64 // Radians per second around Y
	angle float64
	color rl.Color
}

// NewStarfieldRenderer scatters count stars in a cube of edge spread.
func NewStarfieldRenderer(rng *rand.Rand, count int, spread, spin float64) *StarfieldRenderer {
	return &StarfieldRenderer{
		stars: particles.Scatter(rng, count, spread),
		spin:  spin,
		color: rl.Fade(rl.Color{R: 0x88, G: 0x88, B: 0x88, A: 255}, 0.8),
	}
}

// Update advances the rotation.
func (s *StarfieldRenderer) Update(dt float64) {
	s.angle = math.Mod(s.angle+s.spin*dt, 2*math.Pi)
}

// Draw renders the stars. Must be called inside BeginMode3D.
func (s *StarfieldRenderer) Draw() {
	sin, cos := math.Sincos(s.angle)
	for _, p := range s.stars {
		rl.DrawPoint3D(rl.Vector3{
			X: float32(p.X*cos + p.Z*sin),
			Y: float32(p.Y),
			Z: float32(-p.X*sin + p.Z*cos),
		}, s.color)
	}
}

// Unload frees resources (none for this renderer).
func (s *StarfieldRenderer) Unload() {}
