// Package scene holds the spheres of one visualization in an ECS world:
// the benchmark sun and one particle planet per major category.
package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orbit/particles"
)

// Transform places a unit-ball cloud in the world.
type Transform struct {
	Center r3.Vec
	Radius float64
	Spin   float64 // Rotation around the local Y axis, radians
}

// WorldPoint maps a unit-ball local point to world coordinates.
func (t *Transform) WorldPoint(local r3.Vec) r3.Vec {
	p := r3.Scale(t.Radius, local)
	if t.Spin != 0 {
		sin, cos := math.Sincos(t.Spin)
		p = r3.Vec{X: p.X*cos + p.Z*sin, Y: p.Y, Z: -p.X*sin + p.Z*cos}
	}
	return r3.Add(t.Center, p)
}

// Body carries the sphere's particle cloud.
type Body struct {
	Cloud *particles.Cloud
}

// ChildInfo is one minor category as shown in a tooltip.
type ChildInfo struct {
	Minor     string
	Value     float64
	Percent   float64
	Color     uint32
	Particles int
}

// Meta is the tooltip record attached to a sphere.
// For the sun only IsSun, Major, Name and Value are set.
type Meta struct {
	IsSun        bool
	Major        string
	Name         string // ASCII name for the viewer font
	Value        float64
	TotalPercent float64
	Children     []ChildInfo
}
