package scene

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere is a view of one sphere entity.
type Sphere struct {
	Entity    ecs.Entity
	Transform *Transform
	Body      *Body
	Meta      *Meta
}

// Scene is one visualization's set of spheres. It is built once and
// replaced whole by the next visualization; only spin changes afterwards.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map3[Transform, Body, Meta]
	filter *ecs.Filter3[Transform, Body, Meta]

	// Insertion order: sun first, then planets in grouping order
	order []ecs.Entity
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:  world,
		mapper: ecs.NewMap3[Transform, Body, Meta](world),
		filter: ecs.NewFilter3[Transform, Body, Meta](world),
	}
}

// Add creates a sphere entity.
func (s *Scene) Add(t Transform, b Body, m Meta) ecs.Entity {
	e := s.mapper.NewEntity(&t, &b, &m)
	s.order = append(s.order, e)
	return e
}

// Len returns the number of spheres.
func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Get returns the sphere for an entity.
func (s *Scene) Get(e ecs.Entity) (Sphere, bool) {
	if s == nil || !s.world.Alive(e) {
		return Sphere{}, false
	}
	t, b, m := s.mapper.Get(e)
	return Sphere{Entity: e, Transform: t, Body: b, Meta: m}, true
}

// Spheres returns the flat hit-testable list, sun first.
func (s *Scene) Spheres() []Sphere {
	if s == nil {
		return nil
	}
	out := make([]Sphere, 0, len(s.order))
	for _, e := range s.order {
		if sp, ok := s.Get(e); ok {
			out = append(out, sp)
		}
	}
	return out
}

// TotalParticles sums the particles of every sphere.
func (s *Scene) TotalParticles() int {
	if s == nil {
		return 0
	}
	total := 0
	query := s.filter.Query()
	for query.Next() {
		_, body, _ := query.Get()
		total += body.Cloud.Len()
	}
	return total
}

// Spin advances every sphere's rotation by rate*dt radians.
func (s *Scene) Spin(rate, dt float64) {
	if s == nil || rate == 0 {
		return
	}
	query := s.filter.Query()
	for query.Next() {
		t, _, _ := query.Get()
		t.Spin = math.Mod(t.Spin+rate*dt, 2*math.Pi)
	}
}

// Pick returns the nearest sphere hit by the ray origin + k*dir (k >= 0).
// dir must be a unit vector. Spheres smaller than minRadius are tested at
// minRadius so tiny holdings stay hoverable.
func (s *Scene) Pick(origin, dir r3.Vec, minRadius float64) (Sphere, bool) {
	var best Sphere
	bestDist := math.Inf(1)
	found := false

	for _, sp := range s.Spheres() {
		radius := math.Max(sp.Transform.Radius, minRadius)
		dist, ok := raySphere(origin, dir, sp.Transform.Center, radius)
		if ok && dist < bestDist {
			best, bestDist, found = sp, dist, true
		}
	}
	return best, found
}

// raySphere returns the distance along the ray to the first intersection
// with the sphere, or 0 when the origin is inside it.
func raySphere(origin, dir, center r3.Vec, radius float64) (float64, bool) {
	oc := r3.Sub(origin, center)
	b := r3.Dot(oc, dir)
	c := r3.Norm2(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}
