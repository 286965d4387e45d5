package renderer

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orbit/particles"
	"github.com/pthm-cable/orbit/scene"
)

func TestFillPointBuffers(t *testing.T) {
	c := &particles.Cloud{
		Positions: []r3.Vec{{X: 0.5, Y: -0.25, Z: 1}, {X: 0, Y: 0, Z: -0.75}},
		Colors:    []particles.Color{particles.FromHex(0xff0000), particles.FromHex(0x3366cc)},
	}
	verts := make([]float32, 6)
	colors := make([]uint8, 8)
	fillPointBuffers(c, verts, colors)

	wantVerts := []float32{0.5, -0.25, 1, 0, 0, -0.75}
	for i, want := range wantVerts {
		if verts[i] != want {
			t.Errorf("verts[%d] = %v, want %v", i, verts[i], want)
		}
	}
	wantColors := []uint8{255, 0, 0, 255, 0x33, 0x66, 0xcc, 255}
	for i, want := range wantColors {
		if colors[i] != want {
			t.Errorf("colors[%d] = %d, want %d", i, colors[i], want)
		}
	}
}

func TestCloudRendererStale(t *testing.T) {
	a := &particles.Cloud{}
	b := &particles.Cloud{}
	sphere := func(c *particles.Cloud) scene.Sphere {
		return scene.Sphere{Transform: &scene.Transform{Radius: 1}, Body: &scene.Body{Cloud: c}}
	}

	r := NewCloudRenderer(0.8)
	if r.stale(nil) {
		t.Error("no spheres and no models should not be stale")
	}
	if !r.stale([]scene.Sphere{sphere(a)}) {
		t.Error("new scene should be stale")
	}

	// Empty clouds load without touching the GPU
	r.load([]scene.Sphere{sphere(a), sphere(b)})
	if r.stale([]scene.Sphere{sphere(a), sphere(b)}) {
		t.Error("same clouds should not be stale")
	}
	if !r.stale([]scene.Sphere{sphere(b), sphere(a)}) {
		t.Error("reordered clouds should be stale")
	}
	if !r.stale([]scene.Sphere{sphere(a)}) {
		t.Error("fewer spheres should be stale")
	}
	for i, cm := range r.models {
		if cm.loaded {
			t.Errorf("models[%d] loaded for an empty cloud", i)
		}
	}

	r.Unload()
	if len(r.models) != 0 {
		t.Errorf("models after Unload = %d", len(r.models))
	}
}
