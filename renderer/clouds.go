package renderer

import (
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbit/particles"
	"github.com/pthm-cable/orbit/scene"
)

// cloudModel is one sphere's particles uploaded as a point model in
// unit-ball space. cloud identifies the data it was built from.
type cloudModel struct {
	cloud  *particles.Cloud
	model  rl.Model
	loaded bool
}

// CloudRenderer draws every sphere's particle cloud as colored points.
// Clouds are uploaded to the GPU once per scene and drawn with one call
// per sphere, placed by the sphere's transform.
type CloudRenderer struct {
	opacity float32
	hover   rl.Color
	models  []cloudModel
}

// NewCloudRenderer creates a cloud renderer with the given point opacity.
func NewCloudRenderer(opacity float32) *CloudRenderer {
	return &CloudRenderer{
		opacity: opacity,
		hover:   rl.Color{R: 255, G: 255, B: 255, A: 60},
	}
}

// Draw renders all spheres. Must be called inside BeginMode3D. A new
// scene is uploaded on its first draw.
func (r *CloudRenderer) Draw(spheres []scene.Sphere) {
	if r.stale(spheres) {
		r.load(spheres)
	}
	tint := rl.Color{R: 255, G: 255, B: 255, A: uint8(r.opacity * 255)}
	for i, sp := range spheres {
		cm := r.models[i]
		if !cm.loaded {
			continue
		}
		t := sp.Transform
		rad := float32(t.Radius)
		rl.DrawModelPointsEx(cm.model, Vec3(t.Center), rl.Vector3{Y: 1}, float32(t.Spin*180/math.Pi), rl.Vector3{X: rad, Y: rad, Z: rad}, tint)
	}
}

// DrawHighlight outlines the hovered sphere.
func (r *CloudRenderer) DrawHighlight(sp scene.Sphere) {
	rl.DrawSphereWires(Vec3(sp.Transform.Center), float32(sp.Transform.Radius)*1.05, 8, 12, r.hover)
}

// Unload frees the uploaded clouds.
func (r *CloudRenderer) Unload() {
	for _, cm := range r.models {
		if cm.loaded {
			rl.UnloadModel(cm.model)
		}
	}
	r.models = nil
}

// stale reports whether the uploaded models were built from other clouds.
func (r *CloudRenderer) stale(spheres []scene.Sphere) bool {
	if len(spheres) != len(r.models) {
		return true
	}
	for i, sp := range spheres {
		if r.models[i].cloud != sp.Body.Cloud {
			return true
		}
	}
	return false
}

func (r *CloudRenderer) load(spheres []scene.Sphere) {
	r.Unload()
	r.models = make([]cloudModel, len(spheres))
	for i, sp := range spheres {
		r.models[i].cloud = sp.Body.Cloud
		if sp.Body.Cloud.Len() == 0 {
			continue
		}
		r.models[i].model = uploadCloud(sp.Body.Cloud)
		r.models[i].loaded = true
	}
}

// uploadCloud builds a point mesh in raylib-owned memory, so UnloadModel
// can free it.
func uploadCloud(c *particles.Cloud) rl.Model {
	n := c.Len()
	verts := unsafe.Slice((*float32)(rl.MemAlloc(uint32(n*3*4))), n*3)
	colors := unsafe.Slice((*uint8)(rl.MemAlloc(uint32(n*4))), n*4)
	fillPointBuffers(c, verts, colors)

	mesh := rl.Mesh{
		VertexCount: int32(n),
		Vertices:    &verts[0],
		Colors:      &colors[0],
	}
	rl.UploadMesh(&mesh, false)
	return rl.LoadModelFromMesh(mesh)
}

// fillPointBuffers writes unit-ball positions as xyz triplets and colors
// as opaque RGBA bytes. Opacity is applied by the draw tint.
func fillPointBuffers(c *particles.Cloud, verts []float32, colors []uint8) {
	pos, _ := c.Flat(1)
	copy(verts, pos)
	for i, col := range c.Colors {
		colors[i*4], colors[i*4+1], colors[i*4+2] = col.RGBA8()
		colors[i*4+3] = 255
	}
}
