// Package renderer draws the scene with raylib: background stars and the
// particle clouds of the sun and planets.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orbit/camera"
)

// Vec3 converts a world vector to raylib's float32 form.
func Vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Camera3D builds the raylib camera matching the orbit camera.
func Camera3D(c *camera.Camera) rl.Camera3D {
	_, _, up := c.Basis()
	return rl.Camera3D{
		Position:   Vec3(c.Position()),
		Target:     Vec3(c.Target),
		Up:         Vec3(up),
		Fovy:       float32(c.FovY),
		Projection: rl.CameraPerspective,
	}
}
