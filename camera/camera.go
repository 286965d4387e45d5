// Package camera provides an orbit camera circling a target point.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Pitch stays just short of the poles so the up vector never flips.
const maxPitch = math.Pi/2 - 0.01

// Camera orbits Target at Distance, steered by yaw and pitch.
// Rotation and zoom input is accumulated as velocity and bled off by
// Damping on each Update, which gives the coasting feel of orbit controls.
type Camera struct {
	Target r3.Vec

	// Yaw around +Y and pitch above the XZ plane, in radians.
	Yaw, Pitch float64
	Distance   float64

	// Vertical field of view in degrees
	FovY float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Distance constraints
	MinDistance, MaxDistance float64

	// Fraction of pending motion applied per Update (1 = no coasting)
	Damping float64

	yawVel, pitchVel float64
	zoomScale        float64

	initialDistance float64
}

// New creates a camera on the +Z axis looking at the origin.
func New(viewportW, viewportH, fovY, distance float64) *Camera {
	return &Camera{
		FovY:            fovY,
		Distance:        distance,
		ViewportW:       viewportW,
		ViewportH:       viewportH,
		MinDistance:     distance / 20,
		MaxDistance:     distance * 10,
		Damping:         1,
		zoomScale:       1,
		initialDistance: distance,
	}
}

// Position returns the camera eye in world coordinates.
func (c *Camera) Position() r3.Vec {
	cosP := math.Cos(c.Pitch)
	offset := r3.Vec{
		X: c.Distance * cosP * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cosP * math.Cos(c.Yaw),
	}
	return r3.Add(c.Target, offset)
}

// Basis returns the forward, right and up unit vectors of the view.
func (c *Camera) Basis() (forward, right, up r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Position()))
	right = r3.Unit(r3.Cross(forward, r3.Vec{Y: 1}))
	up = r3.Cross(right, forward)
	return forward, right, up
}

// Ray returns the world-space ray through screen pixel (sx, sy).
// The direction is a unit vector.
func (c *Camera) Ray(sx, sy float64) (origin, dir r3.Vec) {
	forward, right, up := c.Basis()

	ndcX := 2*sx/c.ViewportW - 1
	ndcY := 1 - 2*sy/c.ViewportH
	tanHalf := math.Tan(c.FovY * math.Pi / 360)
	aspect := c.ViewportW / c.ViewportH

	dir = r3.Add(forward, r3.Add(
		r3.Scale(ndcX*tanHalf*aspect, right),
		r3.Scale(ndcY*tanHalf, up),
	))
	return c.Position(), r3.Unit(dir)
}

// Rotate queues an orbit by the given yaw and pitch deltas in radians.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.yawVel += dYaw
	c.pitchVel += dPitch
}

// ZoomBy queues a distance change; factors below 1 move closer.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.zoomScale *= factor
}

// Update applies the damped share of queued motion and clamps the result.
func (c *Camera) Update() {
	d := clamp(c.Damping, 0, 1)
	if d == 0 {
		d = 1
	}

	c.Yaw += c.yawVel * d
	c.Pitch = clamp(c.Pitch+c.pitchVel*d, -maxPitch, maxPitch)
	c.yawVel *= 1 - d
	c.pitchVel *= 1 - d

	step := math.Pow(c.zoomScale, d)
	c.SetDistance(c.Distance * step)
	c.zoomScale /= step
}

// SetDistance sets the orbit distance, clamped to min/max.
func (c *Camera) SetDistance(distance float64) {
	c.Distance = clamp(distance, c.MinDistance, c.MaxDistance)
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Reset returns the camera to its initial orbit and drops pending motion.
func (c *Camera) Reset() {
	c.Yaw, c.Pitch = 0, 0
	c.Distance = c.initialDistance
	c.yawVel, c.pitchVel = 0, 0
	c.zoomScale = 1
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
