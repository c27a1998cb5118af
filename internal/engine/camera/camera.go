// Package camera provides the free-fly camera and projection handling.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects how the scene is projected to 2D.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// FlyCamera is a first-person free camera driven by mouse look and
// WASD/QE movement.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw   float32 // degrees, -90 looks down -Z
	Pitch float32 // degrees, clamped to avoid flipping

	MovementSpeed    float32
	MouseSensitivity float32
	FOVDegrees       float32

	Mode Projection

	// Half-height of the orthographic view volume.
	OrthoScale float32
}

// New returns a camera parked at the campsite's default vantage point.
func New() *FlyCamera {
	c := &FlyCamera{
		Position:         mgl32.Vec3{0, 5, 12},
		Up:               mgl32.Vec3{0, 1, 0},
		Yaw:              -90,
		Pitch:            -14,
		MovementSpeed:    20,
		MouseSensitivity: 0.1,
		FOVDegrees:       80,
		Mode:             Perspective,
		OrthoScale:       10,
	}
	c.updateFront()
	return c
}

// updateFront recomputes Front from Yaw/Pitch.
func (c *FlyCamera) updateFront() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Right returns the camera's right vector.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// ProcessMouse applies a mouse-look delta. yOffset is positive when the
// mouse moves up.
func (c *FlyCamera) ProcessMouse(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
	c.updateFront()
}

// Move translates the camera. forward/right/up are -1..1 axis inputs,
// dt is the frame delta in seconds.
func (c *FlyCamera) Move(forward, right, up float32, dt float32) {
	v := c.MovementSpeed * dt
	c.Position = c.Position.
		Add(c.Front.Mul(forward * v)).
		Add(c.Right().Mul(right * v)).
		Add(c.Up.Mul(up * v))
}

// AdjustSpeed changes movement speed from scroll-wheel input, clamped to
// a usable range.
func (c *FlyCamera) AdjustSpeed(delta float32) {
	c.MovementSpeed += delta
	if c.MovementSpeed < 1 {
		c.MovementSpeed = 1
	}
	if c.MovementSpeed > 100 {
		c.MovementSpeed = 100
	}
}

// ViewMatrix returns the current view matrix.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the projection matrix for the current mode
// and aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.Mode == Orthographic {
		h := c.OrthoScale
		w := h * aspect
		return mgl32.Ortho(-w, w, -h, h, 0.1, 100)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOVDegrees), aspect, 0.1, 100)
}

// InvViewProjection returns the inverse view-projection matrix used to
// unproject screen coordinates into world-space pick rays.
func (c *FlyCamera) InvViewProjection(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix()).Inv()
}

// SetPerspective switches to perspective projection.
func (c *FlyCamera) SetPerspective() { c.Mode = Perspective }

// SetOrthographic switches to orthographic projection.
func (c *FlyCamera) SetOrthographic() { c.Mode = Orthographic }

// IsOrthographic reports whether the camera is in orthographic mode.
func (c *FlyCamera) IsOrthographic() bool { return c.Mode == Orthographic }
