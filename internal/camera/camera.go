// Package camera implements a free-fly Euler-angle camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Defaults.
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	MaxPitch float32 = 89.0
	MinZoom  float32 = 1.0
	MaxZoom  float32 = 45.0

	Near float32 = 0.1
	Far  float32 = 100.0
)

// Camera angles are in degrees. Front, Up and Right are derived from Yaw,
// Pitch and WorldUp and must not be set directly.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// Options overrides the defaults in New. Zero fields keep the default,
// except Yaw and Pitch which are always taken as given.
type Options struct {
	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	Zoom        float32
}

// Default is a camera at position with the stock orientation.
func Default(position mgl32.Vec3) *Camera {
	return New(position, Options{Yaw: DefaultYaw, Pitch: DefaultPitch})
}

func New(position mgl32.Vec3, opts Options) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              opts.Yaw,
		Pitch:            clamp(opts.Pitch, -MaxPitch, MaxPitch),
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	if opts.Speed != 0 {
		c.MovementSpeed = opts.Speed
	}
	if opts.Sensitivity != 0 {
		c.MouseSensitivity = opts.Sensitivity
	}
	if opts.Zoom != 0 {
		c.Zoom = clamp(opts.Zoom, MinZoom, MaxZoom)
	}
	c.updateVectors()
	return c
}

// ViewMatrix is a right-handed look-at from Position along Front.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection is the perspective for the current zoom.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, Near, Far)
}

// ProcessKeyboard moves the camera by MovementSpeed*dt. There is no
// collision.
func (c *Camera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor offset in pixels.
func (c *Camera) ProcessMouseMovement(dx, dy float32, constrainPitch bool) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = clamp(c.Pitch, -MaxPitch, MaxPitch)
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *Camera) ProcessMouseScroll(dy float32) {
	c.Zoom = clamp(c.Zoom-dy, MinZoom, MaxZoom)
}

func (c *Camera) updateVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yawRad) * math32.Cos(pitchRad),
		math32.Sin(pitchRad),
		math32.Sin(yawRad) * math32.Cos(pitchRad),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
