package camera

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func TestDefaultOrientation(t *testing.T) {
	c := Default(mgl32.Vec3{0, 0, 3})
	if !c.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("front = %v, want -Z", c.Front)
	}
	if !c.Right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Errorf("right = %v, want +X", c.Right)
	}
	if !c.Up.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, epsilon) {
		t.Errorf("up = %v, want +Y", c.Up)
	}
	if c.Zoom != DefaultZoom || c.MovementSpeed != DefaultSpeed || c.MouseSensitivity != DefaultSensitivity {
		t.Errorf("defaults = zoom %v speed %v sensitivity %v", c.Zoom, c.MovementSpeed, c.MouseSensitivity)
	}
}

func TestNewOptions(t *testing.T) {
	c := New(mgl32.Vec3{}, Options{Yaw: 0, Pitch: 120, Speed: 5, Zoom: 90})
	if c.Pitch != MaxPitch {
		t.Errorf("pitch = %v, want clamped %v", c.Pitch, MaxPitch)
	}
	if c.Zoom != MaxZoom {
		t.Errorf("zoom = %v, want clamped %v", c.Zoom, MaxZoom)
	}
	if c.MovementSpeed != 5 {
		t.Errorf("speed = %v", c.MovementSpeed)
	}
	if c.MouseSensitivity != DefaultSensitivity {
		t.Errorf("sensitivity = %v, want default", c.MouseSensitivity)
	}
}

func TestPitchStaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := Default(mgl32.Vec3{})
	for i := 0; i < 10000; i++ {
		dx := (rng.Float32() - 0.5) * 4000
		dy := (rng.Float32() - 0.5) * 4000
		c.ProcessMouseMovement(dx, dy, true)
		if c.Pitch < -MaxPitch || c.Pitch > MaxPitch {
			t.Fatalf("step %d: pitch %v escaped [-89, 89]", i, c.Pitch)
		}
	}
}

func TestUnconstrainedPitch(t *testing.T) {
	c := Default(mgl32.Vec3{})
	c.ProcessMouseMovement(0, 1000, false)
	if c.Pitch != 100 {
		t.Errorf("pitch = %v, want 100", c.Pitch)
	}
}

func TestZoomStaysClamped(t *testing.T) {
	tests := []struct {
		name   string
		scroll []float32
		want   float32
	}{
		{"zoom in past min", []float32{10, 10, 10, 10, 10}, MinZoom},
		{"zoom out past max", []float32{-100}, MaxZoom},
		{"in then out", []float32{20, -5}, 30},
		{"no change", nil, DefaultZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default(mgl32.Vec3{})
			for _, dy := range tt.scroll {
				c.ProcessMouseScroll(dy)
				if c.Zoom < MinZoom || c.Zoom > MaxZoom {
					t.Fatalf("zoom %v escaped [1, 45]", c.Zoom)
				}
			}
			if c.Zoom != tt.want {
				t.Errorf("zoom = %v, want %v", c.Zoom, tt.want)
			}
		})
	}
}

func TestViewMatrixIsPure(t *testing.T) {
	c := Default(mgl32.Vec3{1, 2, 3})
	c.ProcessMouseMovement(37, -12, true)
	a := c.ViewMatrix()
	b := c.ViewMatrix()
	if a != b {
		t.Errorf("view matrix changed between calls:\n%v\n%v", a, b)
	}
	if c.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("ViewMatrix moved the camera to %v", c.Position)
	}
}

func TestForwardMovesAlongMinusZ(t *testing.T) {
	c := Default(mgl32.Vec3{0, 0, 0})
	c.ProcessKeyboard(Forward, 1.0)

	// cos(-90deg) is not exactly zero in float32
	if math32.Abs(c.Position.X()) > epsilon || math32.Abs(c.Position.Y()) > epsilon {
		t.Errorf("forward drifted off axis: %v", c.Position)
	}
	if math32.Abs(c.Position.Z()+DefaultSpeed) > epsilon {
		t.Errorf("z = %v, want %v", c.Position.Z(), -DefaultSpeed)
	}
}

func TestKeyboardDirections(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -1.25}},
		{Backward, mgl32.Vec3{0, 0, 1.25}},
		{Left, mgl32.Vec3{-1.25, 0, 0}},
		{Right, mgl32.Vec3{1.25, 0, 0}},
	}
	for _, tt := range tests {
		c := Default(mgl32.Vec3{})
		c.ProcessKeyboard(tt.dir, 0.5)
		if !c.Position.ApproxEqualThreshold(tt.want, epsilon) {
			t.Errorf("direction %d: position %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestVectorsStayOrthonormal(t *testing.T) {
	c := Default(mgl32.Vec3{})
	c.ProcessMouseMovement(123, 456, true)
	for name, v := range map[string]mgl32.Vec3{"front": c.Front, "right": c.Right, "up": c.Up} {
		if math32.Abs(v.Len()-1) > epsilon {
			t.Errorf("%s not unit length: %v", name, v.Len())
		}
	}
	if d := c.Front.Dot(c.Right); math32.Abs(d) > epsilon {
		t.Errorf("front.right = %v", d)
	}
	if d := c.Front.Dot(c.Up); math32.Abs(d) > epsilon {
		t.Errorf("front.up = %v", d)
	}
}

func TestProjectionUsesZoom(t *testing.T) {
	c := Default(mgl32.Vec3{})
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, Near, Far)
	if got := c.Projection(800.0 / 600.0); !got.ApproxEqual(want) {
		t.Errorf("projection = %v, want %v", got, want)
	}
	c.ProcessMouseScroll(15)
	want = mgl32.Perspective(mgl32.DegToRad(30), 1, Near, Far)
	if got := c.Projection(1); !got.ApproxEqual(want) {
		t.Errorf("zoomed projection = %v, want %v", got, want)
	}
}
