package app

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/toxichemicals/GO/courtyard/internal/camera"
	"github.com/toxichemicals/GO/courtyard/internal/config"
)

type fakeInput struct {
	down        map[glfw.Key]bool
	closed      bool
	vsync       bool
	vsyncToggle int
}

func (f *fakeInput) KeyPressed(key glfw.Key) bool { return f.down[key] }
func (f *fakeInput) RequestClose()                { f.closed = true }
func (f *fakeInput) VSync() bool                  { return f.vsync }
func (f *fakeInput) SetVSync(on bool) {
	f.vsync = on
	f.vsyncToggle++
}

func newTestApp() *App {
	return New(config.Default())
}

func TestNewUsesConfiguredCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Position = [3]float32{1, 2, 3}
	cfg.Camera.Zoom = 30
	a := New(cfg)

	if a.State() != StateInit {
		t.Errorf("state = %s, want init", a.State())
	}
	c := a.Camera()
	if c.Position.X() != 1 || c.Position.Y() != 2 || c.Position.Z() != 3 {
		t.Errorf("position = %v", c.Position)
	}
	if c.Zoom != 30 {
		t.Errorf("zoom = %v, want 30", c.Zoom)
	}
}

func TestEscapeRequestsClose(t *testing.T) {
	a := newTestApp()
	in := &fakeInput{down: map[glfw.Key]bool{glfw.KeyEscape: true}}
	a.processInput(in, 0.016)
	if !in.closed {
		t.Error("escape did not request close")
	}
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		axis int
		sign float32
	}{
		{glfw.KeyW, 2, -1},
		{glfw.KeyS, 2, 1},
		{glfw.KeyA, 0, -1},
		{glfw.KeyD, 0, 1},
	}
	for _, tt := range tests {
		a := newTestApp()
		start := a.Camera().Position
		a.processInput(&fakeInput{down: map[glfw.Key]bool{tt.key: true}}, 0.1)
		delta := a.Camera().Position.Sub(start)
		if delta[tt.axis]*tt.sign <= 0 {
			t.Errorf("key %v moved camera by %v", tt.key, delta)
		}
	}
}

func TestNoKeysNoMovement(t *testing.T) {
	a := newTestApp()
	start := a.Camera().Position
	a.processInput(&fakeInput{}, 0.1)
	if a.Camera().Position != start {
		t.Errorf("camera moved to %v", a.Camera().Position)
	}
}

func TestVSyncToggleIsDebounced(t *testing.T) {
	a := newTestApp()
	in := &fakeInput{down: map[glfw.Key]bool{}, vsync: true}

	// held for three frames, released, pressed again
	frames := []bool{true, true, true, false, true}
	for _, held := range frames {
		in.down[glfw.KeyV] = held
		a.processInput(in, 0.016)
	}
	if in.vsyncToggle != 2 {
		t.Errorf("vsync toggled %d times, want 2", in.vsyncToggle)
	}
	if !in.vsync {
		t.Error("vsync off after two toggles, want on")
	}
}

func TestFirstCursorEventOnlyRecords(t *testing.T) {
	a := newTestApp()
	yaw, pitch := a.Camera().Yaw, a.Camera().Pitch

	a.handleCursor(500, 100)
	if a.Camera().Yaw != yaw || a.Camera().Pitch != pitch {
		t.Errorf("first event turned camera to yaw=%v pitch=%v", a.Camera().Yaw, a.Camera().Pitch)
	}

	a.handleCursor(510, 90)
	want := yaw + 10*camera.DefaultSensitivity
	if d := a.Camera().Yaw - want; d > 1e-4 || d < -1e-4 {
		t.Errorf("yaw = %v, want %v", a.Camera().Yaw, want)
	}
	// moving the cursor up looks up
	if a.Camera().Pitch <= pitch {
		t.Errorf("pitch = %v, want above %v", a.Camera().Pitch, pitch)
	}
}

func TestScrollZooms(t *testing.T) {
	a := newTestApp()
	before := a.Camera().Zoom
	a.handleScroll(0, 5)
	if a.Camera().Zoom != before-5 {
		t.Errorf("zoom = %v, want %v", a.Camera().Zoom, before-5)
	}
}

func TestShutdownBeforeInit(t *testing.T) {
	a := newTestApp()
	a.Shutdown()
	if a.State() != StateShutdown {
		t.Errorf("state = %s, want shutdown", a.State())
	}
	a.Shutdown()
	if err := a.Init(); err == nil {
		t.Error("Init after Shutdown succeeded")
	}
}
