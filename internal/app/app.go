// Package app drives the courtyard: init, the per-frame loop and shutdown.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/toxichemicals/GO/courtyard/internal/camera"
	"github.com/toxichemicals/GO/courtyard/internal/config"
	"github.com/toxichemicals/GO/courtyard/internal/core"
	"github.com/toxichemicals/GO/courtyard/internal/logger"
	"github.com/toxichemicals/GO/courtyard/internal/resource"
	"github.com/toxichemicals/GO/courtyard/internal/scene"
	"github.com/toxichemicals/GO/courtyard/internal/timing"
)

// State of the frame driver.
type State int

const (
	StateInit State = iota
	StateRunning
	StateShutdown
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// input is the part of the window the per-frame key handling needs.
type input interface {
	KeyPressed(key glfw.Key) bool
	RequestClose()
	SetVSync(on bool)
	VSync() bool
}

// App is the courtyard's top-level state.
type App struct {
	cfg    config.Config
	state  State
	core   *core.Core
	scene  *scene.Scene
	camera *camera.Camera
	clock  *timing.Clock

	// Mouse state
	firstMouse   bool
	lastX, lastY float64

	vKeyWasPressed bool
}

// New prepares an App from cfg. Nothing is created until Init.
func New(cfg config.Config) *App {
	c := cfg.Camera
	return &App{
		cfg:   cfg,
		state: StateInit,
		camera: camera.New(mgl32.Vec3(c.Position), camera.Options{
			Yaw:         c.Yaw,
			Pitch:       c.Pitch,
			Speed:       c.Speed,
			Sensitivity: c.Sensitivity,
			Zoom:        c.Zoom,
		}),
		firstMouse: true,
		lastX:      float64(cfg.Window.Width) / 2,
		lastY:      float64(cfg.Window.Height) / 2,
	}
}

func (a *App) State() State {
	return a.state
}

func (a *App) Camera() *camera.Camera {
	return a.camera
}

// Init opens the window and builds the scene. On error everything created so
// far is released.
func (a *App) Init() error {
	if a.state != StateInit {
		return fmt.Errorf("init called in state %s", a.state)
	}

	res, err := resource.NewResolver(a.cfg.Resources.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve resource root: %w", err)
	}
	logger.Log.Debug("resource root", zap.String("root", res.Root))

	w := a.cfg.Window
	a.core = core.NewCore(w.Width, w.Height, w.Title, w.VSync)
	a.core.OnCursor = a.handleCursor
	a.core.OnScroll = a.handleScroll
	if err := a.core.Init(); err != nil {
		return err
	}

	sc, err := scene.Build(a.cfg, res)
	if err != nil {
		a.core.Shutdown()
		return err
	}
	a.scene = sc

	a.clock = timing.NewClock(time.Now())
	a.state = StateRunning
	return nil
}

// Run renders frames until the window is asked to close.
func (a *App) Run() {
	logger.Log.Info("Engine initialized. Starting main loop...")
	for a.state == StateRunning && !a.core.ShouldClose() {
		a.frame()
	}
}

func (a *App) frame() {
	now := time.Now()
	dt := a.clock.Tick(now)

	a.processInput(a.core, dt)
	a.scene.Update()

	cc := a.cfg.Scene.ClearColor
	a.core.ClearFrame(cc[0], cc[1], cc[2], cc[3])

	view := a.camera.ViewMatrix()
	projection := a.camera.Projection(a.core.Aspect())
	a.scene.Draw(view, projection, a.camera.Position)

	a.core.SwapBuffers()
	a.core.PollEvents()

	if fps, ok := a.clock.CountFrame(now); ok {
		a.core.SetTitleSuffix(fmt.Sprintf("FPS: %.2f", fps))
	}
}

// processInput handles the polled keys: Escape closes, WASD moves, V toggles
// vsync once per press.
func (a *App) processInput(in input, dt float32) {
	if in.KeyPressed(glfw.KeyEscape) {
		in.RequestClose()
	}

	moves := []struct {
		key glfw.Key
		dir camera.Direction
	}{
		{glfw.KeyW, camera.Forward},
		{glfw.KeyS, camera.Backward},
		{glfw.KeyA, camera.Left},
		{glfw.KeyD, camera.Right},
	}
	for _, m := range moves {
		if in.KeyPressed(m.key) {
			a.camera.ProcessKeyboard(m.dir, dt)
		}
	}

	vPressed := in.KeyPressed(glfw.KeyV)
	if vPressed && !a.vKeyWasPressed {
		in.SetVSync(!in.VSync())
	}
	a.vKeyWasPressed = vPressed
}

// handleCursor turns the camera by the cursor offset since the last event.
// The first event only records the position.
func (a *App) handleCursor(x, y float64) {
	if a.firstMouse {
		a.lastX = x
		a.lastY = y
		a.firstMouse = false
	}
	xoffset := float32(x - a.lastX)
	yoffset := float32(a.lastY - y) // reversed: y grows downwards
	a.lastX = x
	a.lastY = y

	a.camera.ProcessMouseMovement(xoffset, yoffset, true)
}

func (a *App) handleScroll(_, yoff float64) {
	a.camera.ProcessMouseScroll(float32(yoff))
}

// Shutdown releases GPU objects, then the window.
func (a *App) Shutdown() {
	if a.state == StateShutdown {
		return
	}
	if a.scene != nil {
		a.scene.Delete()
		a.scene = nil
	}
	if a.core != nil && a.state == StateRunning {
		a.core.Shutdown()
	}
	a.state = StateShutdown
	logger.Log.Info("Engine shutting down.")
}
