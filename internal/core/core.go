// Package core owns the GLFW window and the OpenGL context.
package core

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/toxichemicals/GO/courtyard/internal/logger"
)

// Core encapsulates the low-level windowing and context state.
type Core struct {
	window *glfw.Window

	// Window dimensions
	width, height int
	title         string

	vsyncEnabled bool

	// Input hooks, set before Init.
	OnResize func(width, height int)
	OnCursor func(x, y float64)
	OnScroll func(xoff, yoff float64)
}

// NewCore creates an uninitialized Core.
func NewCore(width, height int, title string, vsync bool) *Core {
	return &Core{
		width:        width,
		height:       height,
		title:        title,
		vsyncEnabled: vsync,
	}
}

// Init initializes GLFW, creates the window and loads GL. It must run on the
// locked main thread.
func (c *Core) Init() error {
	if err := c.initializeWindow(); err != nil {
		return fmt.Errorf("window initialization failed: %w", err)
	}
	if err := c.initializeOpenGL(); err != nil {
		return fmt.Errorf("OpenGL initialization failed: %w", err)
	}
	return nil
}

func (c *Core) initializeWindow() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(c.width, c.height, c.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	c.window = window
	c.window.MakeContextCurrent()
	c.SetVSync(c.vsyncEnabled)

	c.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		c.width = width
		c.height = height
		gl.Viewport(0, 0, int32(width), int32(height))
		if c.OnResize != nil {
			c.OnResize(width, height)
		}
	})
	c.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if c.OnCursor != nil {
			c.OnCursor(xpos, ypos)
		}
	})
	c.window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if c.OnScroll != nil {
			c.OnScroll(xoff, yoff)
		}
	})
	c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return nil
}

func (c *Core) initializeOpenGL() error {
	if err := gl.Init(); err != nil {
		c.window.Destroy()
		c.window = nil
		glfw.Terminate()
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	fbw, fbh := c.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	logger.Log.Info("OpenGL context ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))
	return nil
}

// ShouldClose reports whether the window was asked to close.
func (c *Core) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Core) RequestClose() {
	c.window.SetShouldClose(true)
}

func (c *Core) PollEvents() {
	glfw.PollEvents()
}

// ClearFrame clears the color and depth buffers.
func (c *Core) ClearFrame(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers presents the rendered frame.
func (c *Core) SwapBuffers() {
	c.window.SwapBuffers()
}

// KeyPressed polls the current state of key.
func (c *Core) KeyPressed(key glfw.Key) bool {
	return c.window.GetKey(key) == glfw.Press
}

// SetVSync caps presentation to the display refresh when on.
func (c *Core) SetVSync(on bool) {
	c.vsyncEnabled = on
	if on {
		glfw.SwapInterval(1)
		logger.Log.Info("VSync: ON (FPS capped)")
	} else {
		glfw.SwapInterval(0)
		logger.Log.Info("VSync: OFF (FPS uncapped)")
	}
}

func (c *Core) VSync() bool {
	return c.vsyncEnabled
}

// SetTitleSuffix shows suffix after the base title, e.g. an FPS readout.
func (c *Core) SetTitleSuffix(suffix string) {
	c.window.SetTitle(fmt.Sprintf("%s | %s", c.title, suffix))
}

// Aspect is width over height of the last known window size.
func (c *Core) Aspect() float32 {
	if c.height == 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// Shutdown destroys the window and terminates GLFW.
func (c *Core) Shutdown() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	glfw.Terminate()
}
