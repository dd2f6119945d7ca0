// Package config loads courtyard settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is relative to the process working directory.
const DefaultPath = "config/courtyard.yaml"

// PathEnv overrides DefaultPath when set.
const PathEnv = "COURTYARD_CONFIG"

type Config struct {
	Window    Window    `yaml:"window"`
	Camera    Camera    `yaml:"camera"`
	Resources Resources `yaml:"resources"`
	Scene     Scene     `yaml:"scene"`
	Log       Log       `yaml:"log"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Camera angles are in degrees.
type Camera struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"`
}

// Resources paths are relative to Root unless absolute.
type Resources struct {
	Root      string            `yaml:"root"`
	ShaderDir string            `yaml:"shader_dir"`
	Textures  map[string]string `yaml:"textures"`
	Skybox    [6]string         `yaml:"skybox"`
}

type Scene struct {
	ClearColor        [4]float32 `yaml:"clear_color"`
	ReflectiveCube    bool       `yaml:"reflective_cube"`
	HotReloadTextures bool       `yaml:"hot_reload_textures"`
}

type Log struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// Texture names used by the scene.
const (
	TexSand     = "sand"
	TexRoad     = "road"
	TexGrass    = "grass"
	TexYard     = "yard"
	TexWall     = "wall"
	TexYardWall = "yard_wall"
	TexGate     = "gate"
	TexMosaic   = "mosaic"
	TexGold     = "gold"
	TexDome     = "dome"
	TexInner    = "inner"
)

// Default returns the settings the courtyard ships with.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "courtyard",
			VSync:  true,
		},
		Camera: Camera{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			Zoom:        45,
		},
		Resources: Resources{
			ShaderDir: "resources/shaders",
			Textures: map[string]string{
				TexSand:     "resources/textures/sand.jpg",
				TexRoad:     "resources/textures/road.jpg",
				TexGrass:    "resources/textures/grass.png",
				TexYard:     "resources/textures/yard.png",
				TexWall:     "resources/textures/wall.png",
				TexYardWall: "resources/textures/yardWall.png",
				TexGate:     "resources/textures/gate.png",
				TexMosaic:   "resources/textures/mosaic.jpg",
				TexGold:     "resources/textures/gold.jpg",
				TexDome:     "resources/textures/dome1.png",
				TexInner:    "resources/textures/in.jpg",
			},
			// +X, -X, +Y, -Y, +Z, -Z
			Skybox: [6]string{
				"resources/textures/skybox/right.png",
				"resources/textures/skybox/left.png",
				"resources/textures/skybox/top.png",
				"resources/textures/skybox/bottom.png",
				"resources/textures/skybox/front.png",
				"resources/textures/skybox/back.png",
			},
		},
		Scene: Scene{
			ClearColor:        [4]float32{0.1, 0.1, 0.1, 1.0},
			HotReloadTextures: true,
		},
	}
}

// Load reads path over Default(). A missing file yields the defaults; a
// malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads from $COURTYARD_CONFIG, falling back to DefaultPath.
func LoadDefault() (Config, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return Load(p)
	}
	return Load(DefaultPath)
}

// Validate rejects settings the renderer cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Zoom < 1 || c.Camera.Zoom > 45 {
		return fmt.Errorf("camera zoom %.2f outside [1, 45]", c.Camera.Zoom)
	}
	if c.Camera.Pitch < -89 || c.Camera.Pitch > 89 {
		return fmt.Errorf("camera pitch %.2f outside [-89, 89]", c.Camera.Pitch)
	}
	for i, face := range c.Resources.Skybox {
		if face == "" {
			return fmt.Errorf("skybox face %d has no path", i)
		}
	}
	return nil
}

// Texture returns the configured path for a named surface.
func (c Config) Texture(name string) string {
	return c.Resources.Textures[name]
}
