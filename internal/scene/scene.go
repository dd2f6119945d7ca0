// Package scene builds the courtyard's GPU resources and issues its fixed
// sequence of draw calls.
package scene

import (
	"fmt"
	"path"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/toxichemicals/GO/courtyard/internal/config"
	"github.com/toxichemicals/GO/courtyard/internal/geometry"
	"github.com/toxichemicals/GO/courtyard/internal/imageio"
	"github.com/toxichemicals/GO/courtyard/internal/logger"
	"github.com/toxichemicals/GO/courtyard/internal/mesh"
	"github.com/toxichemicals/GO/courtyard/internal/resource"
	"github.com/toxichemicals/GO/courtyard/internal/shader"
	"github.com/toxichemicals/GO/courtyard/internal/texture"
)

// mosaicOptions matches how the plinth texture is laid out on disk.
var mosaicOptions = imageio.Options{FlipVertical: true, ForceRGB: true}

// Scene holds every GPU object of the courtyard.
type Scene struct {
	plan []Step

	programs map[Program]*shader.Program
	buffers  map[string]*mesh.Buffer
	sphere   *mesh.Procedural
	cylinder *mesh.Procedural

	textures map[string]texture.Texture
	cubemap  texture.Texture
	mosaic   *texture.Reloader

	lastReloadOK bool
}

// Build compiles the shaders, uploads every mesh and loads every texture.
// Texture failures are logged and replaced by a placeholder; shader
// failures are returned.
func Build(cfg config.Config, res *resource.Resolver) (*Scene, error) {
	s := &Scene{
		plan:         Plan(cfg.Scene.ReflectiveCube),
		programs:     make(map[Program]*shader.Program),
		buffers:      make(map[string]*mesh.Buffer),
		textures:     make(map[string]texture.Texture),
		lastReloadOK: true,
	}
	if err := s.setupShaders(cfg, res); err != nil {
		s.Delete()
		return nil, fmt.Errorf("shader setup failed: %w", err)
	}
	s.setupBuffers(cfg.Scene.ReflectiveCube)
	s.setupTextures(cfg, res)
	return s, nil
}

func (s *Scene) setupShaders(cfg config.Config, res *resource.Resolver) error {
	sources := map[Program]string{
		Textured: "textured",
		Dome:     "dome",
		Sky:      "skybox",
		Reflect:  "reflect",
	}
	for prog, name := range sources {
		vs := res.Path(path.Join(cfg.Resources.ShaderDir, name+".vs"))
		fs := res.Path(path.Join(cfg.Resources.ShaderDir, name+".fs"))
		p, err := shader.Load(vs, fs)
		if err != nil {
			return err
		}
		s.programs[prog] = p
	}

	s.programs[Textured].Use()
	s.programs[Textured].SetInt("texture1", 0)
	s.programs[Dome].Use()
	s.programs[Dome].SetInt("texture1", 0)
	s.programs[Dome].SetInt("texture2", 1)
	s.programs[Sky].Use()
	s.programs[Sky].SetInt("skybox", 0)
	s.programs[Reflect].Use()
	s.programs[Reflect].SetInt("skybox", 0)
	return nil
}

func (s *Scene) setupBuffers(reflectiveCube bool) {
	for name, m := range geometry.Courtyard() {
		s.buffers[name] = mesh.Upload(m, gl.TRIANGLES)
	}
	s.buffers[MeshOuterDome] = mesh.Upload(geometry.OuterDome(), gl.TRIANGLES)
	s.buffers[MeshInnerDome] = mesh.Upload(geometry.InnerDome(), gl.TRIANGLES)
	s.buffers[MeshSkybox] = mesh.Upload(geometry.SkyboxCube(), gl.TRIANGLES)
	if reflectiveCube {
		s.buffers[MeshReflectiveCube] = mesh.Upload(geometry.ReflectiveCube(), gl.TRIANGLES)
	}

	s.sphere = mesh.NewProcedural(geometry.CourtyardSphere)
	s.cylinder = mesh.NewProcedural(geometry.CourtyardCylinder)
	s.sphere.Init()
	s.cylinder.Init()

	logger.Log.Debug("meshes uploaded",
		zap.Int("static", len(s.buffers)),
		zap.Int32("sphere_indices", s.sphere.Count()),
		zap.Int32("cylinder_indices", s.cylinder.Count()))
}

func (s *Scene) setupTextures(cfg config.Config, res *resource.Resolver) {
	for _, name := range TextureNames(s.plan) {
		p := res.Path(cfg.Texture(name))

		if name == config.TexMosaic && cfg.Scene.HotReloadTextures {
			r, err := texture.NewReloader(p, mosaicOptions)
			if err == nil {
				s.mosaic = r
				continue
			}
			logger.Log.Warn("texture failed to load, using placeholder", zap.String("texture", name), zap.Error(err))
			s.textures[name] = texture.Placeholder()
			continue
		}

		opts := imageio.Options{}
		if name == config.TexMosaic {
			opts = mosaicOptions
		}
		t, err := texture.Load2D(p, opts)
		if err != nil {
			logger.Log.Warn("texture failed to load, using placeholder", zap.String("texture", name), zap.Error(err))
			t = texture.Placeholder()
		}
		s.textures[name] = t
	}

	cm, err := texture.LoadCubemap(res.Paths(cfg.Resources.Skybox))
	if err != nil {
		logger.Log.Warn("skybox failed to load, using placeholder", zap.Error(err))
		cm = texture.PlaceholderCubemap()
	}
	s.cubemap = cm
}

// Update re-uploads the mosaic when its file changed on disk. Failures are
// logged once until a reload succeeds again.
func (s *Scene) Update() {
	if s.mosaic == nil {
		return
	}
	reloaded, err := s.mosaic.Refresh()
	switch {
	case err != nil:
		if s.lastReloadOK {
			logger.Log.Warn("texture reload failed, keeping previous image",
				zap.String("path", s.mosaic.Path()), zap.Error(err))
		}
		s.lastReloadOK = false
	case reloaded:
		logger.Log.Info("texture reloaded", zap.String("path", s.mosaic.Path()))
		s.lastReloadOK = true
	default:
		s.lastReloadOK = true
	}
}

// Draw issues the whole frame. Every matrix is derived from view,
// projection and the step's own placement.
func (s *Scene) Draw(view, projection mgl32.Mat4, cameraPos mgl32.Vec3) {
	for _, step := range s.plan {
		prog := s.programs[step.Program]
		prog.Use()

		switch step.Program {
		case Sky:
			gl.DepthFunc(gl.LEQUAL)
			prog.SetMat4("view", SkyboxView(view))
			prog.SetMat4("projection", projection)
		case Reflect:
			prog.SetMat4("model", step.Placement.Model())
			prog.SetMat4("view", view)
			prog.SetMat4("projection", projection)
			prog.SetVec3("cameraPos", cameraPos)
		default:
			prog.SetMat4("model", step.Placement.Model())
			prog.SetMat4("view", view)
			prog.SetMat4("projection", projection)
		}

		for unit, name := range step.Textures {
			s.texture(name).Bind(uint32(unit))
		}
		s.drawMesh(step.Mesh)

		if step.Program == Sky {
			gl.DepthFunc(gl.LESS)
		}
	}
}

func (s *Scene) drawMesh(name string) {
	switch name {
	case MeshSphere:
		s.sphere.Render()
	case MeshCylinder:
		s.cylinder.Render()
	default:
		s.buffers[name].Draw()
	}
}

func (s *Scene) texture(name string) texture.Texture {
	switch {
	case name == Cubemap:
		return s.cubemap
	case name == config.TexMosaic && s.mosaic != nil:
		return s.mosaic.Texture()
	default:
		return s.textures[name]
	}
}

// Delete releases every GPU object. Safe on a partially built Scene.
func (s *Scene) Delete() {
	for _, b := range s.buffers {
		b.Delete()
	}
	if s.sphere != nil {
		s.sphere.Delete()
	}
	if s.cylinder != nil {
		s.cylinder.Delete()
	}
	for name, t := range s.textures {
		t.Delete()
		delete(s.textures, name)
	}
	if s.mosaic != nil {
		s.mosaic.Delete()
	}
	s.cubemap.Delete()
	for _, p := range s.programs {
		p.Delete()
	}
}
