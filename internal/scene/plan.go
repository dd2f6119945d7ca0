package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/courtyard/internal/config"
	"github.com/toxichemicals/GO/courtyard/internal/geometry"
)

// Mesh names beyond the static quads.
const (
	MeshCylinder       = "cylinder"
	MeshSphere         = "sphere"
	MeshOuterDome      = "outer_dome"
	MeshInnerDome      = "inner_dome"
	MeshSkybox         = "skybox"
	MeshReflectiveCube = "reflective_cube"
)

// Cubemap names the sky texture in a Step.
const Cubemap = "skybox"

// Program selects the shader a Step is drawn with.
type Program int

const (
	Textured Program = iota
	Dome
	Sky
	Reflect
)

// Placement positions an object in the world. Its model matrix is
// Translate(Offset) * Scale(Scale), computed fresh from these two values.
type Placement struct {
	Offset mgl32.Vec3
	Scale  float32
}

// Identity leaves vertices where they are.
var Identity = Placement{Scale: 1}

// Placements of the centrepiece.
var (
	CylinderPlacement       = Placement{Offset: mgl32.Vec3{0, -0.2, 0}, Scale: 1}
	SpherePlacement         = Placement{Offset: mgl32.Vec3{0, -0.15, 0}, Scale: 0.35}
	OuterDomePlacement      = Placement{Offset: mgl32.Vec3{0, -0.79, 0}, Scale: 0.595}
	InnerDomePlacement      = Placement{Offset: mgl32.Vec3{0, -0.79, 0}, Scale: 0.5355}
	ReflectiveCubePlacement = Placement{Offset: mgl32.Vec3{0, 0.5, 0}, Scale: 0.5}
)

func (p Placement) Model() mgl32.Mat4 {
	return mgl32.Translate3D(p.Offset.X(), p.Offset.Y(), p.Offset.Z()).
		Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
}

// SkyboxView drops the translation from view so the sky never gets closer.
func SkyboxView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// Step is one draw call of a frame. Textures are bound to units 0, 1, ...
// in order.
type Step struct {
	Mesh      string
	Program   Program
	Textures  []string
	Placement Placement
}

// surfaceTextures pairs each static quad with its texture.
var surfaceTextures = map[string]string{
	geometry.Floor:         config.TexSand,
	geometry.LeftRoad:      config.TexRoad,
	geometry.RightRoad:     config.TexRoad,
	geometry.Grass:         config.TexGrass,
	geometry.Yard:          config.TexYard,
	geometry.BackWall:      config.TexWall,
	geometry.FrontWall:     config.TexWall,
	geometry.LeftWall:      config.TexWall,
	geometry.RightWall:     config.TexWall,
	geometry.BackYardWall:  config.TexYardWall,
	geometry.FrontYardWall: config.TexYardWall,
	geometry.LeftYardWall:  config.TexYardWall,
	geometry.RightYardWall: config.TexYardWall,
	geometry.Gate:          config.TexGate,
}

// Plan is the fixed draw order of one frame: ground and walls, the
// cylinder and sphere, the outer then inner dome, optionally the reflective
// cube, and the sky last.
func Plan(reflectiveCube bool) []Step {
	steps := make([]Step, 0, len(geometry.StaticOrder)+6)
	for _, name := range geometry.StaticOrder {
		steps = append(steps, Step{
			Mesh:      name,
			Program:   Textured,
			Textures:  []string{surfaceTextures[name]},
			Placement: Identity,
		})
	}
	steps = append(steps,
		Step{Mesh: MeshCylinder, Program: Textured, Textures: []string{config.TexMosaic}, Placement: CylinderPlacement},
		Step{Mesh: MeshSphere, Program: Textured, Textures: []string{config.TexGold}, Placement: SpherePlacement},
		Step{Mesh: MeshOuterDome, Program: Dome, Textures: []string{config.TexDome, config.TexInner}, Placement: OuterDomePlacement},
		Step{Mesh: MeshInnerDome, Program: Textured, Textures: []string{config.TexInner}, Placement: InnerDomePlacement},
	)
	if reflectiveCube {
		steps = append(steps, Step{Mesh: MeshReflectiveCube, Program: Reflect, Textures: []string{Cubemap}, Placement: ReflectiveCubePlacement})
	}
	steps = append(steps, Step{Mesh: MeshSkybox, Program: Sky, Textures: []string{Cubemap}, Placement: Identity})
	return steps
}

// TextureNames lists the distinct 2D textures plan samples, in first-use
// order.
func TextureNames(plan []Step) []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range plan {
		for _, t := range s.Textures {
			if t == Cubemap || seen[t] {
				continue
			}
			seen[t] = true
			names = append(names, t)
		}
	}
	return names
}
