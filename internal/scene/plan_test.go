package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/courtyard/internal/config"
	"github.com/toxichemicals/GO/courtyard/internal/geometry"
)

func TestPlanOrder(t *testing.T) {
	want := []string{
		geometry.Floor, geometry.LeftRoad, geometry.RightRoad, geometry.Grass, geometry.Yard,
		geometry.BackWall, geometry.FrontWall, geometry.LeftWall, geometry.RightWall,
		geometry.BackYardWall, geometry.FrontYardWall, geometry.LeftYardWall, geometry.RightYardWall,
		geometry.Gate,
		MeshCylinder, MeshSphere, MeshOuterDome, MeshInnerDome,
		MeshSkybox,
	}
	plan := Plan(false)
	if len(plan) != len(want) {
		t.Fatalf("plan has %d steps, want %d", len(plan), len(want))
	}
	for i, step := range plan {
		if step.Mesh != want[i] {
			t.Errorf("step %d = %s, want %s", i, step.Mesh, want[i])
		}
	}
}

func TestPlanSkyIsLast(t *testing.T) {
	for _, cube := range []bool{false, true} {
		plan := Plan(cube)
		last := plan[len(plan)-1]
		if last.Mesh != MeshSkybox || last.Program != Sky {
			t.Errorf("reflective=%v: last step = %+v", cube, last)
		}
		if cube && plan[len(plan)-2].Mesh != MeshReflectiveCube {
			t.Errorf("reflective cube not drawn just before the sky")
		}
	}
}

func TestPlanTextures(t *testing.T) {
	want := map[string][]string{
		geometry.Floor:         {config.TexSand},
		geometry.LeftRoad:      {config.TexRoad},
		geometry.RightRoad:     {config.TexRoad},
		geometry.Grass:         {config.TexGrass},
		geometry.Yard:          {config.TexYard},
		geometry.BackWall:      {config.TexWall},
		geometry.RightWall:     {config.TexWall},
		geometry.FrontYardWall: {config.TexYardWall},
		geometry.Gate:          {config.TexGate},
		MeshCylinder:           {config.TexMosaic},
		MeshSphere:             {config.TexGold},
		MeshOuterDome:          {config.TexDome, config.TexInner},
		MeshInnerDome:          {config.TexInner},
		MeshSkybox:             {Cubemap},
	}
	for _, step := range Plan(false) {
		exp, ok := want[step.Mesh]
		if !ok {
			continue
		}
		if len(step.Textures) != len(exp) {
			t.Errorf("%s textures = %v, want %v", step.Mesh, step.Textures, exp)
			continue
		}
		for i := range exp {
			if step.Textures[i] != exp[i] {
				t.Errorf("%s texture %d = %s, want %s", step.Mesh, i, step.Textures[i], exp[i])
			}
		}
	}
}

func TestTextureNamesAreConfigured(t *testing.T) {
	names := TextureNames(Plan(true))
	if len(names) != 11 {
		t.Errorf("got %d distinct textures %v, want 11", len(names), names)
	}
	cfg := config.Default()
	for _, n := range names {
		if n == Cubemap {
			t.Errorf("cubemap listed as a 2D texture")
		}
		if cfg.Texture(n) == "" {
			t.Errorf("texture %q has no configured path", n)
		}
	}
}

func TestPlacementMatchesStackedTransforms(t *testing.T) {
	// The centrepiece was once placed by nudging a shared view matrix and
	// compounding scales. The independent placements must land in the same
	// spot.
	view := mgl32.LookAtV(mgl32.Vec3{1, 2, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	cylView := view.Mul4(mgl32.Translate3D(0, -0.2, 0))
	sphereView := cylView.Mul4(mgl32.Translate3D(0, 0.05, 0))
	domeView := view.Mul4(mgl32.Translate3D(0, -0.79, 0))

	sphereScale := mgl32.Scale3D(0.35, 0.35, 0.35)
	outerScale := sphereScale.Mul4(mgl32.Scale3D(1.7, 1.7, 1.7))
	innerScale := outerScale.Mul4(mgl32.Scale3D(0.9, 0.9, 0.9))

	tests := []struct {
		name string
		p    Placement
		want mgl32.Mat4
	}{
		{"cylinder", CylinderPlacement, cylView},
		{"sphere", SpherePlacement, sphereView.Mul4(sphereScale)},
		{"outer dome", OuterDomePlacement, domeView.Mul4(outerScale)},
		{"inner dome", InnerDomePlacement, domeView.Mul4(innerScale)},
	}
	for _, tt := range tests {
		got := view.Mul4(tt.p.Model())
		if !got.ApproxEqualThreshold(tt.want, 1e-5) {
			t.Errorf("%s: model-view =\n%v\nwant\n%v", tt.name, got, tt.want)
		}
	}
}

func TestPlacementIsIdempotent(t *testing.T) {
	a := SpherePlacement.Model()
	for i := 0; i < 3; i++ {
		if b := SpherePlacement.Model(); a != b {
			t.Fatalf("model changed on call %d", i)
		}
	}
	if Identity.Model() != mgl32.Ident4() {
		t.Errorf("identity placement = %v", Identity.Model())
	}
}

func TestSkyboxViewHasNoTranslation(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{3, -4, 7}, mgl32.Vec3{3, -4, 6}, mgl32.Vec3{0, 1, 0})
	sky := SkyboxView(view)
	if sky.Col(3) != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("translation column = %v", sky.Col(3))
	}
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if sky.At(r, c) != view.At(r, c) {
				t.Errorf("rotation (%d,%d) = %v, want %v", r, c, sky.At(r, c), view.At(r, c))
			}
		}
	}
}
