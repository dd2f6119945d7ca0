package mesh

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/courtyard/internal/geometry"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Uninitialized, "uninitialized"},
		{Ready, "ready"},
		{State(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestProceduralStartsUninitialized(t *testing.T) {
	p := NewProcedural(nil)
	if p.State() != Uninitialized {
		t.Errorf("state = %v, want uninitialized", p.State())
	}
	if p.Count() != 0 {
		t.Errorf("count before Init = %d", p.Count())
	}
	// Delete before Init must not touch GL.
	p.Delete()
	if p.State() != Uninitialized {
		t.Errorf("state after Delete = %v", p.State())
	}
}

// countingProcedural builds a Procedural whose GPU side is replaced by
// counters.
func countingProcedural(builds, uploads, draws *int) *Procedural {
	p := NewProcedural(func() geometry.Mesh {
		*builds++
		return geometry.Cylinder(mgl32.Vec3{}, 0.1, 0.35, 4)
	})
	p.upload = func(m geometry.Mesh, mode uint32) *Buffer {
		*uploads++
		if mode != gl.TRIANGLE_STRIP {
			panic("procedural meshes are strips")
		}
		return &Buffer{Name: m.Name, mode: mode, count: int32(len(m.Indices)), indexed: true}
	}
	p.draw = func(*Buffer) { *draws++ }
	return p
}

func TestProceduralBuildsOnce(t *testing.T) {
	var builds, uploads, draws int
	p := countingProcedural(&builds, &uploads, &draws)

	p.Init()
	p.Render()
	p.Render()

	if builds != 1 || uploads != 1 {
		t.Errorf("builds = %d, uploads = %d; want 1 each", builds, uploads)
	}
	if draws != 2 {
		t.Errorf("draws = %d, want 2", draws)
	}
	if p.State() != Ready {
		t.Errorf("state = %v, want ready", p.State())
	}
	if p.Count() != 8 {
		t.Errorf("count = %d, want 8", p.Count())
	}
}

func TestProceduralRenderInitializes(t *testing.T) {
	var builds, uploads, draws int
	p := countingProcedural(&builds, &uploads, &draws)

	p.Render()
	if p.State() != Ready || builds != 1 || draws != 1 {
		t.Errorf("after first Render: state = %v, builds = %d, draws = %d", p.State(), builds, draws)
	}
}

func TestProceduralRebuildsAfterDelete(t *testing.T) {
	var builds, uploads, draws int
	p := countingProcedural(&builds, &uploads, &draws)

	p.Init()
	p.Delete()
	if p.State() != Uninitialized || p.Count() != 0 {
		t.Fatalf("after Delete: state = %v, count = %d", p.State(), p.Count())
	}
	p.Render()
	if builds != 2 || uploads != 2 {
		t.Errorf("builds = %d, uploads = %d; want 2 each", builds, uploads)
	}
	if p.State() != Ready {
		t.Errorf("state = %v, want ready", p.State())
	}
}
