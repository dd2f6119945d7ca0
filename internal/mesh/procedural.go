package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/toxichemicals/GO/courtyard/internal/geometry"
)

// State of a Procedural mesh.
type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Procedural is a generated triangle-strip mesh that is built on the GPU at
// most once.
type Procedural struct {
	build func() geometry.Mesh
	buf   *Buffer
	state State

	upload func(geometry.Mesh, uint32) *Buffer
	draw   func(*Buffer)
}

// NewProcedural defers build until Init or the first Render.
func NewProcedural(build func() geometry.Mesh) *Procedural {
	return &Procedural{build: build, upload: Upload, draw: (*Buffer).Draw}
}

func (p *Procedural) State() State {
	return p.state
}

// Init generates and uploads the mesh. Further calls do nothing.
func (p *Procedural) Init() {
	if p.state == Ready {
		return
	}
	p.buf = p.upload(p.build(), gl.TRIANGLE_STRIP)
	p.state = Ready
}

// Render draws the mesh, initialising it first if needed.
func (p *Procedural) Render() {
	p.Init()
	p.draw(p.buf)
}

// Count is the strip's index count, zero before Init.
func (p *Procedural) Count() int32 {
	if p.buf == nil {
		return 0
	}
	return p.buf.Count()
}

// Delete frees the buffers and returns to Uninitialized.
func (p *Procedural) Delete() {
	if p.buf != nil {
		p.buf.Delete()
		p.buf = nil
	}
	p.state = Uninitialized
}
