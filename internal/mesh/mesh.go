// Package mesh uploads geometry to GPU buffers and draws it.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/toxichemicals/GO/courtyard/internal/geometry"
)

// Buffer is a VAO with its vertex and optional index buffer.
type Buffer struct {
	Name string

	vao, vbo, ebo uint32
	mode          uint32
	count         int32
	indexed       bool
}

// Upload copies m into static GPU buffers. mode is the primitive type, e.g.
// gl.TRIANGLES or gl.TRIANGLE_STRIP.
func Upload(m geometry.Mesh, mode uint32) *Buffer {
	b := &Buffer{Name: m.Name, mode: mode}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	if len(m.Indices) > 0 {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
		b.indexed = true
		b.count = int32(len(m.Indices))
	} else {
		b.count = int32(m.VertexCount())
	}

	stride := m.Layout.Stride()
	for i, a := range m.Layout {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(m.Layout.Offset(i)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	return b
}

// Count is the number of vertices or indices one Draw submits.
func (b *Buffer) Count() int32 {
	return b.count
}

func (b *Buffer) Draw() {
	gl.BindVertexArray(b.vao)
	if b.indexed {
		gl.DrawElements(b.mode, b.count, gl.UNSIGNED_INT, unsafe.Pointer(uintptr(0)))
	} else {
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU objects. Safe to call twice.
func (b *Buffer) Delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}
