package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Fixed resolutions of the courtyard's procedural shapes.
const (
	SphereXSegments  = 64
	SphereYSegments  = 64
	CylinderHeight   = 0.1
	CylinderRadius   = 0.35
	CylinderSegments = 50
)

// Hemisphere builds the upper half of a unit latitude/longitude sphere as a
// triangle strip. Rings run from the pole (y = 0) down to the equator
// (y = ySegments/2), xSegments+1 vertices per ring, so the vertex count is
// (xSegments+1)*(ySegments/2+1). Odd rows are walked backwards to keep the
// strip continuous.
func Hemisphere(xSegments, ySegments int) Mesh {
	rows := ySegments / 2
	cols := xSegments + 1

	v := make([]float32, 0, cols*(rows+1)*PosUVNormal.Floats())
	for y := 0; y <= rows; y++ {
		ySegment := float32(y) / float32(ySegments)
		for x := 0; x <= xSegments; x++ {
			xSegment := float32(x) / float32(xSegments)
			theta := xSegment * 2.0 * math32.Pi
			phi := ySegment * math32.Pi

			xPos := math32.Cos(theta) * math32.Sin(phi)
			yPos := math32.Cos(phi)
			zPos := math32.Sin(theta) * math32.Sin(phi)
			if 2*y == ySegments {
				// cos(pi/2) does not round to zero in float32
				yPos = 0
			}
			v = append(v,
				xPos, yPos, zPos,
				xSegment, ySegment,
				xPos, yPos, zPos,
			)
		}
	}

	idx := make([]uint32, 0, 2*cols*rows)
	for y := 0; y < rows; y++ {
		if y%2 == 0 {
			for x := 0; x <= xSegments; x++ {
				idx = append(idx, uint32(y*cols+x), uint32((y+1)*cols+x))
			}
		} else {
			for x := xSegments; x >= 0; x-- {
				idx = append(idx, uint32((y+1)*cols+x), uint32(y*cols+x))
			}
		}
	}

	return Mesh{Name: "sphere", Vertices: v, Indices: idx, Layout: PosUVNormal}
}

// Cylinder builds an open tube of numPoints bottom/top vertex pairs around
// center. Indices are 0..2*numPoints-1, drawn as a triangle strip. The u
// coordinate runs around the ring; v is 0 at the bottom and 1 at the top.
func Cylinder(center mgl32.Vec3, height, radius float32, numPoints int) Mesh {
	v := make([]float32, 0, 2*numPoints*PosUV.Floats())
	idx := make([]uint32, 0, 2*numPoints)
	for i := 0; i < numPoints; i++ {
		u := float32(i) / float32(numPoints)
		x := center.X() + radius*math32.Cos(2*math32.Pi*u)
		z := center.Z() + radius*math32.Sin(2*math32.Pi*u)

		v = append(v,
			x, center.Y(), z, u, 0,
			x, center.Y()+height, z, u, 1,
		)
		idx = append(idx, uint32(2*i), uint32(2*i+1))
	}
	return Mesh{Name: "cylinder", Vertices: v, Indices: idx, Layout: PosUV}
}

// CourtyardSphere is the gold hemisphere at its fixed resolution.
func CourtyardSphere() Mesh {
	return Hemisphere(SphereXSegments, SphereYSegments)
}

// CourtyardCylinder is the mosaic plinth under the sphere.
func CourtyardCylinder() Mesh {
	return Cylinder(mgl32.Vec3{}, CylinderHeight, CylinderRadius, CylinderSegments)
}
