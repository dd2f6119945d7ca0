package geometry

// octagonRing holds the (x, z) ring of the dome, starting at -Z and winding
// towards +X.
var octagonRing = [8][2]float32{
	{0.0, -1.0},
	{0.75, -0.75},
	{1.0, 0.0},
	{0.75, 0.75},
	{0.0, 1.0},
	{-0.75, 0.75},
	{-1.0, 0.0},
	{-0.75, -0.75},
}

// capUVs repeats once per two cap triangles.
var capUVs = [6][2]float32{
	{0.0, 0.0}, {0.0, 0.1}, {1.0, 0.0},
	{0.0, 1.0}, {1.0, 0.0}, {1.0, 1.0},
}

// OuterDome is the closed octagonal shell: bottom cap, top cap and eight
// sides. 96 vertices.
func OuterDome() Mesh {
	v := make([]float32, 0, 96*5)
	v = appendOctagonCap(v, 0.0)
	v = appendOctagonCap(v, 1.0)
	v = appendOctagonSides(v)
	return Mesh{Name: "outer_dome", Vertices: v, Layout: PosUV}
}

// InnerDome is the eight sides alone. 48 vertices.
func InnerDome() Mesh {
	v := make([]float32, 0, 48*5)
	v = appendOctagonSides(v)
	return Mesh{Name: "inner_dome", Vertices: v, Layout: PosUV}
}

// appendOctagonCap fans the ring around the centre at height y, walking the
// ring from +Z towards -X.
func appendOctagonCap(v []float32, y float32) []float32 {
	k := 0
	for i := 0; i < 8; i++ {
		p := octagonRing[(4+i)%8]
		q := octagonRing[(5+i)%8]
		for _, pt := range [3][2]float32{p, q, {0, 0}} {
			uv := capUVs[k%6]
			v = append(v, pt[0], y, pt[1], uv[0], uv[1])
			k++
		}
	}
	return v
}

func appendOctagonSides(v []float32) []float32 {
	for i := 0; i < 8; i++ {
		p := octagonRing[i]
		q := octagonRing[(i+1)%8]
		v = append(v,
			p[0], 1.0, p[1], 0.0, 1.0,
			p[0], 0.0, p[1], 0.0, 0.0,
			q[0], 1.0, q[1], 1.0, 1.0,
			p[0], 0.0, p[1], 0.0, 0.0,
			q[0], 1.0, q[1], 1.0, 1.0,
			q[0], 0.0, q[1], 1.0, 0.0,
		)
	}
	return v
}
