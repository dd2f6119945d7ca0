package geometry

// Names of the static meshes, in draw order.
const (
	Floor         = "floor"
	LeftRoad      = "left_road"
	RightRoad     = "right_road"
	Grass         = "grass"
	Yard          = "yard"
	BackWall      = "back_wall"
	FrontWall     = "front_wall"
	LeftWall      = "left_wall"
	RightWall     = "right_wall"
	BackYardWall  = "back_yard_wall"
	FrontYardWall = "front_yard_wall"
	LeftYardWall  = "left_yard_wall"
	RightYardWall = "right_yard_wall"
	Gate          = "gate"
)

// StaticOrder is the fixed draw order of the ground and wall quads.
var StaticOrder = []string{
	Floor, LeftRoad, RightRoad, Grass, Yard,
	BackWall, FrontWall, LeftWall, RightWall,
	BackYardWall, FrontYardWall, LeftYardWall, RightYardWall,
	Gate,
}

// Courtyard returns every static quad mesh keyed by name. Each call returns
// fresh slices.
func Courtyard() map[string]Mesh {
	quads := map[string][]float32{
		// positions          // texture coords
		Floor: {
			6.0, -1.0, 10.0, 15.0, 0.0,
			-6.0, -1.0, 10.0, 0.0, 0.0,
			-6.0, -1.0, -10.0, 0.0, 15.0,

			6.0, -1.0, 10.0, 15.0, 0.0,
			-6.0, -1.0, -10.0, 0.0, 15.0,
			6.0, -1.0, -10.0, 15.0, 15.0,
		},
		LeftRoad: {
			6.0, -1.0, 10.0, 2.0, 0.0,
			-8.0, -1.0, 10.0, 0.0, 0.0,
			-8.0, -1.0, -10.0, 0.0, 10.0,

			6.0, -1.0, 10.0, 2.0, 0.0,
			-8.0, -1.0, -10.0, 0.0, 10.0,
			6.0, -1.0, -10.0, 2.0, 10.0,
		},
		RightRoad: {
			8.0, -1.0, 10.0, 2.0, 0.0,
			6.0, -1.0, 10.0, 0.0, 0.0,
			6.0, -1.0, -10.0, 0.0, 10.0,

			8.0, -1.0, 10.0, 2.0, 0.0,
			6.0, -1.0, -10.0, 0.0, 10.0,
			8.0, -1.0, -10.0, 2.0, 10.0,
		},
		// sits just above the floor
		Grass: {
			4.0, -0.9999, 6.0, 15.0, 0.0,
			-4.0, -0.9999, 6.0, 0.0, 0.0,
			-4.0, -0.9999, -5.0, 0.0, 15.0,

			4.0, -0.9999, 6.0, 20.0, 0.0,
			-4.0, -0.9999, -5.0, 0.0, 20.0,
			4.0, -0.9999, -5.0, 20.0, 20.0,
		},
		Yard: {
			2.0, -0.8, 3.0, 10.0, 0.0,
			-2.0, -0.8, 3.0, 0.0, 0.0,
			-2.0, -0.8, -3.0, 0.0, 10.0,

			2.0, -0.8, 3.0, 10.0, 0.0,
			-2.0, -0.8, -3.0, 0.0, 10.0,
			2.0, -0.8, -3.0, 10.0, 10.0,
		},
		BackWall:  outerWallZ(10.0),
		FrontWall: outerWallZ(-10.0),
		LeftWall:  outerWallX(-6.0),
		RightWall: outerWallX(6.0),
		BackYardWall: {
			2.0, 0.0, 3.0, 5.0, 0.0,
			-2.0, 0.0, 3.0, 0.0, 0.0,
			-2.0, -1.0, 3.0, 0.0, 1.0,

			2.0, 0.0, 3.0, 5.0, 0.0,
			-2.0, -1.0, 3.0, 0.0, 1.0,
			2.0, -1.0, 3.0, 5.0, 1.0,
		},
		// two panels either side of the gate
		FrontYardWall: {
			2.0, 0.0, -3.0, 2.0, 0.0,
			0.5, 0.0, -3.0, 0.0, 0.0,
			0.5, -1.0, -3.0, 0.0, 1.0,

			2.0, 0.0, -3.0, 2.0, 0.0,
			0.5, -1.0, -3.0, 0.0, 1.0,
			2.0, -1.0, -3.0, 2.0, 1.0,

			-0.5, 0.0, -3.0, 2.0, 0.0,
			-2.0, 0.0, -3.0, 0.0, 0.0,
			-2.0, -1.0, -3.0, 0.0, 1.0,

			-0.5, 0.0, -3.0, 2.0, 0.0,
			-2.0, -1.0, -3.0, 0.0, 1.0,
			-0.5, -1.0, -3.0, 2.0, 1.0,
		},
		LeftYardWall:  yardWallX(-2.0),
		RightYardWall: yardWallX(2.0),
		Gate: {
			0.5, 0.0, -3.0, 1.0, 0.0,
			-0.5, 0.0, -3.0, 0.0, 0.0,
			-0.5, -1.0, -3.0, 0.0, 1.0,

			0.5, 0.0, -3.0, 1.0, 0.0,
			-0.5, -1.0, -3.0, 0.0, 1.0,
			0.5, -1.0, -3.0, 1.0, 1.0,
		},
	}

	meshes := make(map[string]Mesh, len(quads))
	for name, v := range quads {
		meshes[name] = Mesh{Name: name, Vertices: v, Layout: PosUV}
	}
	return meshes
}

// outerWallZ is a perimeter wall in the XY plane at depth z.
func outerWallZ(z float32) []float32 {
	return []float32{
		6.0, 0.5, z, 5.0, 0.0,
		-6.0, 0.5, z, 0.0, 0.0,
		-6.0, -1.0, z, 0.0, 1.0,

		6.0, 0.5, z, 5.0, 0.0,
		-6.0, -1.0, z, 0.0, 1.0,
		6.0, -1.0, z, 5.0, 1.0,
	}
}

// outerWallX is a perimeter wall in the ZY plane at x.
func outerWallX(x float32) []float32 {
	return []float32{
		x, 0.5, 10.0, 5.0, 0.0,
		x, 0.5, -10.0, 0.0, 0.0,
		x, -1.0, -10.0, 0.0, 1.0,

		x, 0.5, 10.0, 5.0, 0.0,
		x, -1.0, -10.0, 0.0, 1.0,
		x, -1.0, 10.0, 5.0, 1.0,
	}
}

func yardWallX(x float32) []float32 {
	return []float32{
		x, 0.0, 3.0, 5.0, 0.0,
		x, 0.0, -3.0, 0.0, 0.0,
		x, -1.0, -3.0, 0.0, 1.0,

		x, 0.0, 3.0, 5.0, 0.0,
		x, -1.0, -3.0, 0.0, 1.0,
		x, -1.0, 3.0, 5.0, 1.0,
	}
}

// SkyboxCube is the unit cube sampled as a cubemap direction.
func SkyboxCube() Mesh {
	return Mesh{
		Name:   "skybox",
		Layout: Pos,
		Vertices: []float32{
			-1.0, 1.0, -1.0,
			-1.0, -1.0, -1.0,
			1.0, -1.0, -1.0,
			1.0, -1.0, -1.0,
			1.0, 1.0, -1.0,
			-1.0, 1.0, -1.0,

			-1.0, -1.0, 1.0,
			-1.0, -1.0, -1.0,
			-1.0, 1.0, -1.0,
			-1.0, 1.0, -1.0,
			-1.0, 1.0, 1.0,
			-1.0, -1.0, 1.0,

			1.0, -1.0, -1.0,
			1.0, -1.0, 1.0,
			1.0, 1.0, 1.0,
			1.0, 1.0, 1.0,
			1.0, 1.0, -1.0,
			1.0, -1.0, -1.0,

			-1.0, -1.0, 1.0,
			-1.0, 1.0, 1.0,
			1.0, 1.0, 1.0,
			1.0, 1.0, 1.0,
			1.0, -1.0, 1.0,
			-1.0, -1.0, 1.0,

			-1.0, 1.0, -1.0,
			1.0, 1.0, -1.0,
			1.0, 1.0, 1.0,
			1.0, 1.0, 1.0,
			-1.0, 1.0, 1.0,
			-1.0, 1.0, -1.0,

			-1.0, -1.0, -1.0,
			-1.0, -1.0, 1.0,
			1.0, -1.0, -1.0,
			1.0, -1.0, -1.0,
			-1.0, -1.0, 1.0,
			1.0, -1.0, 1.0,
		},
	}
}

// ReflectiveCube is a half-unit cube with face normals.
func ReflectiveCube() Mesh {
	return Mesh{
		Name:   "reflective_cube",
		Layout: PosNormal,
		Vertices: []float32{
			// back
			-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
			0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
			0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
			0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
			-0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
			-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
			// front
			-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
			0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
			0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
			0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
			-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
			// left
			-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,
			-0.5, 0.5, -0.5, -1.0, 0.0, 0.0,
			-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
			-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
			-0.5, -0.5, 0.5, -1.0, 0.0, 0.0,
			-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,
			// right
			0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
			// bottom
			-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
			0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
			0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
			0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
			-0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
			-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
			// top
			-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
			0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
			0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
			0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
			-0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
			-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
		},
	}
}
