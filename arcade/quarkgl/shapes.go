package quarkgl

// NewBox returns a box mesh of the given size centered on the origin.
func NewBox(w, h, d Scalar, c Color) Mesh {
	x, y, z := w/2, h/2, d/2
	v := []Vertex{
		{Pos: V3(-x, -y, -z)}, {Pos: V3(x, -y, -z)}, {Pos: V3(x, y, -z)}, {Pos: V3(-x, y, -z)},
		{Pos: V3(-x, -y, z)}, {Pos: V3(x, -y, z)}, {Pos: V3(x, y, z)}, {Pos: V3(-x, y, z)},
	}
	for i := range v {
		v[i].Color = c
	}
	// Counter-clockwise seen from outside.
	idx := []uint16{
		4, 5, 6, 4, 6, 7, // +z
		1, 0, 3, 1, 3, 2, // -z
		0, 4, 7, 0, 7, 3, // -x
		5, 1, 2, 5, 2, 6, // +x
		7, 6, 2, 7, 2, 3, // +y
		0, 1, 5, 0, 5, 4, // -y
	}
	return Mesh{
		Vertices: v,
		Indices:  idx,
		Material: Material{BaseColor: c},
	}
}

// NewPlane returns a flat grid on the XZ plane, centered on the origin,
// w wide along x and d deep along z, split into segW by segD cells.
func NewPlane(w, d Scalar, segW, segD int, c Color) Mesh {
	if segW < 1 {
		segW = 1
	}
	if segD < 1 {
		segD = 1
	}
	cols := segW + 1
	rows := segD + 1
	if cols*rows > 0xFFFF {
		rows = 0xFFFF / cols
		segD = rows - 1
	}

	v := make([]Vertex, 0, cols*rows)
	for r := 0; r < rows; r++ {
		z := -d/2 + d*Scalar(r)/Scalar(segD)
		for col := 0; col < cols; col++ {
			x := -w/2 + w*Scalar(col)/Scalar(segW)
			v = append(v, Vertex{Pos: V3(x, 0, z), Color: c})
		}
	}

	idx := make([]uint16, 0, segW*segD*6)
	for r := 0; r < segD; r++ {
		for col := 0; col < segW; col++ {
			a := uint16(r*cols + col)
			b := a + 1
			cc := a + uint16(cols)
			dd := cc + 1
			idx = append(idx, a, cc, b, b, cc, dd)
		}
	}
	return Mesh{
		Vertices: v,
		Indices:  idx,
		Material: Material{BaseColor: c},
	}
}
