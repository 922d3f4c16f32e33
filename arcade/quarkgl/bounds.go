package quarkgl

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vec3
}

// Intersects reports whether the boxes overlap. Touching faces count.
func (b AABB) Intersects(o AABB) bool {
	return !(o.Max.X < b.Min.X || o.Min.X > b.Max.X ||
		o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y ||
		o.Max.Z < b.Min.Z || o.Min.Z > b.Max.Z)
}

// Bounds returns the world-space box enclosing the transformed vertices.
// An empty mesh yields the zero box.
func (m *Mesh) Bounds() AABB {
	if m == nil || len(m.Vertices) == 0 {
		return AABB{}
	}
	t := m.Transform
	if t == (Mat4{}) {
		t = Mat4Identity()
	}
	first := TransformPoint(t, m.Vertices[0].Pos)
	b := AABB{Min: first, Max: first}
	for _, v := range m.Vertices[1:] {
		p := TransformPoint(t, v.Pos)
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Min.Z = min(b.Min.Z, p.Z)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
		b.Max.Z = max(b.Max.Z, p.Z)
	}
	return b
}
