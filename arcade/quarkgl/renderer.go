package quarkgl

// guardBand bounds projected coordinates, in NDC units. Triangles reaching
// further out are dropped so line drawing stays bounded.
const guardBand = 8

// farDepth is the cleared depth value; stored depths are in [0, 1].
const farDepth = 2

// Renderer rasterizes a Scene into a Target. Reuse one Renderer across
// frames; its depth buffer grows to the largest target seen.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depth []float32

	// Drawn counts triangles that survived culling in the last Render.
	Drawn int
}

// NewRenderer returns a flat-shaded renderer. With depth set, a w*h depth
// buffer is allocated up front.
func NewRenderer(w, h int, depth bool) *Renderer {
	r := &Renderer{Mode: RenderSolidFlat}
	r.EnableDepth(depth, w, h)
	return r
}

// EnableDepth toggles depth testing and sizes the buffer for a w*h target.
func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	n := w * h
	switch {
	case !on || n <= 0:
		r.depth = nil
	case cap(r.depth) >= n:
		r.depth = r.depth[:n]
	default:
		r.depth = make([]float32, n)
	}
}

// screenVertex is a projected vertex: pixel position, depth in [0, 1] and
// the color to shade it with.
type screenVertex struct {
	x, y int
	z    float32
	c    Color
}

// frame carries the per-Render constants shared by every mesh.
type frame struct {
	t        Target
	w, h     int
	viewProj Mat4
	near     Scalar
	light    Light
}

// Render clears t and draws every enabled mesh of s.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	r.Drawn = 0
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)
	if r.Depth {
		r.EnableDepth(true, w, h)
		for i := range r.depth {
			r.depth[i] = farDepth
		}
	}

	f := frame{
		t:        t,
		w:        w,
		h:        h,
		viewProj: Mat4Mul(s.Camera.Projection(Scalar(w)/Scalar(h)), s.Camera.View()),
		near:     max(s.Camera.Near, 0),
		light:    s.Light,
	}
	s.eachMesh(func(m *Mesh) {
		if m.Enabled {
			r.drawMesh(&f, m)
		}
	})
}

func (r *Renderer) drawMesh(f *frame, m *Mesh) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	mvp := Mat4Mul(f.viewProj, model)

	mode := r.Mode
	if m.Material.Wireframe {
		mode = RenderWireframe
	}
	shade := !m.Material.Unlit && f.light.Mode == LightAmbientDirectional

	var tri [3]screenVertex
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var src [3]Vertex
		ok := true
		for k := 0; k < 3 && ok; k++ {
			idx := int(m.Indices[i+k])
			if idx >= len(m.Vertices) {
				ok = false
				break
			}
			src[k] = m.Vertices[idx]
			tri[k], ok = project(f, mvp, src[k].Pos)
		}
		if !ok {
			continue
		}

		face := m.Material.BaseColor
		if shade {
			n := Normalize(Cross(src[1].Pos.Sub(src[0].Pos), src[2].Pos.Sub(src[0].Pos)))
			face = face.MulScalar(f.light.intensity(n))
		}
		for k := range tri {
			tri[k].c = face
			if mode == RenderSolidVertexColor {
				tri[k].c = src[k].Color
			}
		}

		r.Drawn++
		if mode == RenderWireframe {
			for k := range tri {
				a, b := tri[k], tri[(k+1)%3]
				line(f.t, a.x, a.y, b.x, b.y, face)
			}
			continue
		}
		r.fill(f, tri)
	}
}

// project maps a model-space point to the screen. It fails for points at
// or behind the near plane and for points far outside the viewport.
func project(f *frame, mvp Mat4, p Vec3) (screenVertex, bool) {
	c := Mat4MulV4(mvp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if c.W <= 0 || c.W <= f.near {
		return screenVertex{}, false
	}
	nx, ny, nz := c.X/c.W, c.Y/c.W, c.Z/c.W
	if nx < -guardBand || nx > guardBand || ny < -guardBand || ny > guardBand {
		return screenVertex{}, false
	}
	sx := (nx + 1) * 0.5 * float32(f.w-1)
	sy := (1 - ny) * 0.5 * float32(f.h-1)
	return screenVertex{
		x: int(sx + 0.5),
		y: int(sy + 0.5),
		z: Clamp01(nz*0.5 + 0.5),
	}, true
}

func (l Light) intensity(n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	dir := Normalize(l.Dir)
	if dir == (Vec3{}) {
		return amb
	}
	d := -Dot(n, dir)
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*Clamp01(l.DirAmount))
}

// line is Bresenham; t clips.
func line(t Target, x0, y0, x1, y1 int, c Color) {
	dx, sx := x1-x0, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y0-y1, 1
	if dy > 0 {
		dy, sy = -dy, -1
	}
	e := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		if 2*e >= dy {
			e += dy
			x0 += sx
		}
		if 2*e <= dx {
			e += dx
			y0 += sy
		}
	}
}

// fill rasterizes tri with barycentric edge functions over its clipped
// bounding box. Either winding is accepted.
func (r *Renderer) fill(f *frame, tri [3]screenVertex) {
	a, b, c := tri[0], tri[1], tri[2]
	x0, x1 := max(min(a.x, b.x, c.x), 0), min(max(a.x, b.x, c.x), f.w-1)
	y0, y1 := max(min(a.y, b.y, c.y), 0), min(max(a.y, b.y, c.y), f.h-1)
	if x0 > x1 || y0 > y1 {
		return
	}
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	inv := 1 / float32(area)
	flat := a.c == b.c && b.c == c.c

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			wa := float32(edge(b, c, x, y)) * inv
			wb := float32(edge(c, a, x, y)) * inv
			wc := float32(edge(a, b, x, y)) * inv
			if wa < 0 || wb < 0 || wc < 0 {
				continue
			}
			if !r.testDepth(f.w, x, y, wa*a.z+wb*b.z+wc*c.z) {
				continue
			}
			if flat {
				f.t.SetPixel(x, y, a.c)
				continue
			}
			f.t.SetPixel(x, y, Color{
				R: blend(wa, wb, wc, a.c.R, b.c.R, c.c.R),
				G: blend(wa, wb, wc, a.c.G, b.c.G, c.c.G),
				B: blend(wa, wb, wc, a.c.B, b.c.B, c.c.B),
				A: 0xFF,
			})
		}
	}
}

// edge is twice the signed area of (p, q, (x, y)).
func edge(p, q screenVertex, x, y int) int {
	return (x-p.x)*(q.y-p.y) - (y-p.y)*(q.x-p.x)
}

func blend(wa, wb, wc float32, a, b, c uint8) uint8 {
	v := wa*float32(a) + wb*float32(b) + wc*float32(c)
	return uint8(max(0, min(v, 255)))
}

// testDepth reports whether z is nearer than the stored depth at (x, y)
// and records it if so. Without a depth buffer every pixel passes.
func (r *Renderer) testDepth(w, x, y int, z float32) bool {
	if !r.Depth || r.depth == nil {
		return true
	}
	i := y*w + x
	if x < 0 || x >= w || i < 0 || i >= len(r.depth) {
		return false
	}
	if z >= r.depth[i] {
		return false
	}
	r.depth[i] = z
	return true
}
