package quarkgl

// Material is a flat surface color plus draw flags.
type Material struct {
	BaseColor Color
	Wireframe bool // draw edges only, ignoring the renderer mode
	Unlit     bool
}

type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is one ambient term plus one directional term, both in [0, 1].
type Light struct {
	Mode      LightMode
	Ambient   Scalar
	Dir       Vec3 // points from the light into the scene
	DirAmount Scalar
}

// Camera is a perspective look-at camera.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYRad Scalar
	// Aspect is width/height; zero defers to the render target.
	Aspect Scalar

	Near Scalar
	Far  Scalar
}

func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the perspective matrix, using c.Aspect when set and
// targetAspect otherwise.
func (c Camera) Projection(targetAspect Scalar) Mat4 {
	aspect := targetAspect
	if c.Aspect > 0 {
		aspect = c.Aspect
	}
	fov := c.FOVYRad
	if fov == 0 {
		fov = Deg(60)
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// SetViewport derives the aspect from a viewport size. Non-positive sizes
// are ignored.
func (c *Camera) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		c.Aspect = Scalar(w) / Scalar(h)
	}
}

type Vertex struct {
	Pos   Vec3
	Color Color
}

// Mesh is an indexed triangle list placed by Transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16

	Transform Mat4
	Material  Material
}

type slot struct {
	mesh Mesh
	used bool
}

// Scene holds a fixed number of mesh slots. Slots are never freed; callers
// toggle Enabled instead, so ids stay stable for the scene's lifetime.
type Scene struct {
	Camera Camera
	Light  Light

	slots []slot
}

// CreateScene returns a scene with room for n meshes, a camera at
// (0, 0, 3) facing the origin and a soft key light.
func CreateScene(n int) *Scene {
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 3),
			Up:       V3(0, 1, 0),
			FOVYRad:  Deg(60),
			Near:     0.1,
			Far:      1000,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       Normalize(V3(1, -1, -1)),
			DirAmount: 0.75,
		},
		slots: make([]slot, max(n, 0)),
	}
}

// AddMesh stores m in the first free slot and returns its id, or -1 when
// the scene is full. A zero transform becomes identity and a zero color
// becomes light grey.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.slots {
		if s.slots[i].used {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.slots[i] = slot{mesh: m, used: true}
		return i
	}
	return -1
}

// Mesh returns the mesh with the given id, or nil.
func (s *Scene) Mesh(id int) *Mesh {
	if s == nil || id < 0 || id >= len(s.slots) || !s.slots[id].used {
		return nil
	}
	return &s.slots[id].mesh
}

// Len returns the number of meshes added.
func (s *Scene) Len() int {
	n := 0
	for _, sl := range s.slots {
		if sl.used {
			n++
		}
	}
	return n
}

func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if m := s.Mesh(id); m != nil {
		m.Enabled = enabled
	}
}

func (s *Scene) UpdateMeshTransform(id int, t Mat4) {
	if m := s.Mesh(id); m != nil {
		m.Transform = t
	}
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.slots {
		if s.slots[i].used {
			fn(&s.slots[i].mesh)
		}
	}
}
