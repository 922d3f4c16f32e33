package scene

import (
	"errors"
	"strings"

	"neonrun/arcade/quarkgl"
	"neonrun/arcade/runner"
	"neonrun/hal"
)

var ErrUnsupportedFormat = errors.New("scene: unsupported framebuffer format")

const (
	maxEntities = runner.MaxObstacles + runner.MaxPads

	floorWidth = 20
	floorDepth = 400
)

// Surface draws a runner world with quarkgl and keeps the status text for
// the HUD. It implements runner.Surface and runner.DisplaySink.
type Surface struct {
	scene *quarkgl.Scene
	rend  *quarkgl.Renderer
	tgt   quarkgl.RGB565Target

	player   int
	floor    int
	entities [maxEntities]int
	bound    int // arena slots with a mesh

	text    string
	boosted bool
}

func New() *Surface {
	s := &Surface{
		scene: quarkgl.CreateScene(2 + maxEntities),
		rend:  quarkgl.NewRenderer(0, 0, true),
	}
	s.rend.ClearColor = colorSky
	s.rend.Mode = quarkgl.RenderSolidFlat

	cam := &s.scene.Camera
	cam.Position = quarkgl.V3(0, 2, 5)
	cam.Target = quarkgl.V3(0, 1, 0)
	cam.FOVYRad = quarkgl.Deg(60)
	cam.Near = 0.1
	cam.Far = 1000

	s.scene.Light = quarkgl.Light{
		Mode:      quarkgl.LightAmbientDirectional,
		Ambient:   0.45,
		Dir:       quarkgl.Normalize(quarkgl.V3(-0.3, -1, -0.6)),
		DirAmount: 0.6,
	}

	floor := quarkgl.NewPlane(floorWidth, floorDepth, 10, 100, colorFloor)
	floor.Material.Wireframe = true
	floor.Material.Unlit = true
	s.floor = s.scene.AddMesh(floor)

	p := runner.PlayerSize
	s.player = s.scene.AddMesh(quarkgl.NewBox(quarkgl.Scalar(p.X), quarkgl.Scalar(p.Y), quarkgl.Scalar(p.Z), colorPlayer))

	for i := range s.entities {
		s.entities[i] = -1
	}
	return s
}

// Scene exposes the underlying quarkgl scene.
func (s *Surface) Scene() *quarkgl.Scene { return s.scene }

// Sync moves every mesh to its entity's position.
func (s *Surface) Sync(w *runner.World) {
	if w == nil {
		return
	}
	s.bind(&w.Arena)

	s.scene.UpdateMeshTransform(s.floor, translate(runner.Vec3{Z: w.FloorZ}))
	s.scene.UpdateMeshTransform(s.player, translate(w.Player.Pos))

	boosted := w.State.BoostTimer > 0
	if boosted != s.boosted {
		s.boosted = boosted
		c := colorPlayer
		if boosted {
			c = colorBoosted
		}
		s.scene.Mesh(s.player).Material.BaseColor = c
	}

	for i := 0; i < s.bound; i++ {
		e := w.Arena.At(i)
		if e == nil {
			s.scene.SetMeshEnabled(s.entities[i], false)
			continue
		}
		s.scene.SetMeshEnabled(s.entities[i], true)
		s.scene.UpdateMeshTransform(s.entities[i], translate(e.Pos))
	}
}

// bind lazily creates one mesh per arena slot. The arena never grows after
// the loop is built, so this runs once.
func (s *Surface) bind(a *runner.Arena) {
	for i := s.bound; i < a.Len() && i < maxEntities; i++ {
		e := a.At(i)
		c := colorObstacle
		if a.IsPad(i) {
			c = colorPad
		}
		m := quarkgl.NewBox(quarkgl.Scalar(e.Size.X), quarkgl.Scalar(e.Size.Y), quarkgl.Scalar(e.Size.Z), c)
		s.entities[i] = s.scene.AddMesh(m)
		s.bound = i + 1
	}
}

// Resize updates the camera aspect ratio.
func (s *Surface) Resize(width, height int) {
	s.scene.Camera.SetViewport(width, height)
}

// SetText stores the HUD text drawn by the next Render.
func (s *Surface) SetText(text string) { s.text = text }

func (s *Surface) Text() string { return s.text }

// Render draws the scene and HUD into fb and presents it.
func (s *Surface) Render(fb hal.Framebuffer) error {
	if fb == nil {
		return nil
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return ErrUnsupportedFormat
	}
	s.tgt = quarkgl.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
	s.rend.Render(&s.tgt, s.scene)
	s.drawHUD()
	return fb.Present()
}

func (s *Surface) drawHUD() {
	if s.text == "" {
		return
	}
	lines := strings.Split(s.text, "\n")
	d := &fbDisplayer{t: &s.tgt}
	if len(lines) == 1 {
		c := colorText
		if s.boosted {
			c = colorTextWarn
		}
		drawText(d, 4, 4, lines[0], c)
		return
	}
	drawCentered(d, lines, colorText, colorTextDim)
}

func translate(p runner.Vec3) quarkgl.Mat4 {
	return quarkgl.Mat4Translate(quarkgl.V3f(p.X, p.Y, p.Z))
}
