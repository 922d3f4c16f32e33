package scene

import (
	"image/color"

	"neonrun/arcade/quarkgl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var hudFont tinyfont.Fonter = &tinyfont.TomThumb

var _ drivers.Displayer = (*fbDisplayer)(nil)

// fbDisplayer lets tinyfont draw into a quarkgl RGB565 target.
type fbDisplayer struct {
	t *quarkgl.RGB565Target
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	return int16(d.t.W), int16(d.t.H)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), quarkgl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d *fbDisplayer) Display() error { return nil }

func lineHeight() int16 {
	return int16(hudFont.GetYAdvance())
}

func textWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(hudFont, s)
	return int16(outbox)
}

// drawText draws s with its top-left corner at x, y.
func drawText(d *fbDisplayer, x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, hudFont, x, y+lineHeight(), s, c)
}

// drawCentered draws lines centered on the target; the first line uses
// head, the rest body.
func drawCentered(d *fbDisplayer, lines []string, head, body color.RGBA) {
	w, h := d.Size()
	lh := lineHeight() + 2
	y := (h - lh*int16(len(lines))) / 2
	for i, line := range lines {
		c := body
		if i == 0 {
			c = head
		}
		x := (w - textWidth(line)) / 2
		if x < 0 {
			x = 0
		}
		drawText(d, x, y, line, c)
		y += lh
	}
}
