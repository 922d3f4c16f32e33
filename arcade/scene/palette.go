package scene

import (
	"image/color"

	"neonrun/arcade/quarkgl"
)

// Neon palette.
var (
	colorSky      = quarkgl.Hex(0x080015)
	colorPlayer   = quarkgl.Hex(0xFF00FF)
	colorBoosted  = quarkgl.Hex(0xFFFFFF)
	colorObstacle = quarkgl.Hex(0x00FFFF)
	colorPad      = quarkgl.Hex(0xFFEE00)
	colorFloor    = quarkgl.Hex(0x2222AA)

	colorText     = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorTextDim  = color.RGBA{R: 0x50, G: 0xD1, B: 0xFF, A: 0xFF}
	colorTextWarn = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
)
