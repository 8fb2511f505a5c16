package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Theme colors from the app
var (
	accentBlue   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	purpleAccent = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	darkBG       = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	cardBack     = color.RGBA{R: 0x3A, G: 0x3A, B: 0x48, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws the carousel in miniature: a full-size card on the left
// with two shrinking cards fanned out behind it to the right.
func generate(size int) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)

	dc.SetColor(darkBG)
	dc.DrawRoundedRectangle(0, 0, s, s, s*0.18)
	dc.Fill()

	cardW, cardH := s*0.42, s*0.62
	top := (s - cardH) / 2
	cards := []struct {
		x, scale float64
		col      color.Color
	}{
		{s * 0.46, 0.7, cardBack},
		{s * 0.32, 0.85, purpleAccent},
		{s * 0.12, 1, accentBlue},
	}
	for _, c := range cards {
		w, h := cardW*c.scale, cardH*c.scale
		y := top + (cardH-h)/2
		dc.SetColor(c.col)
		dc.DrawRoundedRectangle(c.x+(cardW-w)/2, y, w, h, s*0.05)
		dc.Fill()
	}

	// Play glyph on the active card
	cx, cy := s*0.12+cardW/2, s/2
	r := s * 0.09
	dc.SetColor(color.White)
	dc.MoveTo(cx-r*0.7, cy-r)
	dc.LineTo(cx+r, cy)
	dc.LineTo(cx-r*0.7, cy+r)
	dc.ClosePath()
	dc.Fill()

	return dc.Image()
}
