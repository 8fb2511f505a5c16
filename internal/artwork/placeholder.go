// Package artwork renders stand-in card art for items without a poster and
// for the offline demo feed.
package artwork

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontsOnce sync.Once
	fontsErr  error
	boldFont  *truetype.Font
	plainFont *truetype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if boldFont, fontsErr = truetype.Parse(gobold.TTF); fontsErr != nil {
			return
		}
		plainFont, fontsErr = truetype.Parse(goregular.TTF)
	})
	return fontsErr
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// Palette returns the two gradient stops used for a title. The same title
// always maps to the same colours.
func Palette(title string) (top, bottom color.RGBA) {
	h := fnv.New32a()
	h.Write([]byte(title))
	hue := float64(h.Sum32()%360) / 360
	return hsl(hue, 0.55, 0.45), hsl(math.Mod(hue+0.08, 1), 0.6, 0.18)
}

// Placeholder draws a w x h card with a gradient keyed on title, the title
// wrapped in the middle and an optional subtitle along the bottom.
func Placeholder(title, subtitle string, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("placeholder size %dx%d", w, h)
	}
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	fw, fh := float64(w), float64(h)
	dc := gg.NewContext(w, h)

	top, bottom := Palette(title)
	grad := gg.NewLinearGradient(0, 0, 0, fh)
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(0, 0, fw, fh, fw*0.05)
	dc.Fill()

	pad := fw * 0.08
	dc.SetFontFace(face(boldFont, fw*0.11))
	dc.SetRGB(1, 1, 1)
	dc.DrawStringWrapped(title, fw/2, fh*0.45, 0.5, 0.5, fw-2*pad, 1.3, gg.AlignCenter)

	if subtitle != "" {
		dc.SetFontFace(face(plainFont, fw*0.07))
		dc.SetRGBA(1, 1, 1, 0.7)
		dc.DrawStringAnchored(subtitle, fw/2, fh-pad, 0.5, 0)
	}
	return dc.Image(), nil
}

func hsl(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch int(h * 6) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
