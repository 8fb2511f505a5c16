package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// lineSpacing is the wrapped-text line height as a multiple of the font size.
const lineSpacing = 1.4

// One source, one face per size.
var (
	fontSource *text.GoTextFaceSource
	fontFaces  = map[float64]*text.GoTextFace{}
)

// InitFonts loads the UI typeface from TTF or OTF data.
func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	clear(fontFaces)
	return nil
}

// InitDefaultFonts loads the embedded Go Regular face.
func InitDefaultFonts() error {
	return InitFonts(goregular.TTF)
}

func GetFace(size float64) *text.GoTextFace {
	face, ok := fontFaces[size]
	if !ok {
		face = &text.GoTextFace{Source: fontSource, Size: size}
		fontFaces[size] = face
	}
	return face
}

func drawAligned(dst *ebiten.Image, txt string, x, y, size float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = align
	op.LineSpacing = size * lineSpacing
	text.Draw(dst, txt, GetFace(size), op)
}

// DrawText draws txt with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawAligned(dst, txt, x, y, size, clr, text.AlignStart)
}

// DrawTextCentered draws txt centred on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	drawAligned(dst, txt, cx, cy, size, clr, text.AlignCenter)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size), size*lineSpacing)
}

// DrawTextWrapped word-wraps txt to maxWidth and returns the height used.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	lines := wrapLines(strings.Fields(txt), maxWidth, func(s string) float64 {
		w, _ := MeasureText(s, size)
		return w
	})
	if len(lines) == 0 {
		return 0
	}
	DrawText(dst, strings.Join(lines, "\n"), x, y, size, clr)
	return float64(len(lines)) * size * lineSpacing
}

// wrapLines greedily packs words into lines no wider than maxWidth. A word
// wider than maxWidth gets a line of its own.
func wrapLines(words []string, maxWidth float64, width func(string) float64) []string {
	var lines []string
	line := ""
	for _, word := range words {
		if line == "" {
			line = word
			continue
		}
		if next := line + " " + word; width(next) <= maxWidth {
			line = next
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// truncateText shortens s with an ellipsis until it fits maxWidth.
func truncateText(s string, maxWidth float64, fontSize float64) string {
	if w, _ := MeasureText(s, fontSize); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "…"
		if w, _ := MeasureText(candidate, fontSize); w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
