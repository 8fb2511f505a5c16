package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/rightslide/internal/carousel"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugLines describes the layout state shown by the overlay.
func DebugLines(l *carousel.Layout) []string {
	w, h := l.ItemSize()
	cfg := l.Config()
	lines := []string{
		fmt.Sprintf("offset=%d  items=%d", l.Offset(), l.ItemCount()),
		fmt.Sprintf("first=%d  sub=%d  current=%d", l.FirstVisibleIndex(), l.FirstVisibleSubOffset(), l.CurrentIndex()),
		fmt.Sprintf("item=%dx%d  loop=%t  paged=%t", w, h, cfg.Loop, cfg.Paged),
		fmt.Sprintf("auto=%t  armed=%t", cfg.AutoAdvance, l.AutoAdvanceArmed()),
		"--- slots ---",
	}
	for _, s := range l.Slots() {
		lines = append(lines, fmt.Sprintf("#%-3d depth=%d  x=%-5d scale=%.2f alpha=%.2f",
			s.Index, s.Depth, s.Rect.Min.X, s.Scale, s.Alpha))
	}
	return lines
}

// DrawDebugOverlay draws the layout state if visible.
func DrawDebugOverlay(screen *ebiten.Image, l *carousel.Layout) {
	if !debugOverlayVisible || l == nil {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	lines := DebugLines(l)
	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW := 460.0
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: Carousel (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
