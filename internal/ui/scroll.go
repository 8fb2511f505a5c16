package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPhase is what the primary pointer did this frame.
type PointerPhase int

const (
	PointerNone PointerPhase = iota
	PointerDown
	PointerMove
	PointerUp
)

// PointerState tracks a single primary pointer across frames: the first
// touch if there is one, otherwise the left mouse button.
type PointerState struct {
	touchID  ebiten.TouchID
	touching bool
	mouse    bool
	x, y     int

	touchBuf []ebiten.TouchID
}

// Poll reads this frame's pointer input. Call once per Update.
func (p *PointerState) Poll() (x, y int, phase PointerPhase) {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			return p.x, p.y, PointerUp
		}
		x, y = ebiten.TouchPosition(p.touchID)
		return p.moveTo(x, y)
	}
	if p.mouse {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			p.mouse = false
			p.x, p.y = ebiten.CursorPosition()
			return p.x, p.y, PointerUp
		}
		x, y = ebiten.CursorPosition()
		return p.moveTo(x, y)
	}

	p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
	if len(p.touchBuf) > 0 {
		p.touchID = p.touchBuf[0]
		p.touching = true
		p.x, p.y = ebiten.TouchPosition(p.touchID)
		return p.x, p.y, PointerDown
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.mouse = true
		p.x, p.y = ebiten.CursorPosition()
		return p.x, p.y, PointerDown
	}
	return 0, 0, PointerNone
}

func (p *PointerState) moveTo(x, y int) (int, int, PointerPhase) {
	if x == p.x && y == p.y {
		return x, y, PointerNone
	}
	p.x, p.y = x, y
	return x, y, PointerMove
}

// Active reports whether a press is in progress.
func (p *PointerState) Active() bool {
	return p.touching || p.mouse
}
