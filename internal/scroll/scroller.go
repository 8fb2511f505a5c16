// Package scroll turns pointer drags, flings and programmatic smooth
// scrolls into per-frame ScrollBy calls on a carousel layout. It plays the
// part of a platform scroll container for hosts that have none.
package scroll

import (
	"math"

	"github.com/depeter/rightslide/internal/carousel"
)

// Target is the layout a Scroller drives. *carousel.Layout satisfies it.
type Target interface {
	ScrollBy(dx int) int
	Settle(direction int) (carousel.Snap, bool)
	BeginInteraction()
	EndInteraction()
}

// Tuning for a 60 TPS frame loop.
const (
	// AnimSpeed is the fraction of the remaining smooth-scroll distance
	// covered per frame.
	AnimSpeed = 0.18
	// Friction scales fling velocity every frame.
	Friction = 0.92
	// MinFlingVelocity is the release speed, in px per frame, below which a
	// release settles without flinging.
	MinFlingVelocity = 2.0
	// TapSlop is how far a press may travel and still count as a tap.
	TapSlop = 8
)

type mode int

const (
	idle mode = iota
	dragging
	flinging
	animating
)

// Scroller is not safe for concurrent use; hosts call it from their frame
// loop.
type Scroller struct {
	target Target
	mode   mode

	remaining float64
	velocity  float64
	frac      float64

	pressX, lastX float64
}

func New(t Target) *Scroller {
	return &Scroller{target: t}
}

// Dragging reports whether a press is in progress.
func (s *Scroller) Dragging() bool { return s.mode == dragging }

// Idle reports whether nothing is moving.
func (s *Scroller) Idle() bool { return s.mode == idle }

// SmoothScrollBy starts an animated scroll of dx pixels from the current
// position, replacing any animation still running. A drag in progress takes
// precedence and drops the request.
func (s *Scroller) SmoothScrollBy(dx int) {
	if s.mode == dragging || dx == 0 {
		return
	}
	s.velocity = 0
	s.frac = 0
	s.remaining = float64(dx)
	s.mode = animating
}

// Press starts a drag at x.
func (s *Scroller) Press(x float64) {
	s.mode = dragging
	s.pressX, s.lastX = x, x
	s.velocity = 0
	s.remaining = 0
	s.frac = 0
	s.target.BeginInteraction()
}

// Drag moves the content with the pointer. Moving the pointer left scrolls
// towards higher indices.
func (s *Scroller) Drag(x float64) {
	if s.mode != dragging {
		return
	}
	dx := s.lastX - x
	s.lastX = x
	s.velocity = s.velocity*0.5 + dx*0.5
	s.step(dx)
}

// Release ends a drag. It reports whether the pointer stayed within
// TapSlop of where it was pressed.
func (s *Scroller) Release() (tap bool) {
	if s.mode != dragging {
		return false
	}
	tap = math.Abs(s.lastX-s.pressX) < TapSlop
	s.target.EndInteraction()
	if !tap && math.Abs(s.velocity) >= MinFlingVelocity {
		s.mode = flinging
		return false
	}
	s.mode = idle
	s.velocity = 0
	s.settle(0)
	return tap
}

// Cancel ends a drag without flinging.
func (s *Scroller) Cancel() {
	if s.mode != dragging {
		return
	}
	s.mode = idle
	s.velocity = 0
	s.target.EndInteraction()
	s.settle(0)
}

// Update advances one frame.
func (s *Scroller) Update() {
	switch s.mode {
	case flinging:
		dir := sign(s.velocity)
		want, got := s.step(s.velocity)
		s.velocity *= Friction
		// A short consume means the layout stopped the fling: either it hit
		// an end or it is paged.
		if math.Abs(s.velocity) < MinFlingVelocity || (want != 0 && abs(got) < abs(want)) {
			s.mode = idle
			s.velocity = 0
			s.settle(dir)
		}
	case animating:
		d := s.remaining * AnimSpeed
		if math.Abs(d) < 1 {
			d = math.Copysign(min(1, math.Abs(s.remaining)), s.remaining)
		}
		s.remaining -= d
		s.step(d)
		if math.Abs(s.remaining) < 0.5 {
			s.remaining = 0
			s.mode = idle
			s.flush()
			s.settle(0)
		}
	}
}

// step scrolls by d, carrying sub-pixel remainders between frames. It
// returns the whole pixels requested and consumed.
func (s *Scroller) step(d float64) (want, got int) {
	s.frac += d
	want = int(s.frac)
	if want == 0 {
		return 0, 0
	}
	s.frac -= float64(want)
	return want, s.target.ScrollBy(want)
}

func (s *Scroller) flush() {
	if px := int(math.Round(s.frac)); px != 0 {
		s.target.ScrollBy(px)
	}
	s.frac = 0
}

func (s *Scroller) settle(direction int) {
	s.frac = 0
	if snap, ok := s.target.Settle(direction); ok && snap.Distance != 0 {
		s.SmoothScrollBy(snap.Distance)
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
