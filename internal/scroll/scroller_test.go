package scroll

import (
	"image"
	"testing"

	"github.com/depeter/rightslide/internal/carousel"
)

type fakeTarget struct {
	offset   int
	limit    int // < 0 means unbounded
	paged    bool
	settles  []int
	snaps    []carousel.Snap
	begins   int
	ends     int
	scrollBy []int
}

func newFakeTarget() *fakeTarget { return &fakeTarget{limit: -1} }

func (f *fakeTarget) ScrollBy(dx int) int {
	f.scrollBy = append(f.scrollBy, dx)
	prev := f.offset
	f.offset += dx
	if f.limit >= 0 {
		f.offset = min(max(f.offset, 0), f.limit)
	}
	applied := f.offset - prev
	if f.paged {
		switch {
		case applied > 0:
			return 1
		case applied < 0:
			return -1
		}
	}
	return applied
}

func (f *fakeTarget) Settle(direction int) (carousel.Snap, bool) {
	f.settles = append(f.settles, direction)
	if len(f.snaps) == 0 {
		return carousel.Snap{}, false
	}
	s := f.snaps[0]
	f.snaps = f.snaps[1:]
	return s, true
}

func (f *fakeTarget) BeginInteraction() { f.begins++ }
func (f *fakeTarget) EndInteraction()   { f.ends++ }

func runUntilIdle(t *testing.T, s *Scroller) int {
	t.Helper()
	for frames := 1; frames <= 1000; frames++ {
		s.Update()
		if s.Idle() {
			return frames
		}
	}
	t.Fatal("scroller never came to rest")
	return 0
}

func TestSmoothScrollBy(t *testing.T) {
	tests := map[string]struct {
		dx   []int
		want int
	}{
		"forward":         {dx: []int{100}, want: 100},
		"backward odd":    {dx: []int{-37}, want: -37},
		"one pixel":       {dx: []int{1}, want: 1},
		"latest replaces": {dx: []int{60, 45}, want: 45},
		"reverses":        {dx: []int{60, -60}, want: -60},
		"zero is a no-op": {dx: []int{25, 0}, want: 25},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFakeTarget()
			s := New(f)
			for _, d := range tt.dx {
				s.SmoothScrollBy(d)
			}
			runUntilIdle(t, s)
			if f.offset != tt.want {
				t.Errorf("offset = %d, want %d", f.offset, tt.want)
			}
			if len(f.settles) != 1 || f.settles[0] != 0 {
				t.Errorf("settles = %v, want [0]", f.settles)
			}
		})
	}
}

func TestSmoothScrollBy_EasesOut(t *testing.T) {
	f := newFakeTarget()
	s := New(f)
	s.SmoothScrollBy(200)
	runUntilIdle(t, s)

	if len(f.scrollBy) < 3 {
		t.Fatalf("only %d steps", len(f.scrollBy))
	}
	if f.scrollBy[0] <= f.scrollBy[len(f.scrollBy)-1] {
		t.Errorf("first step %d not larger than last %d", f.scrollBy[0], f.scrollBy[len(f.scrollBy)-1])
	}
}

func TestSmoothScrollBy_RestartsFromCurrentPosition(t *testing.T) {
	f := newFakeTarget()
	s := New(f)
	s.SmoothScrollBy(100)
	for f.offset < 50 {
		s.Update()
	}
	s.SmoothScrollBy(100 - f.offset)
	runUntilIdle(t, s)

	if f.offset != 100 {
		t.Errorf("offset = %d, want 100", f.offset)
	}
}

func TestSmoothScrollBy_FollowsSnap(t *testing.T) {
	f := newFakeTarget()
	f.snaps = []carousel.Snap{{Index: 1, Distance: 30}}
	s := New(f)
	s.SmoothScrollBy(70)
	runUntilIdle(t, s)
	runUntilIdle(t, s)

	if f.offset != 100 {
		t.Errorf("offset = %d, want 100", f.offset)
	}
}

func TestDrag(t *testing.T) {
	f := newFakeTarget()
	s := New(f)

	s.Press(200)
	if !s.Dragging() || f.begins != 1 {
		t.Fatalf("dragging=%v begins=%d", s.Dragging(), f.begins)
	}
	s.Drag(150)
	s.Drag(100)
	if f.offset != 100 {
		t.Fatalf("offset = %d, want 100", f.offset)
	}

	// A drag wins over a programmatic scroll.
	s.SmoothScrollBy(500)
	if !s.Dragging() {
		t.Fatal("smooth scroll interrupted the drag")
	}

	if tap := s.Release(); tap {
		t.Error("long drag reported as tap")
	}
	if f.ends != 1 {
		t.Errorf("ends = %d, want 1", f.ends)
	}
	runUntilIdle(t, s)
	if f.offset <= 100 {
		t.Errorf("fling did not carry on: offset %d", f.offset)
	}
	if len(f.settles) != 1 || f.settles[0] != 1 {
		t.Errorf("settles = %v, want [1]", f.settles)
	}
}

func TestRelease_SlowSettlesInPlace(t *testing.T) {
	f := newFakeTarget()
	s := New(f)
	s.Press(100)
	s.Drag(80)
	for range 3 {
		s.Drag(80)
	}
	if tap := s.Release(); tap {
		t.Error("20px drag reported as tap")
	}
	if !s.Idle() {
		t.Error("slow release started a fling")
	}
	if len(f.settles) != 1 || f.settles[0] != 0 {
		t.Errorf("settles = %v, want [0]", f.settles)
	}
}

func TestRelease_Tap(t *testing.T) {
	f := newFakeTarget()
	s := New(f)
	s.Press(10)
	s.Drag(13)
	if tap := s.Release(); !tap {
		t.Error("short press not reported as tap")
	}
	if !s.Idle() {
		t.Error("tap started a fling")
	}
}

func TestFling_StopsAtEnd(t *testing.T) {
	f := newFakeTarget()
	f.limit = 150
	s := New(f)
	s.Press(300)
	s.Drag(250)
	s.Drag(200)
	s.Release()

	frames := runUntilIdle(t, s)
	if f.offset != 150 {
		t.Errorf("offset = %d, want 150", f.offset)
	}
	if frames > 5 {
		t.Errorf("fling ran %d frames past the end", frames)
	}
	if len(f.settles) != 1 || f.settles[0] != 1 {
		t.Errorf("settles = %v, want [1]", f.settles)
	}
}

func TestFling_PagedStopsImmediately(t *testing.T) {
	f := newFakeTarget()
	f.paged = true
	s := New(f)
	s.Press(300)
	s.Drag(250)
	s.Drag(200)
	s.Release()

	if frames := runUntilIdle(t, s); frames != 1 {
		t.Errorf("paged fling ran %d frames, want 1", frames)
	}
}

func TestCancel(t *testing.T) {
	f := newFakeTarget()
	s := New(f)
	s.Press(300)
	s.Drag(200)
	s.Cancel()
	if !s.Idle() || f.ends != 1 {
		t.Errorf("idle=%v ends=%d after cancel", s.Idle(), f.ends)
	}
	s.Cancel()
	if f.ends != 1 {
		t.Error("second Cancel ended the interaction again")
	}
}

// host is a minimal carousel host whose smooth scrolls run through a
// Scroller, as a real frame loop would.
type host struct {
	scroller *Scroller
}

func (h *host) ViewportWidth() int                            { return 300 }
func (h *host) AttachSlot(index, depth int) carousel.View     { return new(int) }
func (h *host) ReleaseSlot(carousel.View)                     {}
func (h *host) MeasureSlot(carousel.View) (int, int)          { return 100, 150 }
func (h *host) SetSlotRect(carousel.View, image.Rectangle)    {}
func (h *host) SetSlotVisual(carousel.View, float64, float64) {}
func (h *host) SetSlotDepth(carousel.View, int)               {}
func (h *host) SmoothScrollBy(dx int)                         { h.scroller.SmoothScrollBy(dx) }
func (h *host) RequestLayout()                                {}
func (h *host) CurrentIndexChanged(int)                       {}

func newLayout(t *testing.T, cfg carousel.Config) (*carousel.Layout, *Scroller) {
	t.Helper()
	l := carousel.New(cfg, nil)
	s := New(l)
	l.Attach(&host{scroller: s})
	l.LayoutPass(5, false)
	return l, s
}

func TestWithLayout_SlowDragSnapsForward(t *testing.T) {
	l, s := newLayout(t, carousel.DefaultConfig())
	s.Press(500)
	for x := 490.0; x >= 445; x -= 5 {
		s.Drag(x)
	}
	for range 4 {
		s.Drag(445)
	}
	s.Release()
	runUntilIdle(t, s)

	if l.Offset() != 100 {
		t.Errorf("Offset() = %d, want 100", l.Offset())
	}
}

func TestWithLayout_FlingLandsAligned(t *testing.T) {
	l, s := newLayout(t, carousel.DefaultConfig())
	s.Press(500)
	s.Drag(470)
	s.Drag(440)
	s.Release()
	runUntilIdle(t, s)
	for !s.Idle() {
		runUntilIdle(t, s)
	}

	if l.FirstVisibleSubOffset() != 0 {
		t.Errorf("came to rest mid-card at offset %d", l.Offset())
	}
	if l.FirstVisibleIndex() < 1 {
		t.Errorf("FirstVisibleIndex() = %d, want at least 1", l.FirstVisibleIndex())
	}
}

func TestWithLayout_PagedAdvancesOneCard(t *testing.T) {
	cfg := carousel.DefaultConfig()
	cfg.Paged = true
	l, s := newLayout(t, cfg)
	s.Press(500)
	s.Drag(470)
	s.Drag(440)
	s.Release()
	runUntilIdle(t, s)
	runUntilIdle(t, s)

	if l.Offset() != 100 {
		t.Errorf("Offset() = %d, want 100", l.Offset())
	}
}

func TestWithLayout_RepeatedTargetDoesNotOvershoot(t *testing.T) {
	l, s := newLayout(t, carousel.DefaultConfig())
	l.SmoothScrollTo(1)
	for frames := 0; l.Offset() < 80; frames++ {
		if frames > 100 {
			t.Fatal("animation never reached 80")
		}
		s.Update()
	}
	if l.Offset() >= 100 {
		t.Fatalf("first animation already at %d", l.Offset())
	}

	l.SmoothScrollTo(1)
	peak := l.Offset()
	for frames := 0; !s.Idle(); frames++ {
		if frames > 1000 {
			t.Fatal("scroller never came to rest")
		}
		s.Update()
		peak = max(peak, l.Offset())
	}

	if peak > 100 {
		t.Errorf("animation to index 1 reached offset %d, want at most 100", peak)
	}
	if l.Offset() != 100 {
		t.Errorf("Offset() = %d, want 100", l.Offset())
	}
}
