package carousel

import (
	"image"
	"math"
	"testing"

	"github.com/depeter/rightslide/internal/clock"
)

type fakeView struct {
	index    int
	depth    int
	rect     image.Rectangle
	scale    float64
	alpha    float64
	released bool
}

type fakeHost struct {
	viewport       int
	itemW, itemH   int
	attached       []*fakeView
	attachCalls    int
	releaseCalls   int
	smooth         []int
	layoutRequests int
	changes        []int

	// layout, when set, receives smooth scrolls immediately followed by a
	// resting settle, as an instant animation driver would.
	layout *Layout
}

func newFakeHost(viewport, itemW, itemH int) *fakeHost {
	return &fakeHost{viewport: viewport, itemW: itemW, itemH: itemH}
}

func (h *fakeHost) ViewportWidth() int { return h.viewport }

func (h *fakeHost) AttachSlot(index, depth int) View {
	h.attachCalls++
	v := &fakeView{index: index, depth: depth}
	h.attached = append(h.attached, v)
	return v
}

func (h *fakeHost) ReleaseSlot(v View) {
	h.releaseCalls++
	fv := v.(*fakeView)
	fv.released = true
	for i, a := range h.attached {
		if a == fv {
			h.attached = append(h.attached[:i], h.attached[i+1:]...)
			return
		}
	}
}

func (h *fakeHost) MeasureSlot(View) (int, int) { return h.itemW, h.itemH }

func (h *fakeHost) SetSlotRect(v View, r image.Rectangle) { v.(*fakeView).rect = r }

func (h *fakeHost) SetSlotVisual(v View, scale, alpha float64) {
	fv := v.(*fakeView)
	fv.scale = scale
	fv.alpha = alpha
}

func (h *fakeHost) SetSlotDepth(v View, depth int) { v.(*fakeView).depth = depth }

func (h *fakeHost) SmoothScrollBy(dx int) {
	h.smooth = append(h.smooth, dx)
	if h.layout != nil {
		h.layout.ScrollBy(dx)
		h.layout.Settle(0)
	}
}

func (h *fakeHost) RequestLayout() { h.layoutRequests++ }

func (h *fakeHost) CurrentIndexChanged(index int) { h.changes = append(h.changes, index) }

func (h *fakeHost) indices() []int {
	out := make([]int, len(h.attached))
	for i, v := range h.attached {
		out[i] = v.index
	}
	return out
}

// newTestLayout returns an attached, laid-out carousel of 100x150 cards in
// a 300px viewport with two candidates.
func newTestLayout(t *testing.T, cfg Config, count int) (*Layout, *fakeHost, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual()
	l := New(cfg, clk)
	h := newFakeHost(300, 100, 150)
	l.Attach(h)
	l.LayoutPass(count, false)
	return l, h, clk
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
