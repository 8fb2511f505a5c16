// Package carousel lays out a right-sliding card carousel: one full-size
// active card at the scroll origin and a fan of shrinking candidate cards
// trailing it to the right.
//
// A Layout is driven entirely by its Host. Every method must be called from
// the host's event goroutine; the type holds no locks.
package carousel

import (
	"log"

	"github.com/depeter/rightslide/internal/clock"
)

// Layout owns the scroll state of one carousel.
type Layout struct {
	cfg    Config
	sched  clock.Scheduler
	logger *log.Logger

	host  Host
	model offsetModel

	itemHeight    int
	viewportWidth int
	metrics       metrics
	initialized   bool

	current       int
	pendingJump   int
	pendingScroll int
	lastDelta     int

	attached  []attachedSlot
	slots     []Slot
	measuring bool

	timer    clock.Timer
	autoInit bool
}

type attachedSlot struct {
	key  slotKey
	view View
}

// slotKey identifies a slot across fills. Occurrence separates repeated
// indices when a short looping sequence wraps inside one viewport.
type slotKey struct {
	index      int
	occurrence int
}

type Option func(*Layout)

// WithLogger enables debug logging of snap and auto-advance decisions.
func WithLogger(l *log.Logger) Option {
	return func(lay *Layout) { lay.logger = l }
}

// New creates a Layout. Out-of-range config values are clamped; use
// Config.Validate to reject them instead. sched may be nil, which disables
// auto-advance.
func New(cfg Config, sched clock.Scheduler, opts ...Option) *Layout {
	cfg = cfg.normalized()
	l := &Layout{
		cfg:   cfg,
		sched: sched,
		model: offsetModel{loop: cfg.Loop},
	}
	l.reset()
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Layout) reset() {
	l.model = offsetModel{loop: l.cfg.Loop}
	l.itemHeight = 0
	l.viewportWidth = 0
	l.metrics = metrics{}
	l.initialized = false
	l.current = NoIndex
	l.pendingJump = NoIndex
	l.pendingScroll = NoIndex
	l.lastDelta = 0
	l.attached = nil
	l.slots = nil
	l.measuring = false
	l.autoInit = false
}

// Config returns the normalized configuration.
func (l *Layout) Config() Config { return l.cfg }

// Attach binds the layout to its host container.
func (l *Layout) Attach(h Host) {
	if l.host != nil && l.host != h {
		l.Detach()
	}
	l.host = h
}

// Detach cancels auto-advance, releases every attached slot and discards
// the scroll state.
func (l *Layout) Detach() {
	l.stopAutoAdvance()
	if l.host != nil {
		for _, a := range l.attached {
			l.host.ReleaseSlot(a.view)
		}
	}
	l.host = nil
	l.reset()
}

// Attached reports whether a host is bound.
func (l *Layout) Attached() bool { return l.host != nil }

// LayoutPass lays out itemCount cards. Pre-layout passes only record the
// count.
func (l *Layout) LayoutPass(itemCount int, preLayout bool) {
	if l.host == nil {
		return
	}
	l.model.count = max(itemCount, 0)
	if l.model.count == 0 {
		l.releaseAll()
		return
	}
	if preLayout {
		return
	}

	if !l.initialized {
		l.measuring = true
		l.fill(0, 0)
		l.measuring = false
	}
	if l.pendingJump != NoIndex {
		if l.pendingJump < l.model.count {
			l.model.offset = l.pendingJump * l.model.width
		}
		l.pendingJump = NoIndex
	}
	l.model.clamp()
	l.fill(l.model.firstVisibleIndex(), l.model.firstVisibleSubOffset())

	if !l.autoInit {
		l.autoInit = true
		l.startAutoAdvance()
	}
}

// ScrollBy applies a scroll delta from the host, refills the slots and
// returns the consumed amount. In paged mode the consumed amount is one
// pixel in the direction of travel, which stops the host's fling.
func (l *Layout) ScrollBy(dx int) int {
	if len(l.attached) == 0 || dx == 0 {
		return 0
	}
	applied := l.model.advance(dx)
	l.lastDelta = applied
	l.fill(l.model.firstVisibleIndex(), l.model.firstVisibleSubOffset())

	if l.cfg.Paged {
		return sign(applied)
	}
	return applied
}

// JumpTo moves to index without animation at the next layout pass.
// Out-of-range indices are ignored.
func (l *Layout) JumpTo(index int) {
	if index < 0 || index >= l.model.count {
		return
	}
	l.pendingJump = index
	l.autoInit = false
	if l.host != nil {
		l.host.RequestLayout()
	}
}

// SmoothScrollTo asks the host to animate to index and returns the distance
// requested. Out-of-range indices are ignored.
func (l *Layout) SmoothScrollTo(index int) int {
	if l.host == nil || index < 0 || index >= l.model.count {
		return 0
	}
	l.stopAutoAdvance()
	d := l.model.distanceToIndex(index)
	l.pendingScroll = index
	if d == 0 {
		l.settledAtRest()
		return 0
	}
	l.host.SmoothScrollBy(d)
	return d
}

// BeginInteraction is called when the user touches the carousel.
func (l *Layout) BeginInteraction() {
	l.stopAutoAdvance()
}

// EndInteraction is called when the touch is released or cancelled.
func (l *Layout) EndInteraction() {
	l.startAutoAdvance()
}

// ItemsChanged is called when the host swaps its item source.
func (l *Layout) ItemsChanged() {
	l.autoInit = false
	if l.host != nil {
		l.host.RequestLayout()
	}
}

// DistanceToIndex returns the offset change that brings index to the active
// slot along the shortest path.
func (l *Layout) DistanceToIndex(index int) int {
	return l.model.distanceToIndex(index)
}

func (l *Layout) Offset() int                { return l.model.offset }
func (l *Layout) ItemCount() int             { return l.model.count }
func (l *Layout) FirstVisibleIndex() int     { return l.model.firstVisibleIndex() }
func (l *Layout) FirstVisibleSubOffset() int { return l.model.firstVisibleSubOffset() }

// CurrentIndex is the index of the active card at the last fill, or NoIndex.
func (l *Layout) CurrentIndex() int { return l.current }

// ItemSize returns the measured card size; zero until the first layout.
func (l *Layout) ItemSize() (width, height int) { return l.model.width, l.itemHeight }

// Slots returns the cards produced by the last fill, front to back.
func (l *Layout) Slots() []Slot {
	out := make([]Slot, len(l.slots))
	copy(out, l.slots)
	return out
}

func (l *Layout) releaseAll() {
	for _, a := range l.attached {
		l.host.ReleaseSlot(a.view)
	}
	l.attached = nil
	l.slots = nil
}

func (l *Layout) logf(format string, args ...any) {
	if l.logger != nil {
		l.logger.Printf(format, args...)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
