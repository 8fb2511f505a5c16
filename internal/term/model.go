// Package term hosts the carousel in a terminal. One column is one layout
// pixel and the layout is driven by a bubbletea tick.
package term

import (
	"context"
	"image"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/depeter/rightslide/internal/carousel"
	"github.com/depeter/rightslide/internal/clock"
	"github.com/depeter/rightslide/internal/feed"
	"github.com/depeter/rightslide/internal/scroll"
)

// FrameInterval is the tick period driving animation and timers.
const FrameInterval = time.Second / 30

// Rows reserved under the cards for the caption, status and help lines.
const chromeRows = 5

type tickMsg time.Time

type itemsMsg struct {
	items []feed.Card
	err   error
}

// slot is the host-side handle for one attached card.
type slot struct {
	index int
	depth int
	rect  image.Rectangle
	scale float64
	alpha float64
}

// Model is a bubbletea model that implements carousel.Host.
type Model struct {
	ctx      context.Context
	layout   *carousel.Layout
	scroller *scroll.Scroller
	clock    *clock.Manual
	load     feed.Func
	cardFrac float64

	items    []feed.Card
	slots    []*slot
	current  int
	selected int
	loading  bool
	err      error

	width, height int
	cardW, cardH  int
	needLayout    bool

	// mouse drag in progress
	pressed bool
}

// New creates a Model driving layout. clk must be the scheduler layout was
// created with; the model advances it once per tick.
func New(ctx context.Context, layout *carousel.Layout, clk *clock.Manual, load feed.Func, cardFrac float64) *Model {
	m := &Model{
		ctx:      ctx,
		layout:   layout,
		clock:    clk,
		load:     load,
		cardFrac: cardFrac,
		current:  carousel.NoIndex,
		selected: carousel.NoIndex,
		loading:  true,
	}
	m.scroller = scroll.New(layout)
	layout.Attach(m)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), tick())
}

func (m *Model) fetch() tea.Cmd {
	return func() tea.Msg {
		items, err := m.load(m.ctx)
		return itemsMsg{items: items, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case itemsMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			log.Printf("Failed to load feed: %v", msg.err)
			break
		}
		m.items = msg.items
		m.selected = carousel.NoIndex
		m.layout.ItemsChanged()

	case tickMsg:
		m.clock.Advance(FrameInterval)
		m.scroller.Update()
		m.flushLayout()
		return m, tick()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	m.flushLayout()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "left", "h":
		m.Step(-1)
	case "right", "l":
		m.Step(1)
	case "enter", " ":
		if m.current != carousel.NoIndex {
			m.selected = m.current
		}
	case "esc":
		m.selected = carousel.NoIndex
	case "r":
		if m.err != nil {
			m.err = nil
			m.loading = true
			return m.fetch()
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y < m.cardH {
			m.pressed = true
			m.scroller.Press(float64(msg.X))
		}
	case msg.Action == tea.MouseActionMotion && m.pressed:
		m.scroller.Drag(float64(msg.X))
	case msg.Action == tea.MouseActionRelease && m.pressed:
		m.pressed = false
		if m.scroller.Release() {
			m.tap(msg.X, msg.Y)
		}
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		m.Step(1)
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		m.Step(-1)
	}
}

// Step animates d cards forward (positive) or back.
func (m *Model) Step(d int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	target := m.layout.FirstVisibleIndex() + d
	if m.layout.Config().Loop {
		target = ((target % n) + n) % n
	} else {
		target = min(max(target, 0), n-1)
	}
	m.layout.SmoothScrollTo(target)
}

// tap selects the active card or scrolls a tapped candidate into place.
func (m *Model) tap(x, y int) {
	p := image.Pt(x, y)
	for _, s := range m.sorted(false) {
		if !p.In(cellRect(s, m.cardW, m.cardH)) {
			continue
		}
		if s.depth == 0 {
			m.selected = s.index
		} else {
			m.layout.SmoothScrollTo(s.index)
		}
		return
	}
}

func (m *Model) resize(w, h int) {
	if w == m.width && h == m.height {
		return
	}
	m.width, m.height = w, h
	m.cardW = max(int(float64(w)*m.cardFrac), 8)
	m.cardH = max(min(m.cardW*3/4, h-chromeRows), 3)

	keep := m.layout.CurrentIndex()
	m.layout.Detach()
	m.layout.Attach(m)
	m.layout.LayoutPass(len(m.items), true)
	if keep > 0 {
		m.layout.JumpTo(keep)
	}
	m.layout.LayoutPass(len(m.items), false)
}

func (m *Model) flushLayout() {
	if m.needLayout && m.width > 0 {
		m.needLayout = false
		m.layout.LayoutPass(len(m.items), false)
	}
}

// Current returns the index of the active card, or carousel.NoIndex.
func (m *Model) Current() int { return m.current }

// Selected returns the index of the card opened with enter, or
// carousel.NoIndex.
func (m *Model) Selected() int { return m.selected }

// carousel.Host

func (m *Model) ViewportWidth() int { return m.width }

func (m *Model) AttachSlot(index, depth int) carousel.View {
	s := &slot{index: index, depth: depth, scale: 1, alpha: 1}
	m.slots = append(m.slots, s)
	return s
}

func (m *Model) ReleaseSlot(v carousel.View) {
	s := v.(*slot)
	for i, x := range m.slots {
		if x == s {
			m.slots = append(m.slots[:i], m.slots[i+1:]...)
			return
		}
	}
}

func (m *Model) MeasureSlot(carousel.View) (int, int) { return m.cardW, m.cardH }

func (m *Model) SetSlotRect(v carousel.View, r image.Rectangle) { v.(*slot).rect = r }

func (m *Model) SetSlotVisual(v carousel.View, scale, alpha float64) {
	s := v.(*slot)
	s.scale, s.alpha = scale, alpha
}

func (m *Model) SetSlotDepth(v carousel.View, depth int) { v.(*slot).depth = depth }

func (m *Model) SmoothScrollBy(dx int) { m.scroller.SmoothScrollBy(dx) }

func (m *Model) RequestLayout() { m.needLayout = true }

func (m *Model) CurrentIndexChanged(index int) { m.current = index }
