package term

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/depeter/rightslide/internal/feed"
)

// Cell styles. Index 0 is unstyled background.
const (
	styleNone = iota
	styleActive
	styleActiveFaint
	styleCandidate
	styleCandidateFaint
	styleCount
)

// faintBelow is the alpha under which a card is drawn faint.
const faintBelow = 0.75

var (
	colorPrimary = lipgloss.Color("#00A4DC")
	colorMuted   = lipgloss.Color("#60606C")
	colorText    = lipgloss.Color("#E0E0E0")

	cellStyles = [styleCount]lipgloss.Style{
		styleNone:           lipgloss.NewStyle(),
		styleActive:         lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		styleActiveFaint:    lipgloss.NewStyle().Foreground(colorPrimary).Faint(true),
		styleCandidate:      lipgloss.NewStyle().Foreground(colorText),
		styleCandidateFaint: lipgloss.NewStyle().Foreground(colorMuted).Faint(true),
	}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E04040"))
	detailStyle = lipgloss.NewStyle().Foreground(colorText).Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(0, 1)
)

type cell struct {
	r     rune
	style int
}

// canvas is a grid of styled runes the cards are painted onto back to front.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, style: style}
}

func (c *canvas) text(x, y, maxW int, s string, style int) {
	for i, r := range []rune(truncate(s, maxW)) {
		c.set(x+i, y, r, style)
	}
}

// String renders each row, styling runs of equal cells together.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := 0; x < len(row); {
			end := x
			var run []rune
			for end < len(row) && row[end].style == row[x].style {
				run = append(run, row[end].r)
				end++
			}
			if row[x].style == styleNone {
				b.WriteString(string(run))
			} else {
				b.WriteString(cellStyles[row[x].style].Render(string(run)))
			}
			x = end
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// cellRect is the on-screen rectangle of s after scaling about its centre.
func cellRect(s *slot, cardW, cardH int) image.Rectangle {
	w := int(math.Round(float64(cardW) * s.scale))
	h := int(math.Round(float64(cardH) * s.scale))
	x := s.rect.Min.X + (cardW-w)/2
	y := s.rect.Min.Y + (cardH-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func slotStyle(s *slot) int {
	faint := s.alpha < faintBelow
	switch {
	case s.depth == 0 && faint:
		return styleActiveFaint
	case s.depth == 0:
		return styleActive
	case faint:
		return styleCandidateFaint
	}
	return styleCandidate
}

func drawCard(c *canvas, r image.Rectangle, card feed.Card, style int) {
	if r.Dx() < 2 || r.Dy() < 2 {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch := ' '
			switch {
			case y == y0 && x == x0:
				ch = '╭'
			case y == y0 && x == x1:
				ch = '╮'
			case y == y1 && x == x0:
				ch = '╰'
			case y == y1 && x == x1:
				ch = '╯'
			case y == y0 || y == y1:
				ch = '─'
			case x == x0 || x == x1:
				ch = '│'
			}
			c.set(x, y, ch, style)
		}
	}

	inner := r.Dx() - 4
	if inner <= 0 || r.Dy() < 4 {
		return
	}
	mid := y0 + r.Dy()/2
	c.text(x0+2, mid-1, inner, card.Title, style)
	c.text(x0+2, mid, inner, card.Subtitle, style)
	if card.Progress > 0 && r.Dy() > 4 {
		filled := int(math.Round(float64(inner) * card.Progress))
		for i := 0; i < inner; i++ {
			ch := '░'
			if i < filled {
				ch = '█'
			}
			c.set(x0+2+i, y1-1, ch, style)
		}
	}
}

// sorted returns the slots ordered by depth, front first unless
// backToFront is set.
func (m *Model) sorted(backToFront bool) []*slot {
	out := make([]*slot, len(m.slots))
	copy(out, m.slots)
	sort.SliceStable(out, func(i, j int) bool {
		if backToFront {
			return out[i].depth > out[j].depth
		}
		return out[i].depth < out[j].depth
	})
	return out
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	switch {
	case m.err != nil:
		return errorStyle.Render("Failed to load feed: "+m.err.Error()) + "\n" +
			mutedStyle.Render("r retry · q quit")
	case m.loading:
		return mutedStyle.Render("Loading...")
	case len(m.items) == 0:
		return mutedStyle.Render("No media found") + "\n" + mutedStyle.Render("q quit")
	}

	c := newCanvas(m.width, m.cardH)
	for _, s := range m.sorted(true) {
		if s.index < 0 || s.index >= len(m.items) || s.alpha <= 0 {
			continue
		}
		drawCard(c, cellRect(s, m.cardW, m.cardH), m.items[s.index], slotStyle(s))
	}

	var b strings.Builder
	b.WriteString(c.String())
	b.WriteString("\n\n")
	if m.current >= 0 && m.current < len(m.items) {
		card := m.items[m.current]
		b.WriteString(titleStyle.Render(truncate(card.Title, m.width)))
		if card.Subtitle != "" {
			b.WriteString(mutedStyle.Render("  " + card.Subtitle))
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d", m.current+1, len(m.items))))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("←/→ move · enter open · esc close · q quit"))

	if m.selected >= 0 && m.selected < len(m.items) {
		card := m.items[m.selected]
		body := card.Title
		if card.Overview != "" {
			body += "\n\n" + card.Overview
		}
		b.WriteString("\n")
		b.WriteString(detailStyle.Width(max(m.width-4, 10)).Render(body))
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
