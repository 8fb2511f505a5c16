package carousel

import (
	"image"
	"math"
)

// metrics are derived once, when the first card is measured.
type metrics struct {
	pitch      int     // horizontal space given to each candidate
	speed      float64 // first candidate's travel per pixel of active travel
	baseLeft   int     // first candidate's left edge when the active card is at rest
	scaleRate  float64 // candidate scale gained per pixel moved left
	fadeRate   float64 // alpha lost per pixel past the fade threshold
	fadeLeft   float64 // left edge at which the active card starts to fade
	shrinkRate float64 // active scale lost per pixel past the left edge
}

func (l *Layout) measure(v View) {
	w, h := l.host.MeasureSlot(v)
	l.model.width = max(w, 1)
	l.itemHeight = h
	l.viewportWidth = l.host.ViewportWidth() + l.cfg.ViewportWidthOffset

	w = l.model.width
	var m metrics
	if n := l.cfg.CandidateCount; n > 0 {
		m.pitch = (l.viewportWidth - w) / n
		m.shrinkRate = (1 - l.cfg.CandidateLastScale) / float64(n) / float64(w)
	}
	m.speed = float64(m.pitch) / float64(w)
	m.baseLeft = m.pitch
	if span := l.viewportWidth - w; span > 0 {
		m.scaleRate = (1 - l.cfg.CandidateLastScale) / float64(span)
	}
	if l.cfg.ExitFade {
		m.fadeRate = (1 - l.cfg.ExitFadeEnd) / (float64(w) * (1 - l.cfg.ExitFadeStart))
		m.fadeLeft = -float64(w) * l.cfg.ExitFadeStart
	}
	l.metrics = m
	l.initialized = true
}

// fill lays out cards front to back starting with index at left edge
// startLeft, then releases every previously attached view that did not
// survive.
func (l *Layout) fill(index, startLeft int) []Slot {
	var (
		n        = l.model.count
		kept     = make([]attachedSlot, 0, len(l.attached))
		slots    = make([]Slot, 0, len(l.attached))
		seen     = make(map[int]int)
		left     = startLeft
		free     = 0
		relative = 0
	)

	for index >= 0 && index < n {
		key := slotKey{index: index, occurrence: seen[index]}
		seen[index]++
		v := l.obtain(key, relative)
		kept = append(kept, attachedSlot{key: key, view: v})

		if relative == 0 {
			if !l.initialized {
				l.measure(v)
			}
			free = l.viewportWidth - (left + l.model.width)
		}

		s := l.place(relative, index, &left, &free)
		s.View = v
		l.host.SetSlotRect(v, s.Rect)
		l.host.SetSlotVisual(v, s.Scale, s.Alpha)
		slots = append(slots, s)

		if free <= 0 || l.metrics.pitch <= 0 {
			break
		}
		index++
		if l.cfg.Loop && index >= n {
			index = 0
		}
		relative++
	}

	for _, a := range l.attached {
		if !containsKey(kept, a.key) {
			l.host.ReleaseSlot(a.view)
		}
	}
	l.attached = kept
	l.slots = slots
	return slots
}

// obtain returns the view already attached under key, or attaches a new one.
func (l *Layout) obtain(key slotKey, depth int) View {
	for _, a := range l.attached {
		if a.key == key {
			l.host.SetSlotDepth(a.view, depth)
			return a.view
		}
	}
	return l.host.AttachSlot(key.index, depth)
}

// place computes the rectangle and visuals of the card at relative position
// rel, advancing left and free for the next card.
func (l *Layout) place(rel, index int, left, free *int) Slot {
	w, h := l.model.width, l.itemHeight
	m := l.metrics
	s := Slot{Index: index, Scale: 1, Alpha: 1, Depth: rel}

	var x int
	switch rel {
	case 0:
		x = *left
		if l.cfg.ExitFade && float64(x) < m.fadeLeft {
			span := float64(w) * (1 - l.cfg.ExitFadeStart)
			s.Alpha = l.cfg.ExitFadeEnd + (span-math.Abs(float64(x)-m.fadeLeft))*m.fadeRate
		}
		if l.cfg.scaling() && l.cfg.ExitShrink && x < 0 {
			s.Scale = 1 - math.Abs(float64(x))*m.shrinkRate
		}
		// The measuring pass of the first layout does not report; the pass
		// after any pending jump does.
		if index != l.current && !l.measuring {
			l.current = index
			l.host.CurrentIndexChanged(index)
		}
	case 1:
		activeRight := *left + w
		x = int(float64(m.baseLeft) + float64(*left)*m.speed)
		s.Scale = l.candidateScale(x + w)
		*left = x + m.pitch
		*free -= x + w - activeRight
		x = l.recenter(x, s.Scale)
	default:
		x = *left
		s.Scale = l.candidateScale(x + w)
		*left = x + m.pitch
		*free -= m.pitch
		x = l.recenter(x, s.Scale)
	}

	s.Rect = image.Rect(x, 0, x+w, h)
	return s
}

func (l *Layout) candidateScale(right int) float64 {
	if !l.cfg.scaling() {
		return 1
	}
	return l.cfg.CandidateLastScale + float64(l.viewportWidth-right)*l.metrics.scaleRate
}

// recenter shifts a scaled card so its visible left edge keeps the unscaled
// pitch; scaling pivots at the card's centre.
func (l *Layout) recenter(x int, scale float64) int {
	if !l.cfg.scaling() {
		return x
	}
	return x + int(float64(l.model.width)*(1-scale)/2)
}

func containsKey(slots []attachedSlot, key slotKey) bool {
	for _, s := range slots {
		if s.key == key {
			return true
		}
	}
	return false
}
