package carousel

// offsetModel owns the scroll offset. Everything else about the scroll
// position is derived from it on demand.
type offsetModel struct {
	offset int
	width  int
	count  int
	loop   bool
}

func (m *offsetModel) ready() bool {
	return m.width > 0 && m.count > 0
}

// limit returns the largest offset a non-looping carousel may reach.
func (m *offsetModel) limit() int {
	if m.count == 0 {
		return 0
	}
	return m.width * (m.count - 1)
}

// advance moves the offset by delta and returns the part that was applied.
func (m *offsetModel) advance(delta int) int {
	m.offset += delta
	if m.loop {
		return delta
	}
	excess := 0
	if m.offset < 0 {
		excess = m.offset
		m.offset = 0
	} else if hi := m.limit(); m.offset > hi {
		excess = m.offset - hi
		m.offset = hi
	}
	return delta - excess
}

// clamp pulls a non-looping offset back into range after the item count or
// width changed.
func (m *offsetModel) clamp() {
	if m.loop {
		return
	}
	m.offset = min(max(m.offset, 0), m.limit())
}

func (m *offsetModel) aligned() bool {
	return !m.ready() || m.offset%m.width == 0
}

func (m *offsetModel) firstVisibleIndex() int {
	if !m.ready() {
		return 0
	}
	if m.offset < 0 {
		i := m.count - ceilDiv(-m.offset, m.width)%m.count
		if i >= m.count {
			return 0
		}
		return i
	}
	return (m.offset / m.width) % m.count
}

// firstVisibleSubOffset is the left edge of the first visible card relative
// to the viewport origin, in (-width, 0].
func (m *offsetModel) firstVisibleSubOffset() int {
	if !m.ready() {
		return 0
	}
	rem := m.offset % m.width
	switch {
	case rem == 0:
		return 0
	case m.offset < 0:
		return -rem - m.width
	default:
		return -rem
	}
}

// distanceToIndex is the signed offset change that brings target to the
// first visible slot.
func (m *offsetModel) distanceToIndex(target int) int {
	if !m.ready() {
		return 0
	}
	cur := m.firstVisibleIndex()
	sub := m.firstVisibleSubOffset()
	w, n := m.width, m.count

	next, prev := cur+1, cur-1
	if m.loop {
		next, prev = (cur+1)%n, (cur-1+n)%n
	}

	switch {
	case target == cur:
		return sub
	case target == next:
		return w + sub
	case target == prev:
		return sub - w
	case m.loop && (m.offset > m.limit() || m.offset < 0):
		forward := target - cur
		if target < cur {
			forward = n - cur + target
		}
		backward := cur - target
		if target > cur {
			backward = cur + n - target
		}
		anchor := floorDiv(m.offset, w)
		if forward <= backward {
			return w*(anchor+forward) - m.offset
		}
		return w*(anchor-backward) - m.offset
	default:
		return w*target - m.offset
	}
}

// fraction splits the scroll position into a whole index in [0, count) and
// the remainder in pixels, mirroring firstVisibleIndex's wraparound.
func (m *offsetModel) fraction() (index, rem int) {
	a := m.offset
	if a < 0 {
		a = -a
		whole, r := a/m.width, a%m.width
		if r == 0 {
			return m.firstVisibleIndex(), 0
		}
		return m.count - 1 - whole%m.count, m.width - r
	}
	whole, r := a/m.width, a%m.width
	if m.offset > m.limit() {
		whole %= m.count
	}
	return whole, r
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
