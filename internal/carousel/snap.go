package carousel

// Commit thresholds, in percent of a card width already scrolled past the
// current index. A forward fling commits early, a backward fling resists,
// and a release without velocity sits in between.
const (
	forwardCommitPercent  = 30
	backwardCommitPercent = 70
	restingCommitPercent  = 40
)

// ResolveSnapIndex returns the index the carousel should come to rest on
// after a gesture in the given direction (positive = towards higher
// indices), or NoIndex when the offset is already aligned.
func (l *Layout) ResolveSnapIndex(direction int) int {
	if !l.initialized || !l.model.ready() || l.model.aligned() {
		return NoIndex
	}
	index, rem := l.model.fraction()
	w := l.model.width

	target := index
	if l.cfg.Paged {
		if l.lastDelta > 0 {
			target++
		}
	} else {
		pct := rem * 100
		switch {
		case direction > 0 && pct >= forwardCommitPercent*w,
			direction < 0 && pct >= backwardCommitPercent*w,
			direction == 0 && pct >= restingCommitPercent*w:
			target++
		}
	}
	if target >= l.model.count {
		target = 0
	}
	l.logf("carousel: snap offset=%d index=%d rem=%d direction=%d target=%d", l.model.offset, index, rem, direction, target)
	return target
}

// Settle is called when a drag, fling or animation ends. It returns where
// to rest and how far to scroll; ok is false when the carousel is already at
// rest, in which case any pending programmatic target is consumed. Reaching
// that target re-arms auto-advance.
func (l *Layout) Settle(direction int) (snap Snap, ok bool) {
	if !l.initialized {
		return Snap{}, false
	}
	target := l.ResolveSnapIndex(direction)
	if target == NoIndex {
		l.settledAtRest()
		return Snap{}, false
	}
	return Snap{Index: target, Distance: l.model.distanceToIndex(target)}, true
}

// settledAtRest leaves an auto-advance timer armed by autoAdvance or
// EndInteraction alone, so the advance period stays fixed.
func (l *Layout) settledAtRest() {
	target := l.pendingScroll
	l.pendingScroll = NoIndex
	if target == NoIndex {
		return
	}
	current := l.model.firstVisibleIndex()
	l.logf("carousel: reached %d (current %d)", target, current)
	if target == current {
		l.startAutoAdvance()
	}
}
