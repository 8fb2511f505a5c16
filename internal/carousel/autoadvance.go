package carousel

// AutoAdvanceArmed reports whether an auto-advance timer is pending.
func (l *Layout) AutoAdvanceArmed() bool {
	return l.timer != nil
}

func (l *Layout) stopAutoAdvance() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

// startAutoAdvance (re)arms the timer. Any armed timer is cancelled first,
// so at most one is ever pending.
func (l *Layout) startAutoAdvance() {
	if !l.cfg.AutoAdvance || l.model.count <= 1 || l.cfg.AutoAdvanceInterval <= 0 ||
		l.host == nil || l.sched == nil {
		return
	}
	l.stopAutoAdvance()
	l.timer = l.sched.AfterFunc(l.cfg.AutoAdvanceInterval, l.autoAdvance)
}

func (l *Layout) autoAdvance() {
	l.timer = nil
	if l.host == nil || l.model.count <= 1 {
		return
	}
	next := (l.model.firstVisibleIndex() + 1) % l.model.count
	d := l.model.distanceToIndex(next)
	l.logf("carousel: auto-advance to %d by %d", next, d)
	l.host.SmoothScrollBy(d)
	l.startAutoAdvance()
}
