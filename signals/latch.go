package signals

// Latch is a one-way boolean. It starts false and, once tripped, stays true
// for the rest of its lifetime. Subscribers are notified at most once.
type Latch struct {
	sig *Signal[bool]
}

// NewLatch returns an untripped latch.
func NewLatch() *Latch {
	return &Latch{sig: NewSignal(false)}
}

// Trip sets the latch. It reports true only for the call that flipped it;
// later calls are no-ops and notify nobody.
func (l *Latch) Trip() bool {
	l.sig.mu.Lock()
	if l.sig.value {
		l.sig.mu.Unlock()
		return false
	}
	l.sig.value = true
	subs := l.sig.snapshotLocked()
	l.sig.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return true
}

// Tripped reports whether Trip has been called.
func (l *Latch) Tripped() bool {
	return l.sig.Get()
}

// Subscribe registers fn to run when the latch trips.
func (l *Latch) Subscribe(fn func()) (unsubscribe func()) {
	return l.sig.Subscribe(fn)
}

// Subscribers reports how many callbacks are waiting on the latch.
func (l *Latch) Subscribers() int {
	return l.sig.Subscribers()
}
