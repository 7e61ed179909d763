package events

// Lifecycle turns page lifecycle events into teardown and restart calls.
//
// pagehide tears the page down. pageshow restarts it only when the page
// comes back from the back/forward cache (persisted) after a teardown; a
// normal load renders through main instead.
type Lifecycle struct {
	Teardown func()
	Restart  func()

	down bool
}

// Hide handles pagehide. Repeated calls tear down once.
func (l *Lifecycle) Hide() {
	if l.down {
		return
	}
	l.down = true
	if l.Teardown != nil {
		l.Teardown()
	}
}

// Show handles pageshow.
func (l *Lifecycle) Show(persisted bool) {
	if !persisted || !l.down {
		return
	}
	l.down = false
	if l.Restart != nil {
		l.Restart()
	}
}

// Down reports whether the page is torn down.
func (l *Lifecycle) Down() bool {
	return l.down
}
