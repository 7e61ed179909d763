package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// It has no build tags and runs the same in native tests.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func()
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func())}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all subscribers.
// Subscribers run outside the lock so they may call Get or Unsubscribe.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	subs := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// snapshotLocked returns the subscribers in registration order.
// Callers must hold s.mu.
func (s *Signal[T]) snapshotLocked() []func() {
	subs := make([]func(), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

// Subscribe registers a callback fired when the value changes.
// The returned func removes exactly this callback; call it from OnUnmount.
// The returned func is safe to call more than once.
func (s *Signal[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Subscribers reports how many callbacks are currently registered.
func (s *Signal[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
