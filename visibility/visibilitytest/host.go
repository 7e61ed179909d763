// Package visibilitytest provides an in-memory visibility.Host for tests.
package visibilitytest

import (
	"sync"

	"github.com/vcrobe/visiq/visibility"
	"github.com/vcrobe/visiq/vdom"
)

// Host records subscriptions and delivers simulated intersection ratios.
// It never delivers anything on its own; tests drive it with Set.
type Host struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]*subscription
	ratios  map[vdom.Element]float64
	history []Observation
}

// Observation records one Observe call.
type Observation struct {
	Target    vdom.Element
	Threshold float64
}

var _ visibility.Host = (*Host)(nil)

// NewHost returns an empty host.
func NewHost() *Host {
	return &Host{
		subs:   make(map[int]*subscription),
		ratios: make(map[vdom.Element]float64),
	}
}

// Observe implements visibility.Host.
func (h *Host) Observe(target vdom.Element, threshold float64, fn func(visibility.Entry)) visibility.Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := &subscription{host: h, id: h.nextID, target: target, fn: fn}
	h.nextID++
	h.subs[s.id] = s
	h.history = append(h.history, Observation{Target: target, Threshold: threshold})
	return s
}

// Set moves target to the given intersection ratio and delivers an entry to
// every live subscription for it, in subscription order. It returns the
// number of callbacks invoked. Subscriptions cancelled while delivering are
// skipped.
func (h *Host) Set(target vdom.Element, ratio float64) int {
	h.mu.Lock()
	h.ratios[target] = ratio
	var due []*subscription
	for id := 0; id < h.nextID; id++ {
		if s, ok := h.subs[id]; ok && s.target == target {
			due = append(due, s)
		}
	}
	h.mu.Unlock()

	delivered := 0
	for _, s := range due {
		if !h.live(s.id) {
			continue
		}
		s.fn(visibility.Entry{Intersecting: ratio > 0, Ratio: ratio})
		delivered++
	}
	return delivered
}

// Ratio returns the last ratio set for target.
func (h *Host) Ratio(target vdom.Element) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ratios[target]
}

// Active returns the number of live subscriptions.
func (h *Host) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// ActiveFor returns the number of live subscriptions for target.
func (h *Host) ActiveFor(target vdom.Element) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, s := range h.subs {
		if s.target == target {
			n++
		}
	}
	return n
}

// Observations returns every Observe call made so far.
func (h *Host) Observations() []Observation {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Observation(nil), h.history...)
}

func (h *Host) live(id int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.subs[id]
	return ok
}

type subscription struct {
	host   *Host
	id     int
	target vdom.Element
	fn     func(visibility.Entry)
}

func (s *subscription) Unsubscribe() {
	s.host.mu.Lock()
	defer s.host.mu.Unlock()
	delete(s.host.subs, s.id)
}

// Element is a stand-in for a host element. Each call to NewElement returns
// a distinct value.
type Element struct {
	ID string
}

// NewElement returns a fresh element handle.
func NewElement(id string) *Element {
	return &Element{ID: id}
}
