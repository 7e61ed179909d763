package visibility

import (
	"fmt"
	"sync"

	"github.com/vcrobe/visiq/signals"
	"github.com/vcrobe/visiq/vdom"
)

// DefaultThreshold is the fraction of the target's area that must be inside
// the viewport for it to count as visible.
const DefaultThreshold = 0.1

// ratioEpsilon absorbs float rounding in ratios reported right at the threshold.
const ratioEpsilon = 1e-6

// State is the observer's position in its lifecycle.
type State int

const (
	Unbound State = iota
	Bound
	Visible
	Released
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	case Visible:
		return "visible"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Entry is one intersection change delivered by a Host.
type Entry struct {
	Intersecting bool
	Ratio        float64 // fraction of the target's area inside the root, 0..1
}

// Subscription is a live registration with a Host.
// Unsubscribe must be safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// Host is the environment's intersection primitive.
// Observe starts delivering entries for target to fn until the returned
// subscription is cancelled. Hosts may deliver entries at any time after
// Observe is called, including before it returns.
type Host interface {
	Observe(target vdom.Element, threshold float64, fn func(Entry)) Subscription
}

// Option configures an Observer.
type Option func(*Observer)

// WithThreshold sets the visible fraction, clamped to [0, 1].
func WithThreshold(t float64) Option {
	return func(o *Observer) {
		o.threshold = min(max(t, 0), 1)
	}
}

// OnChange registers fn to receive the intersection boolean for every entry
// processed while the observer is bound.
func OnChange(fn func(intersecting bool)) Option {
	return func(o *Observer) {
		o.onChange = fn
	}
}

// Observer tracks whether one target has ever been visible.
type Observer struct {
	mu        sync.Mutex
	host      Host
	threshold float64
	state     State
	target    vdom.Element
	sub       Subscription
	visible   *signals.Latch
	onChange  func(bool)
}

// New returns an unbound observer. A nil host is allowed; such an observer
// never binds and its target is never reported visible.
func New(host Host, opts ...Option) *Observer {
	o := &Observer{
		host:      host,
		threshold: DefaultThreshold,
		visible:   signals.NewLatch(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Bind starts monitoring target. It reports whether monitoring started;
// it is a no-op unless the observer is Unbound and target is non-nil.
func (o *Observer) Bind(target vdom.Element) bool {
	o.mu.Lock()
	if o.state != Unbound || target == nil || o.host == nil {
		o.mu.Unlock()
		return false
	}
	o.state = Bound
	o.target = target
	o.mu.Unlock()

	sub := o.host.Observe(target, o.threshold, o.handle)

	o.mu.Lock()
	if o.state != Bound {
		// Became visible or was released while Observe was still running.
		o.mu.Unlock()
		if sub != nil {
			sub.Unsubscribe()
		}
		return true
	}
	o.sub = sub
	o.mu.Unlock()
	return true
}

// handle processes one entry from the host.
func (o *Observer) handle(e Entry) {
	o.mu.Lock()
	if o.state != Bound {
		o.mu.Unlock()
		return
	}
	intersecting := o.counts(e)
	var sub Subscription
	if intersecting {
		o.state = Visible
		sub = o.detachLocked()
	}
	onChange := o.onChange
	o.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	if intersecting {
		o.visible.Trip()
	}
	if onChange != nil {
		onChange(intersecting)
	}
}

func (o *Observer) counts(e Entry) bool {
	if o.threshold == 0 {
		return e.Intersecting || e.Ratio > 0
	}
	return e.Ratio+ratioEpsilon >= o.threshold
}

// detachLocked drops the target and hands back the subscription to cancel
// outside the lock.
func (o *Observer) detachLocked() Subscription {
	sub := o.sub
	o.sub = nil
	o.target = nil
	return sub
}

// Release stops monitoring and drops the target. It is safe to call any
// number of times and in any state; a visible observer stays Visible.
func (o *Observer) Release() {
	o.mu.Lock()
	sub := o.detachLocked()
	if o.state != Visible {
		o.state = Released
	}
	o.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// State returns the current lifecycle state.
func (o *Observer) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Threshold returns the configured visible fraction.
func (o *Observer) Threshold() float64 {
	return o.threshold
}

// Target returns the element being watched, or nil when not bound.
func (o *Observer) Target() vdom.Element {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.target
}

// Visible reports whether the target has ever been visible.
func (o *Observer) Visible() bool {
	return o.visible.Tripped()
}

// OnVisible registers fn to run once, when the target first becomes visible.
func (o *Observer) OnVisible(fn func()) (unsubscribe func()) {
	return o.visible.Subscribe(fn)
}
