//go:build js || wasm

package visibility

import (
	"sync"
	"syscall/js"

	"github.com/vcrobe/visiq/logging"
	"github.com/vcrobe/visiq/vdom"
)

// JSHost observes elements with the browser's IntersectionObserver.
// Each subscription owns one IntersectionObserver and one js.Func.
type JSHost struct {
	// Root is the element used as the viewport; the zero value means the
	// document viewport.
	Root js.Value
	// RootMargin grows or shrinks the root's bounding box, in CSS margin syntax.
	RootMargin string
}

var _ Host = JSHost{}

// Observe implements Host.
func (h JSHost) Observe(target vdom.Element, threshold float64, fn func(Entry)) Subscription {
	el, ok := target.(js.Value)
	if !ok || !el.Truthy() {
		return nopSubscription{}
	}

	ctor := js.Global().Get("IntersectionObserver")
	if !ctor.Truthy() {
		// Without the primitive nothing would ever reveal; show content instead.
		log := logging.Component("visibility")
		log.Warn().Msg("IntersectionObserver unavailable, revealing immediately")
		fn(Entry{Intersecting: true, Ratio: 1})
		return nopSubscription{}
	}

	sub := &jsSubscription{}
	sub.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			if sub.closed() {
				return nil
			}
			e := entries.Index(i)
			fn(Entry{
				Intersecting: e.Get("isIntersecting").Bool(),
				Ratio:        e.Get("intersectionRatio").Float(),
			})
		}
		return nil
	})

	opts := map[string]any{"threshold": threshold}
	if h.Root.Truthy() {
		opts["root"] = h.Root
	}
	if h.RootMargin != "" {
		opts["rootMargin"] = h.RootMargin
	}

	sub.obs = ctor.New(sub.cb, opts)
	sub.obs.Call("observe", el)
	return sub
}

type jsSubscription struct {
	mu   sync.Mutex
	obs  js.Value
	cb   js.Func
	done bool
}

func (s *jsSubscription) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Unsubscribe disconnects the IntersectionObserver and releases the callback.
// Releasing from inside the callback itself is allowed by syscall/js.
func (s *jsSubscription) Unsubscribe() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	s.mu.Unlock()

	if s.obs.Truthy() {
		s.obs.Call("disconnect")
	}
	s.cb.Release()
}
