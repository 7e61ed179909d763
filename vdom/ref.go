package vdom

// Element is an opaque handle to a committed host element. In the browser it
// holds a js.Value; tests use any comparable value.
type Element = any

// Ref is filled by the renderer with the host element of the node it is
// attached to once that node is committed, and cleared when the node leaves
// the document. A component keeps the same Ref across renders.
type Ref struct {
	el  Element
	gen uint64
}

// Current returns the committed element, or nil if the node is not in the document.
func (r *Ref) Current() Element {
	if r == nil {
		return nil
	}
	return r.el
}

// Attach records the committed element. Called by renderers, once per
// element they create for the node; every call starts a new generation.
func (r *Ref) Attach(el Element) {
	if r != nil {
		r.el = el
		r.gen++
	}
}

// Generation counts Attach calls. Elements are not comparable in general
// (js.Value panics under ==), so holders compare generations to notice that
// the element behind the ref was replaced.
func (r *Ref) Generation() uint64 {
	if r == nil {
		return 0
	}
	return r.gen
}

// Detach clears the element. Called by renderers when the node is removed.
func (r *Ref) Detach() {
	if r != nil {
		r.el = nil
	}
}

// LiveRefs returns the set of refs in the subtree rooted at n.
func LiveRefs(n *VNode) map[*Ref]bool {
	live := make(map[*Ref]bool)
	Walk(n, func(v *VNode) bool {
		if v.Ref != nil {
			live[v.Ref] = true
		}
		return true
	})
	return live
}

// DetachGone clears the refs in the subtree rooted at n that are not in live.
// A component moved to another position keeps its ref, which the renderer
// may already have pointed at its new element.
func DetachGone(n *VNode, live map[*Ref]bool) {
	Walk(n, func(v *VNode) bool {
		if v.Ref != nil && !live[v.Ref] {
			v.Ref.Detach()
		}
		return true
	})
}

// DetachAll clears every ref in the subtree rooted at n.
func DetachAll(n *VNode) {
	Walk(n, func(v *VNode) bool {
		v.Ref.Detach()
		return true
	})
}
