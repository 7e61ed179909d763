package testcomponents

import (
	"github.com/vcrobe/visiq/reveal"
	"github.com/vcrobe/visiq/runtime"
	"github.com/vcrobe/visiq/vdom"
	"github.com/vcrobe/visiq/visibility/visibilitytest"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It runs the same lifecycle as the browser renderer and stands in for the
// DOM on commit: every node carrying a Ref gets a visibilitytest.Element,
// and refs of nodes that left the tree are detached. Tests can:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
// - Look up the element committed for a reveal wrapper
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	tree        *runtime.Tree
	elements    map[string]vdom.Element
	replace     map[string]bool
	commits     int

	// HoldRefs leaves refs empty on commit, as if the host had not created
	// the elements yet. Call AttachRefs to deliver them.
	HoldRefs bool
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		elements:  make(map[string]vdom.Element),
		replace:   make(map[string]bool),
	}
	r.tree = runtime.NewTree(r)
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component.
// This should be called at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.tree.Render(r.component, r.commit)
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.tree.Render(r.component, r.commit)
}

// RenderChild renders a child component through the shared lifecycle tree.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return r.tree.Child(key, child)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Teardown unmounts every component, as the browser does on pagehide.
func (r *TestRenderer) Teardown() {
	r.tree.UnmountAll()
	vdom.DetachAll(r.currentVDOM)
	r.currentVDOM = nil
}

// Tree exposes the lifecycle tree for assertions.
func (r *TestRenderer) Tree() *runtime.Tree {
	return r.tree
}

// Commits returns how many commits have happened.
func (r *TestRenderer) Commits() int {
	return r.commits
}

// Element returns the element committed for the node with the given reveal
// id (or component key), or nil.
func (r *TestRenderer) Element(id string) vdom.Element {
	return r.elements[id]
}

// AttachRefs gives every pending ref its element and re-renders, so
// components waiting in OnAfterRender see their elements.
func (r *TestRenderer) AttachRefs() {
	r.HoldRefs = false
	r.ReRender()
}

// Replace re-renders and gives the node with the given reveal id (or
// component key) a fresh element, as a DOM patch does when it rebuilds a
// subtree instead of updating it.
func (r *TestRenderer) Replace(id string) {
	r.replace[id] = true
	r.ReRender()
}

func (r *TestRenderer) commit(next *vdom.VNode) {
	r.commits++

	live := make(map[*vdom.Ref]bool)
	vdom.Walk(next, func(n *vdom.VNode) bool {
		if n.Ref == nil {
			return true
		}
		live[n.Ref] = true
		if r.HoldRefs {
			return true
		}
		id := nodeID(n)
		if n.Ref.Current() == nil || r.replace[id] {
			delete(r.replace, id)
			n.Ref.Attach(visibilitytest.NewElement(id))
		}
		if id != "" {
			r.elements[id] = n.Ref.Current()
		}
		return true
	})

	vdom.DetachGone(r.currentVDOM, live)

	r.currentVDOM = next
}

func nodeID(n *vdom.VNode) string {
	if id, ok := n.Attr(reveal.AttrID).(string); ok && id != "" {
		return id
	}
	return n.ComponentKey
}
