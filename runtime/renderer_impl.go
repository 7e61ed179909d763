//go:build js || wasm
// +build js wasm

package runtime

import (
	"github.com/vcrobe/visiq/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It renders the component tree into the element matching mountID and keeps
// the DOM in sync by patching against the previous VDOM.
type RendererImpl struct {
	tree             *Tree
	currentComponent Component // The root component
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
}

// NewRenderer creates a new runtime renderer mounting into mountID (a CSS selector).
func NewRenderer(mountID string) *RendererImpl {
	r := &RendererImpl{mountID: mountID}
	r.tree = NewTree(r)
	return r
}

// SetCurrentComponent sets the component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	r.tree.Render(r.currentComponent, r.commit)
}

// commit writes newVDOM to the document: a fresh render the first time, a patch afterwards.
func (r *RendererImpl) commit(newVDOM *vdom.VNode) {
	if r.prevVDOM == nil {
		// Initial render: clear and render fresh
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		// Subsequent renders: patch the existing DOM
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	// Store the new VDOM tree for the next render cycle
	r.prevVDOM = newVDOM
}

// RenderChild is called by Render code to render a child component.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.Child(key, childWithProps)
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Teardown unmounts every component, releasing whatever they hold.
// The DOM is left as is; the page is going away or being frozen.
func (r *RendererImpl) Teardown() {
	r.tree.UnmountAll()
}

// Restart discards the current DOM and renders the root from scratch with
// fresh component instances. Used when a torn-down page is shown again.
func (r *RendererImpl) Restart() {
	r.tree.UnmountAll()
	vdom.Clear(r.mountID, r.prevVDOM)
	r.prevVDOM = nil
	r.RenderRoot()
}
