package runtime

import "github.com/vcrobe/visiq/vdom"

// Component is anything that can render itself into a vdom tree. It carries
// no build tags so pages and reveal wrappers render the same way in the
// browser, in native tests and in the static noscript prerender.
type Component interface {
	Render(r Renderer) *vdom.VNode

	// SetRenderer hands the component the renderer that owns it, so it can
	// ask for a new render cycle later.
	SetRenderer(r Renderer)
}

// Renderer is the part of a renderer visible to Render code.
type Renderer interface {
	// RenderChild renders child under key. The first component seen at a
	// key becomes the live instance; later renders pass their props to it.
	RenderChild(key string, child Component) *vdom.VNode

	// ReRender asks for another render cycle. Requests made while a cycle
	// is running are merged into one follow-up pass.
	ReRender()
}
