package pages

import (
	"github.com/vcrobe/visiq/content"
	"github.com/vcrobe/visiq/runtime"
	"github.com/vcrobe/visiq/vdom"
)

// staticRenderer runs one render cycle with no DOM and no re-renders.
type staticRenderer struct {
	tree *runtime.Tree
}

func (s *staticRenderer) RenderChild(key string, c runtime.Component) *vdom.VNode {
	return s.tree.Child(key, c)
}

func (s *staticRenderer) ReRender() {}

// Static renders page in its final, fully shown state. The result is what
// browsers without WebAssembly see.
func Static(page *content.Page) *vdom.VNode {
	r := &staticRenderer{}
	r.tree = runtime.NewTree(r)
	root := &LandingPage{Page: page, Static: true}
	root.SetRenderer(r)
	node := r.tree.Render(root, nil)
	r.tree.UnmountAll()
	return node
}
