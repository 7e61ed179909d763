package runtime

import (
	"sort"

	"github.com/vcrobe/visiq/logging"
	"github.com/vcrobe/visiq/vdom"
)

// RootKey is the instance key of the root component.
const RootKey = "__root__"

// maxPasses bounds how many times one Render call re-runs when components
// keep requesting re-renders from their lifecycle hooks.
const maxPasses = 16

// Tree tracks component instances by key across render cycles and drives
// their lifecycle. It holds no DOM state, so both the browser renderer and
// the test renderer share it.
//
// A render cycle is: render from the root, unmount instances that were not
// rendered (before the DOM is patched, while their elements still exist),
// commit, then run OnMount for new instances and OnAfterRender for all of them.
type Tree struct {
	renderer  Renderer
	instances map[string]Component
	active    map[string]bool
	mounted   map[string]bool
	rendered  []string
	busy      bool
	dirty     bool
	last      *vdom.VNode
}

// NewTree creates an empty tree whose components will re-render through r.
func NewTree(r Renderer) *Tree {
	return &Tree{
		renderer:  r,
		instances: make(map[string]Component),
		active:    make(map[string]bool),
		mounted:   make(map[string]bool),
	}
}

// Child renders childWithProps at key, reusing the live instance if one exists.
// Renderers call it from their RenderChild implementation.
func (t *Tree) Child(key string, childWithProps Component) *vdom.VNode {
	if childWithProps == nil {
		return nil
	}
	if t.active[key] {
		log := logging.Component("runtime")
		log.Warn().Str("key", key).Msg("component key rendered twice in one cycle")
	}
	t.active[key] = true
	t.rendered = append(t.rendered, key)

	instance, exists := t.instances[key]
	if !exists {
		// First time seeing this component at this location, so store the new instance.
		instance = childWithProps
		t.instances[key] = instance
	} else if instance != childWithProps {
		// Preserve the existing instance to keep state; apply the new props.
		if updater, ok := instance.(PropUpdater); ok {
			invoke(key, "ApplyProps", func() { updater.ApplyProps(childWithProps) })
		}
	}

	instance.SetRenderer(t.renderer)

	if !exists {
		if initializer, ok := instance.(Initializer); ok {
			invoke(key, "OnInit", initializer.OnInit)
		}
	}
	if receiver, ok := instance.(ParameterReceiver); ok {
		invoke(key, "OnParametersSet", receiver.OnParametersSet)
	}

	node := instance.Render(t.renderer)
	if node != nil && node.ComponentKey == "" {
		node.ComponentKey = key
	}
	return node
}

// Render runs a render cycle for root and hands the resulting tree to commit.
// Re-render requests made while a cycle is running are coalesced into a
// follow-up pass instead of re-entering.
func (t *Tree) Render(root Component, commit func(*vdom.VNode)) *vdom.VNode {
	if t.busy {
		t.dirty = true
		return t.last
	}
	if root == nil {
		return nil
	}

	t.busy = true
	defer func() { t.busy = false }()

	for pass := 1; ; pass++ {
		t.dirty = false
		t.active = make(map[string]bool, len(t.instances))
		t.rendered = t.rendered[:0]

		node := t.Child(RootKey, root)
		t.sweep()
		if commit != nil {
			commit(node)
		}
		t.last = node
		t.afterCommit()

		if !t.dirty {
			return node
		}
		if pass == maxPasses {
			log := logging.Component("runtime")
			log.Warn().Int("passes", pass).Msg("render did not settle")
			return node
		}
	}
}

// sweep unmounts every instance that was not rendered in the current cycle.
func (t *Tree) sweep() {
	var gone []string
	for key := range t.instances {
		if !t.active[key] {
			gone = append(gone, key)
		}
	}
	sort.Strings(gone)
	for _, key := range gone {
		t.unmount(key)
	}
}

func (t *Tree) afterCommit() {
	keys := append([]string(nil), t.rendered...)
	for _, key := range keys {
		if t.mounted[key] {
			continue
		}
		t.mounted[key] = true
		if m, ok := t.instances[key].(Mounter); ok {
			invoke(key, "OnMount", m.OnMount)
		}
	}
	for _, key := range keys {
		if a, ok := t.instances[key].(AfterRenderer); ok {
			invoke(key, "OnAfterRender", a.OnAfterRender)
		}
	}
}

func (t *Tree) unmount(key string) {
	instance, ok := t.instances[key]
	if !ok {
		return
	}
	delete(t.instances, key)
	delete(t.mounted, key)
	if u, ok := instance.(Unmounter); ok {
		invoke(key, "OnUnmount", u.OnUnmount)
	}
}

// UnmountAll runs OnUnmount for every live instance, children before the
// root, and empties the tree. The next Render starts from scratch.
func (t *Tree) UnmountAll() {
	wasBusy := t.busy
	t.busy = true

	keys := make([]string, 0, len(t.instances))
	for key := range t.instances {
		if key != RootKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		t.unmount(key)
	}
	t.unmount(RootKey)

	t.active = make(map[string]bool)
	t.rendered = t.rendered[:0]
	t.last = nil
	t.dirty = false
	t.busy = wasBusy
}

// Instance returns the live component at key.
func (t *Tree) Instance(key string) (Component, bool) {
	c, ok := t.instances[key]
	return c, ok
}

// Len returns the number of live instances, the root included.
func (t *Tree) Len() int {
	return len(t.instances)
}

// Last returns the most recently committed tree.
func (t *Tree) Last() *vdom.VNode {
	return t.last
}
