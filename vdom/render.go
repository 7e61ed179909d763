//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/visiq/console"
)

// Clear detaches every ref in the previous tree and empties the mount element.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		DetachAll(prevVDOM)
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}

	// Set innerHTML to an empty string to clear all children.
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)

	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if len(key) > 2 && key[0] == 'o' && key[1] == 'n' {
		return
	}

	val, ok := AttrValue(value)
	if !ok {
		el.Call("removeAttribute", key)
		return
	}

	el.Call("setAttribute", key, val)
}

// isVoid reports whether tag never has children or content.
func isVoid(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "link", "meta", "source", "wbr":
		return true
	}
	return false
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		// Pure text node - no HTML element wrapper
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	if n.Tag == "" {
		console.Error("Unsupported tag: empty")
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if !isVoid(n.Tag) {
		if n.Content != "" && len(n.Children) == 0 {
			el.Set("textContent", n.Content)
		}

		for _, child := range n.Children {
			childEl := createElement(child)
			if childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
	}

	n.Ref.Attach(el)

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := querySelector(mountSelector)
	if !mount.Truthy() {
		return
	}

	// Get the root DOM element (first child of mount point)
	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		// No existing DOM, just render fresh
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode, LiveRefs(newVNode))
}

// replaceElement swaps domElement for a freshly created element built from newVNode.
func replaceElement(domElement js.Value, oldVNode, newVNode *VNode, live map[*Ref]bool) {
	DetachGone(oldVNode, live)

	newElement := createElement(newVNode)
	if newElement.Truthy() {
		parent := domElement.Get("parentNode")
		if parent.Truthy() {
			parent.Call("replaceChild", newElement, domElement)
		}
	}
}

// patchElement updates a single DOM element based on VDOM differences.
// Children are matched by position, not by key: a keyed child that moves
// is rebuilt rather than moved. live holds every ref in the new tree so a
// moved component's ref is never cleared after it was re-attached.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode, live map[*Ref]bool) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	// Different component keys mean a different component instance: replace the subtree.
	if oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" && oldVNode.ComponentKey != newVNode.ComponentKey {
		replaceElement(domElement, oldVNode, newVNode, live)
		return
	}

	// If tags are different, replace the entire element
	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode, live)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Re-attach only when the element is new to this ref, so the ref's
	// generation changes exactly when its element does.
	if oldVNode.Ref != newVNode.Ref {
		if !live[oldVNode.Ref] {
			oldVNode.Ref.Detach()
		}
		newVNode.Ref.Attach(domElement)
	} else if newVNode.Ref.Current() == nil {
		newVNode.Ref.Attach(domElement)
	}

	// Update text content ONLY if there are no children.
	// Setting textContent wipes out all child nodes, so we must check first.
	if len(newVNode.Children) == 0 && len(oldVNode.Children) == 0 {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}

	if len(oldVNode.Children) == 0 && oldVNode.Content != "" {
		// Text content is being replaced by child nodes.
		domElement.Set("textContent", "")
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children, live)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	// Remove old attributes that are not in new attributes
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}

	// Set new attributes
	for key, value := range newAttrs {
		oldVal, hadOld := AttrValue(oldAttrs[key])
		newVal, hasNew := AttrValue(value)
		if hadOld != hasNew || oldVal != newVal {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode, live map[*Ref]bool) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	// Get the DOM children
	domChildren := domElement.Get("childNodes")

	// Patch existing children
	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i], live)
		}
	}

	// Add new children if newChildren is longer
	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	// Remove extra children if oldChildren is longer
	for i := oldLen - 1; i >= newLen; i-- {
		DetachGone(oldChildren[i], live)

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
