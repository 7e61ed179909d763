package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name, or "#text" for a bare text node
	Attributes   map[string]any // The attributes of the node
	Children     []*VNode       // The child nodes
	Content      string         // The text content of the node
	Ref          *Ref           // Optional slot that receives the committed host element
	ComponentKey string         // Key of the component that produced this subtree, if any
}

// TextTag is the tag used for pure text nodes.
const TextTag = "#text"

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// WithRef attaches ref to the node and returns the node for chaining.
func (v *VNode) WithRef(ref *Ref) *VNode {
	v.Ref = ref
	return v
}

// Attr returns the attribute stored under key, or nil.
func (v *VNode) Attr(key string) any {
	if v == nil || v.Attributes == nil {
		return nil
	}
	return v.Attributes[key]
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// El creates an element VNode with the given tag, attributes and children.
// Nil children are dropped so callers can inline conditionals.
func El(tag string, attrs map[string]any, children ...*VNode) *VNode {
	kept := children[:0:0]
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return NewVNode(tag, attrs, kept, "")
}

// Paragraph creates a <p> VNode with the given text as its content and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode { return El("div", attrs, children...) }

// P creates a <p> VNode with children.
func P(attrs map[string]any, children ...*VNode) *VNode { return El("p", attrs, children...) }

// Span creates a <span> VNode with children.
func Span(attrs map[string]any, children ...*VNode) *VNode { return El("span", attrs, children...) }

// Strong creates a <strong> VNode with children.
func Strong(attrs map[string]any, children ...*VNode) *VNode { return El("strong", attrs, children...) }

// H1 creates an <h1> VNode with children.
func H1(attrs map[string]any, children ...*VNode) *VNode { return El("h1", attrs, children...) }

// H2 creates an <h2> VNode with children.
func H2(attrs map[string]any, children ...*VNode) *VNode { return El("h2", attrs, children...) }

// A creates an <a> VNode pointing at href.
func A(href string, attrs map[string]any, children ...*VNode) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return El("a", attrs, children...)
}

// Ul creates a <ul> VNode with children.
func Ul(attrs map[string]any, children ...*VNode) *VNode { return El("ul", attrs, children...) }

// Li creates an <li> VNode with children.
func Li(attrs map[string]any, children ...*VNode) *VNode { return El("li", attrs, children...) }

// Nav creates a <nav> VNode with children.
func Nav(attrs map[string]any, children ...*VNode) *VNode { return El("nav", attrs, children...) }

// Section creates a <section> VNode with children.
func Section(attrs map[string]any, children ...*VNode) *VNode { return El("section", attrs, children...) }

// Footer creates a <footer> VNode with children.
func Footer(attrs map[string]any, children ...*VNode) *VNode { return El("footer", attrs, children...) }

// Blockquote creates a <blockquote> VNode with children.
func Blockquote(attrs map[string]any, children ...*VNode) *VNode {
	return El("blockquote", attrs, children...)
}

// Br creates a line break.
func Br() *VNode { return NewVNode("br", nil, nil, "") }

// Class is shorthand for an attribute map holding only a class.
func Class(name string) map[string]any {
	if name == "" {
		return nil
	}
	return map[string]any{"class": name}
}

// Walk visits n and its descendants depth-first, stopping early if fn returns false.
func Walk(n *VNode, fn func(*VNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}
