package vdom

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AttrValue converts an attribute value into its string form.
// The second result is false when the attribute must be omitted
// (false booleans, nil values and function handlers).
func AttrValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case bool:
		return "", val
	case string:
		return val, true
	case Style:
		return val.String(), len(val) > 0
	case fmt.Stringer:
		return val.String(), true
	case int:
		return strconv.Itoa(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case func(), func(any):
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}

// SortedAttrs returns the renderable attributes of n ordered by key.
func SortedAttrs(n *VNode) []html.Attribute {
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, "on") {
			continue
		}
		if val, ok := AttrValue(n.Attributes[k]); ok {
			attrs = append(attrs, html.Attribute{Key: k, Val: val})
		}
	}
	return attrs
}

// ToNode converts a VNode tree into an x/net/html node tree.
func ToNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     SortedAttrs(n),
	}
	if n.Content != "" && len(n.Children) == 0 {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, c := range n.Children {
		if child := ToNode(c); child != nil {
			node.AppendChild(child)
		}
	}
	return node
}

// WriteHTML serializes the tree rooted at n as HTML.
// Attribute order is deterministic so output can be compared in tests.
func WriteHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, ToNode(n)); err != nil {
		return fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return nil
}

// HTML is WriteHTML into a string.
func HTML(n *VNode) (string, error) {
	var b strings.Builder
	if err := WriteHTML(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
