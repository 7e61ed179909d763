//go:build !wasm

package reveal_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/visiq/reveal"
	"github.com/vcrobe/visiq/runtime"
	"github.com/vcrobe/visiq/testcomponents"
	"github.com/vcrobe/visiq/vdom"
	"github.com/vcrobe/visiq/visibility"
	"github.com/vcrobe/visiq/visibility/visibilitytest"
)

// board renders the first show blocks, each in its own reveal wrapper.
type board struct {
	runtime.ComponentBase
	host   visibility.Host
	blocks []reveal.Options
	show   int
}

func (b *board) Render(r runtime.Renderer) *vdom.VNode {
	children := make([]*vdom.VNode, 0, b.show)
	for _, opts := range b.blocks[:b.show] {
		children = append(children, r.RenderChild(opts.ID, reveal.New(b.host, opts)))
	}
	return vdom.Div(nil, children...)
}

func newBoard(host visibility.Host, blocks ...reveal.Options) *board {
	return &board{host: host, blocks: blocks, show: len(blocks)}
}

func text(s string) []*vdom.VNode {
	return []*vdom.VNode{vdom.Paragraph(s, nil)}
}

func wrapperAt(t *testing.T, r *testcomponents.TestRenderer, key string) *reveal.Wrapper {
	t.Helper()
	c, ok := r.Tree().Instance(key)
	require.True(t, ok, "no instance at %s", key)
	w, ok := c.(*reveal.Wrapper)
	require.True(t, ok)
	return w
}

func node(t *testing.T, r *testcomponents.TestRenderer, id string) *vdom.VNode {
	t.Helper()
	var found *vdom.VNode
	vdom.Walk(r.GetCurrentVDOM(), func(n *vdom.VNode) bool {
		if n.Attr(reveal.AttrID) == id {
			found = n
			return false
		}
		return true
	})
	require.NotNil(t, found, "no node with id %s", id)
	return found
}

func style(t *testing.T, n *vdom.VNode) vdom.Style {
	t.Helper()
	s, ok := n.Attr("style").(vdom.Style)
	require.True(t, ok)
	return s
}

// TestWrapper_InitialRender verifies content starts hidden and offset, and
// that the observer binds to the committed element.
func TestWrapper_InitialRender(t *testing.T) {
	// Arrange
	host := visibilitytest.NewHost()
	b := newBoard(host, reveal.Options{ID: "hero", Content: text("hello"), Class: "block"})
	r := testcomponents.NewTestRenderer(b)

	// Act
	r.RenderRoot()

	// Assert
	n := node(t, r, "hero")
	assert.Equal(t, reveal.StateHidden, n.Attr(reveal.AttrState))
	assert.Equal(t, "block", n.Attr("class"))
	opacity, _ := style(t, n).Get("opacity")
	transform, _ := style(t, n).Get("transform")
	assert.Equal(t, "0", opacity)
	assert.Equal(t, "translateY(24px)", transform)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "hello", n.Children[0].Content, "content stays in the document while hidden")

	w := wrapperAt(t, r, "hero")
	assert.False(t, w.Visible())
	assert.Equal(t, visibility.Bound, w.State())
	assert.Equal(t, 1, host.ActiveFor(r.Element("hero")))
}

// TestWrapper_ThresholdScenario verifies 0.05 keeps content hidden, 0.5
// reveals it once and unbinds, and dropping to 0 changes nothing.
func TestWrapper_ThresholdScenario(t *testing.T) {
	// Arrange
	host := visibilitytest.NewHost()
	r := testcomponents.NewTestRenderer(newBoard(host, reveal.Options{ID: "a", Threshold: 0.1, Content: text("x")}))
	r.RenderRoot()
	el := r.Element("a")
	w := wrapperAt(t, r, "a")

	// Act: below threshold
	host.Set(el, 0.05)

	// Assert
	assert.False(t, w.Visible())
	assert.Equal(t, reveal.StateHidden, node(t, r, "a").Attr(reveal.AttrState))

	// Act: above threshold
	commits := r.Commits()
	host.Set(el, 0.5)

	// Assert: one re-render, shown, unbound
	assert.True(t, w.Visible())
	assert.Equal(t, commits+1, r.Commits())
	assert.Equal(t, reveal.StateShown, node(t, r, "a").Attr(reveal.AttrState))
	opacity, _ := style(t, node(t, r, "a")).Get("opacity")
	assert.Equal(t, "1", opacity)
	assert.Zero(t, host.Active())

	// Act: scrolled away again
	commits = r.Commits()
	host.Set(el, 0)

	// Assert
	assert.True(t, w.Visible())
	assert.Equal(t, commits, r.Commits())
}

// TestWrapper_NeverIntersecting verifies a delayed wrapper that never
// intersects stays hidden however often it renders.
func TestWrapper_NeverIntersecting(t *testing.T) {
	host := visibilitytest.NewHost()
	r := testcomponents.NewTestRenderer(newBoard(host, reveal.Options{ID: "late", Delay: 300 * time.Millisecond, Content: text("x")}))
	r.RenderRoot()

	for range 5 {
		r.ReRender()
	}
	host.Set(r.Element("late"), 0.02)

	n := node(t, r, "late")
	assert.Equal(t, reveal.StateHidden, n.Attr(reveal.AttrState))
	transition, _ := style(t, n).Get("transition")
	assert.True(t, strings.HasSuffix(transition, "0.3s"), transition)
	opacity, _ := style(t, n).Get("opacity")
	assert.Equal(t, "0", opacity)
}

// TestWrapper_UnmountBeforeVisible verifies removing a wrapper releases its
// observer and nothing fires when the element is later forced into view.
func TestWrapper_UnmountBeforeVisible(t *testing.T) {
	// Arrange
	host := visibilitytest.NewHost()
	b := newBoard(host,
		reveal.Options{ID: "keep", Content: text("k")},
		reveal.Options{ID: "drop", Content: text("d")},
	)
	r := testcomponents.NewTestRenderer(b)
	r.RenderRoot()
	dropped := wrapperAt(t, r, "drop")
	el := r.Element("drop")
	require.Equal(t, 2, host.Active())

	// Act
	b.show = 1
	r.ReRender()

	// Assert
	assert.Equal(t, visibility.Released, dropped.State())
	assert.Equal(t, 1, host.Active())
	_, live := r.Tree().Instance("drop")
	assert.False(t, live)

	commits := r.Commits()
	assert.NotPanics(t, func() { host.Set(el, 1) })
	assert.False(t, dropped.Visible())
	assert.Equal(t, commits, r.Commits())
}

// TestWrapper_TeardownReleasesEverything verifies leaving the page releases
// every observer, visible or not.
func TestWrapper_TeardownReleasesEverything(t *testing.T) {
	host := visibilitytest.NewHost()
	b := newBoard(host,
		reveal.Options{ID: "one", Content: text("1")},
		reveal.Options{ID: "two", Content: text("2")},
		reveal.Options{ID: "three", Content: text("3")},
	)
	r := testcomponents.NewTestRenderer(b)
	r.RenderRoot()
	host.Set(r.Element("one"), 1)
	require.Equal(t, 2, host.Active())

	r.Teardown()

	assert.Zero(t, host.Active())
	assert.Zero(t, r.Tree().Len())
	assert.Zero(t, host.Set(r.Element("two"), 1))
}

// TestWrapper_IndependentInstances verifies revealing the second wrapper
// leaves the first hidden until its own element intersects.
func TestWrapper_IndependentInstances(t *testing.T) {
	host := visibilitytest.NewHost()
	r := testcomponents.NewTestRenderer(newBoard(host,
		reveal.Options{ID: "first", Content: text("1")},
		reveal.Options{ID: "second", Content: text("2")},
	))
	r.RenderRoot()
	first, second := wrapperAt(t, r, "first"), wrapperAt(t, r, "second")

	host.Set(r.Element("second"), 0.8)

	assert.False(t, first.Visible())
	assert.True(t, second.Visible())
	assert.Equal(t, reveal.StateHidden, node(t, r, "first").Attr(reveal.AttrState))
	assert.Equal(t, reveal.StateShown, node(t, r, "second").Attr(reveal.AttrState))

	host.Set(r.Element("first"), 0.2)

	assert.True(t, first.Visible())
}

// TestWrapper_DefersBindingUntilElementExists verifies a wrapper whose
// element is not committed yet stays unbound, then binds once it appears.
func TestWrapper_DefersBindingUntilElementExists(t *testing.T) {
	// Arrange
	host := visibilitytest.NewHost()
	r := testcomponents.NewTestRenderer(newBoard(host, reveal.Options{ID: "slow", Content: text("s")}))
	r.HoldRefs = true

	// Act
	r.RenderRoot()

	// Assert
	w := wrapperAt(t, r, "slow")
	assert.Equal(t, visibility.Unbound, w.State())
	assert.Zero(t, host.Active())

	// Act: the element shows up
	r.AttachRefs()

	// Assert
	assert.Equal(t, visibility.Bound, w.State())
	assert.Equal(t, 1, host.ActiveFor(r.Element("slow")))
}

// TestWrapper_PropsUpdateKeepsState verifies a re-render with new props
// reuses the instance and keeps the revealed state.
func TestWrapper_PropsUpdateKeepsState(t *testing.T) {
	host := visibilitytest.NewHost()
	b := newBoard(host, reveal.Options{ID: "p", Content: text("old")})
	r := testcomponents.NewTestRenderer(b)
	r.RenderRoot()
	w := wrapperAt(t, r, "p")
	host.Set(r.Element("p"), 1)

	b.blocks[0].Content = text("new")
	b.blocks[0].Delay = 150 * time.Millisecond
	r.ReRender()

	assert.Same(t, w, wrapperAt(t, r, "p"))
	n := node(t, r, "p")
	assert.Equal(t, reveal.StateShown, n.Attr(reveal.AttrState))
	assert.Equal(t, "new", n.Children[0].Content)
	assert.Equal(t, 1, len(host.Observations()), "no second subscription")
}

// TestWrapper_NilHostStaysHidden verifies wrappers without a host never bind.
func TestWrapper_NilHostStaysHidden(t *testing.T) {
	r := testcomponents.NewTestRenderer(newBoard(nil, reveal.Options{ID: "n", Content: text("n")}))
	r.RenderRoot()

	w := wrapperAt(t, r, "n")
	assert.Equal(t, visibility.Unbound, w.State())
	assert.Equal(t, reveal.StateHidden, node(t, r, "n").Attr(reveal.AttrState))

	r.Teardown()
	assert.Equal(t, visibility.Released, w.State())
}

// TestWrapper_RebindsWhenElementReplaced verifies a wrapper whose element is
// rebuilt before it was seen watches the new element and drops the old one.
func TestWrapper_RebindsWhenElementReplaced(t *testing.T) {
	// Arrange
	host := visibilitytest.NewHost()
	r := testcomponents.NewTestRenderer(newBoard(host, reveal.Options{ID: "m", Content: text("m")}))
	r.RenderRoot()
	old := r.Element("m")
	w := wrapperAt(t, r, "m")

	// Act
	r.Replace("m")

	// Assert
	fresh := r.Element("m")
	require.NotSame(t, old, fresh)
	assert.Equal(t, visibility.Bound, w.State())
	assert.Equal(t, 0, host.ActiveFor(old))
	assert.Equal(t, 1, host.ActiveFor(fresh))
	assert.Equal(t, 1, host.Active())

	assert.Equal(t, 0, host.Set(old, 1), "detached element is no longer watched")
	assert.False(t, w.Visible())

	host.Set(fresh, 1)
	assert.True(t, w.Visible())
	assert.Equal(t, reveal.StateShown, node(t, r, "m").Attr(reveal.AttrState))
	assert.Equal(t, 0, host.Active())
}

// TestWrapper_ReplacedAfterVisibleStaysShown verifies a revealed wrapper does
// not start watching again when its element is rebuilt.
func TestWrapper_ReplacedAfterVisibleStaysShown(t *testing.T) {
	host := visibilitytest.NewHost()
	r := testcomponents.NewTestRenderer(newBoard(host, reveal.Options{ID: "v", Content: text("v")}))
	r.RenderRoot()
	host.Set(r.Element("v"), 1)

	r.Replace("v")

	w := wrapperAt(t, r, "v")
	assert.Equal(t, visibility.Visible, w.State())
	assert.Equal(t, 0, host.Active())
	assert.Len(t, host.Observations(), 1)
	assert.Equal(t, reveal.StateShown, node(t, r, "v").Attr(reveal.AttrState))
}

func TestStatic(t *testing.T) {
	n := reveal.Static(reveal.Options{ID: "s", Class: "c", Content: text("x")})

	assert.Equal(t, reveal.StateStatic, n.Attr(reveal.AttrState))
	assert.Nil(t, n.Attr("style"))
	assert.Equal(t, "c", n.Attr("class"))
}
