// Package sections lays out the landing page: the nav bar, one band per
// content section and the footer. Every block inside a band is revealed on
// its own as it scrolls into view.
package sections

import (
	"strconv"
	"strings"

	"github.com/vcrobe/visiq/content"
	"github.com/vcrobe/visiq/reveal"
	"github.com/vcrobe/visiq/runtime"
	"github.com/vcrobe/visiq/vdom"
	"github.com/vcrobe/visiq/visibility"
)

// Key builds the instance key of a revealed block: "section/block" or
// "section/block/item".
func Key(sectionID string, block int, item ...int) string {
	var b strings.Builder
	b.WriteString(sectionID)
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(block))
	for _, i := range item {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

// Section renders one content section.
type Section struct {
	runtime.ComponentBase

	Content     content.Section
	Host        visibility.Host
	ContactHref string
	// HeadingLevel is 1 for the hero, 2 elsewhere.
	HeadingLevel int
	// Static renders every block in its final state without observers.
	Static bool
}

// ApplyProps picks up new copy for the same section.
func (s *Section) ApplyProps(next runtime.Component) {
	if n, ok := next.(*Section); ok {
		s.Content = n.Content
		s.ContactHref = n.ContactHref
		s.HeadingLevel = n.HeadingLevel
		s.Static = n.Static
	}
}

func (s *Section) Render(r runtime.Renderer) *vdom.VNode {
	id := s.Content.ID
	children := make([]*vdom.VNode, 0, len(s.Content.Blocks))
	for i, b := range s.Content.Blocks {
		switch b.Kind {
		case content.KindSkills:
			children = append(children, s.skills(r, i, b))
		case content.KindColumns:
			children = append(children, s.columns(r, i, b))
		default:
			children = append(children, s.reveal(r, Key(id, i), b.Kind, b.Delay,
				Block(b, s.HeadingLevel, s.ContactHref)))
		}
	}

	attrs := map[string]any{
		"id":    id,
		"class": s.class(),
	}
	inner := "section__inner"
	if s.Content.Width == "narrow" {
		inner += " section__inner--narrow"
	}
	return vdom.Section(attrs, vdom.Div(vdom.Class(inner), children...))
}

func (s *Section) class() string {
	theme := s.Content.Theme
	if theme == "" {
		theme = content.ThemeLight
	}
	class := "section section--" + theme
	if s.Content.Align == "center" {
		class += " section--center"
	}
	return class
}

// skills staggers the items: item j waits delay + j*stagger.
func (s *Section) skills(r runtime.Renderer, i int, b content.Block) *vdom.VNode {
	rows := make([]*vdom.VNode, 0, len(b.Items))
	for j, it := range b.Items {
		delay := b.Delay + float64(j)*b.Stagger
		rows = append(rows, s.reveal(r, Key(s.Content.ID, i, j), "skill", delay, Skill(it)))
	}
	return vdom.Div(vdom.Class("skills"), rows...)
}

func (s *Section) columns(r runtime.Renderer, i int, b content.Block) *vdom.VNode {
	cols := make([]*vdom.VNode, 0, len(b.Columns))
	for j, c := range b.Columns {
		cols = append(cols, s.reveal(r, Key(s.Content.ID, i, j), "column", c.Delay,
			vdom.Div(vdom.Class("card"), Block(c, s.HeadingLevel, s.ContactHref))))
	}
	return vdom.Div(vdom.Class("columns"), cols...)
}

func (s *Section) reveal(r runtime.Renderer, key, kind string, delay float64, payload *vdom.VNode) *vdom.VNode {
	opts := reveal.Options{
		ID:      key,
		Delay:   reveal.Seconds(delay),
		Class:   "reveal reveal--" + kind,
		Content: []*vdom.VNode{payload},
	}
	if s.Static {
		return reveal.Static(opts)
	}
	return r.RenderChild(key, reveal.New(s.Host, opts))
}

// Nav is the fixed top bar. It is never revealed.
type Nav struct {
	runtime.ComponentBase
	Brand string
	Link  content.Link
}

func (n *Nav) ApplyProps(next runtime.Component) {
	if x, ok := next.(*Nav); ok {
		n.Brand, n.Link = x.Brand, x.Link
	}
}

func (n *Nav) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Nav(vdom.Class("nav"),
		vdom.Div(vdom.Class("nav__inner"),
			vdom.Span(vdom.Class("nav__brand"), vdom.Text(n.Brand)),
			vdom.A(n.Link.Href, vdom.Class("nav__cta"), vdom.Text(n.Link.Label)),
		),
	)
}

// Footer is the closing line. It is never revealed.
type Footer struct {
	runtime.ComponentBase
	Text string
}

func (f *Footer) ApplyProps(next runtime.Component) {
	if x, ok := next.(*Footer); ok {
		f.Text = x.Text
	}
}

func (f *Footer) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Footer(vdom.Class("footer"), vdom.P(nil, vdom.Text(f.Text)))
}
