package sections

import (
	"strconv"

	"github.com/vcrobe/visiq/content"
	"github.com/vcrobe/visiq/vdom"
)

// Inline converts parsed copy into nodes.
func Inline(runs []content.Inline) []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(runs))
	for _, r := range runs {
		switch r.Kind {
		case content.InlineStrong:
			nodes = append(nodes, vdom.Strong(nil, vdom.Text(r.Text)))
		case content.InlineBreak:
			nodes = append(nodes, vdom.Br())
		default:
			nodes = append(nodes, vdom.Text(r.Text))
		}
	}
	return nodes
}

func copyText(s string) []*vdom.VNode {
	return Inline(content.ParseInline(s))
}

// Block renders the payload of a single block. Skills and columns are laid
// out by Section because their children are revealed one by one. level is
// the heading level used for KindHeading.
func Block(b content.Block, level int, contactHref string) *vdom.VNode {
	switch b.Kind {
	case content.KindEyebrow:
		return vdom.P(vdom.Class("eyebrow"), vdom.Text(b.Text))
	case content.KindHeading:
		if level == 1 {
			return vdom.H1(vdom.Class("heading heading--hero"), copyText(b.Text)...)
		}
		return vdom.H2(vdom.Class("heading"), copyText(b.Text)...)
	case content.KindParagraph:
		return vdom.P(vdom.Class("paragraph"), copyText(b.Text)...)
	case content.KindList:
		return List(b)
	case content.KindButton:
		return button(b, contactHref)
	case content.KindStatement:
		return statement(b)
	case content.KindProfile:
		return profile(b)
	case content.KindQuote:
		return vdom.Blockquote(vdom.Class("quote"), vdom.P(nil, copyText(b.Text)...))
	default:
		return nil
	}
}

// List renders a titled list with the block's marker style.
func List(b content.Block) *vdom.VNode {
	class := "list"
	if b.Marker != "" {
		class += " list--" + b.Marker
	}
	var title *vdom.VNode
	if b.Title != "" {
		title = vdom.P(vdom.Class("list__title"), vdom.Text(b.Title))
	}
	items := make([]*vdom.VNode, 0, len(b.Items))
	for i, it := range b.Items {
		items = append(items, vdom.Li(vdom.Class("list__item"),
			vdom.Span(vdom.Class("list__marker"), vdom.Text(marker(b.Marker, i))),
			vdom.Span(vdom.Class("list__text"), copyText(it.Title)...),
		))
	}
	return vdom.Div(vdom.Class(class), title, vdom.Ul(nil, items...))
}

func marker(kind string, i int) string {
	switch kind {
	case content.MarkerNumber:
		return strconv.Itoa(i + 1)
	case content.MarkerIndex:
		if i < 9 {
			return "0" + strconv.Itoa(i+1)
		}
		return strconv.Itoa(i + 1)
	case content.MarkerCheck:
		return "✓"
	default:
		return "\u2014"
	}
}

// Skill renders one numbered skill row.
func Skill(it content.Item) *vdom.VNode {
	class := "skill"
	if it.Highlight {
		class += " skill--highlight"
	}
	return vdom.Div(vdom.Class(class),
		vdom.Span(vdom.Class("skill__num"), vdom.Text(it.Num)),
		vdom.Div(nil,
			vdom.P(vdom.Class("skill__title"), vdom.Text(it.Title)),
			vdom.P(vdom.Class("skill__desc"), copyText(it.Desc)...),
		),
	)
}

func button(b content.Block, contactHref string) *vdom.VNode {
	href := b.Href
	if href == "" {
		href = contactHref
	}
	var note *vdom.VNode
	if b.Note != "" {
		note = vdom.P(vdom.Class("button__note"), vdom.Text(b.Note))
	}
	return vdom.Div(vdom.Class("button-wrap"),
		vdom.A(href, vdom.Class("button"), vdom.Text(b.Label)),
		note,
	)
}

func statement(b content.Block) *vdom.VNode {
	body := copyText(b.Text)
	if b.Caption != "" {
		body = append(body, vdom.Br(), vdom.Span(vdom.Class("statement__caption"), copyText(b.Caption)...))
	}
	return vdom.Div(vdom.Class("statement"), vdom.P(nil, body...))
}

func profile(b content.Block) *vdom.VNode {
	return vdom.Div(vdom.Class("profile"),
		vdom.Div(vdom.Class("profile__avatar"), vdom.Text(b.Avatar)),
		vdom.Div(nil,
			vdom.P(vdom.Class("profile__name"), vdom.Text(b.Name)),
			vdom.P(vdom.Class("profile__role"), vdom.Text(b.Role)),
		),
	)
}
