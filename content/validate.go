package content

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/multierr"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid content")

var knownKinds = map[string]bool{
	KindEyebrow:   true,
	KindHeading:   true,
	KindParagraph: true,
	KindList:      true,
	KindButton:    true,
	KindStatement: true,
	KindSkills:    true,
	KindColumns:   true,
	KindProfile:   true,
	KindQuote:     true,
}

var knownThemes = map[string]bool{"": true, ThemeLight: true, ThemeMuted: true, ThemeDark: true}

// Validate reports every problem found in the page. The returned error
// matches ErrInvalid with errors.Is.
func (p *Page) Validate() error {
	var err error
	invalid := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if p.Contact.Email == "" {
		invalid("contact email is required")
	} else if _, perr := mail.ParseAddress(p.Contact.Email); perr != nil {
		invalid("contact email %q: %v", p.Contact.Email, perr)
	}
	if len(p.Sections) == 0 {
		invalid("no sections")
	}

	ids := make(map[string]bool, len(p.Sections))
	for i, s := range p.Sections {
		switch {
		case s.ID == "":
			invalid("section %d has no id", i)
		case ids[s.ID]:
			invalid("duplicate section id %q", s.ID)
		}
		ids[s.ID] = true
		if !knownThemes[s.Theme] {
			invalid("section %q: unknown theme %q", s.ID, s.Theme)
		}
		for j, b := range s.Blocks {
			for _, msg := range checkBlock(b, false) {
				invalid("section %q block %d: %s", s.ID, j, msg)
			}
		}
	}

	anchors := []string{p.Nav.Href}
	for _, s := range p.Sections {
		for _, b := range s.Blocks {
			if b.Kind == KindButton {
				anchors = append(anchors, b.Href)
			}
		}
	}
	for _, href := range anchors {
		if id, ok := strings.CutPrefix(href, "#"); ok && !ids[id] {
			invalid("link %q points at no section", href)
		}
	}
	return err
}

func checkBlock(b Block, nested bool) []string {
	var problems []string
	if !knownKinds[b.Kind] {
		return append(problems, fmt.Sprintf("unknown kind %q", b.Kind))
	}
	if b.Delay < 0 {
		problems = append(problems, fmt.Sprintf("negative delay %v", b.Delay))
	}
	if b.Stagger < 0 {
		problems = append(problems, fmt.Sprintf("negative stagger %v", b.Stagger))
	}

	switch b.Kind {
	case KindList, KindSkills:
		if len(b.Items) == 0 {
			problems = append(problems, b.Kind+" has no items")
		}
	case KindButton:
		if b.Label == "" {
			problems = append(problems, "button has no label")
		}
	case KindColumns:
		if nested {
			problems = append(problems, "columns cannot nest")
			break
		}
		if len(b.Columns) == 0 {
			problems = append(problems, "columns has no columns")
		}
		for k, c := range b.Columns {
			for _, msg := range checkBlock(c, true) {
				problems = append(problems, fmt.Sprintf("column %d: %s", k, msg))
			}
		}
	case KindProfile:
		if b.Name == "" {
			problems = append(problems, "profile has no name")
		}
	default:
		if b.Text == "" {
			problems = append(problems, b.Kind+" has no text")
		}
	}

	problems = appendMarkup(problems, "text", b.Text)
	problems = appendMarkup(problems, "caption", b.Caption)
	for k, it := range b.Items {
		problems = appendMarkup(problems, fmt.Sprintf("item %d title", k), it.Title)
		problems = appendMarkup(problems, fmt.Sprintf("item %d desc", k), it.Desc)
	}
	return problems
}

// appendMarkup reports copy that renders to nothing, or that keeps a **
// marker the inline parser could not pair (see ParseInline).
func appendMarkup(problems []string, field, s string) []string {
	if strings.TrimSpace(s) == "" {
		return problems
	}
	plain := Plain(ParseInline(s))
	switch {
	case strings.TrimSpace(plain) == "":
		return append(problems, fmt.Sprintf("%s %q renders empty", field, s))
	case strings.Contains(plain, "**"):
		return append(problems, fmt.Sprintf("%s %q has unpaired ** markup", field, s))
	}
	return problems
}
