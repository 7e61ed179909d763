package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// InlineKind distinguishes inline runs.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineStrong
	InlineBreak
)

// Inline is one run of formatted text.
type Inline struct {
	Kind InlineKind
	Text string
}

var markdown = goldmark.New()

// ParseInline splits copy into runs. A newline is a line break, a blank
// line is two, and **x** is strong. Other markdown is reduced to its text.
//
// Leading indentation is dropped and line-start block markers (#, >, -, 1.
// and the like) stay literal, so copy never turns into headings, lists or
// code blocks. Emphasis follows CommonMark flanking rules: a ** that sits
// between a kana or kanji and a bracket such as 「 does not open or close
// strong and is left in the text. Page.Validate reports such leftovers.
func ParseInline(s string) []Inline {
	if s == "" {
		return nil
	}
	src := []byte(literalBlocks(s))
	doc := markdown.Parser().Parse(text.NewReader(src))

	var (
		out    []Inline
		strong int
		blocks int
	)
	emit := func(kind InlineKind, t string) {
		if kind != InlineBreak {
			if t == "" {
				return
			}
			if n := len(out); n > 0 && out[n-1].Kind == kind {
				out[n-1].Text += t
				return
			}
		}
		out = append(out, Inline{Kind: kind, Text: t})
	}
	textKind := func() InlineKind {
		if strong > 0 {
			return InlineStrong
		}
		return InlineText
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if entering {
				if blocks > 0 {
					emit(InlineBreak, "")
					emit(InlineBreak, "")
				}
				blocks++
			}
		case *ast.Emphasis:
			if n.Level == 2 {
				if entering {
					strong++
				} else {
					strong--
				}
			}
		case *ast.Text:
			if entering {
				emit(textKind(), string(n.Segment.Value(src)))
				if n.SoftLineBreak() || n.HardLineBreak() {
					emit(InlineBreak, "")
				}
			}
		case *ast.String:
			if entering {
				emit(textKind(), string(n.Value))
			}
		}
		return ast.WalkContinue, nil
	})
	for i := range out {
		if out[i].Kind != InlineBreak {
			out[i].Text = string(util.UnescapePunctuations([]byte(out[i].Text)))
		}
	}
	return out
}

// literalBlocks trims each line and backslash-escapes a leading character
// that would otherwise start a block construct.
func literalBlocks(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		lines[i] = escapeBlockMarker(line)
	}
	return strings.Join(lines, "\n")
}

func escapeBlockMarker(line string) string {
	if line == "" {
		return line
	}
	switch line[0] {
	case '#', '>', '-', '+', '=', '<':
		return "\\" + line
	case '*', '_':
		// "**strong**" at the start of a line is inline markup; "* item",
		// "***" and "___" are not.
		if strings.Trim(line, line[:1]+" \t") == "" || (line[0] == '*' && len(line) > 1 && (line[1] == ' ' || line[1] == '\t')) {
			return "\\" + line
		}
		return line
	case '`', '~':
		if strings.HasPrefix(line, strings.Repeat(line[:1], 3)) {
			return "\\" + line
		}
		return line
	}
	// Ordered list marker: up to nine digits then '.' or ')'.
	n := 0
	for n < len(line) && n < 10 && line[n] >= '0' && line[n] <= '9' {
		n++
	}
	if n > 0 && n < 10 && n < len(line) && (line[n] == '.' || line[n] == ')') {
		return line[:n] + "\\" + line[n:]
	}
	return line
}

// Plain flattens runs back into text with newlines for breaks.
func Plain(runs []Inline) string {
	var b []byte
	for _, r := range runs {
		if r.Kind == InlineBreak {
			b = append(b, '\n')
			continue
		}
		b = append(b, r.Text...)
	}
	return string(b)
}
