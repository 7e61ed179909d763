package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, "ja", p.Lang)
	assert.Equal(t, "VISIQ Academy", p.Brand)
	assert.Equal(t, "#cta", p.Nav.Href)
	assert.Equal(t, "mailto:info@visiq.academy", p.ContactHref())
	assert.Equal(t, "© 2025 VISIQ Academy. All rights reserved.", p.Footer)

	var ids []string
	for _, s := range p.Sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"hero", "challenge", "concept", "ai", "skills", "why", "fit", "founder", "cta"}, ids)

	skills, ok := p.Section("skills")
	require.True(t, ok)
	block := skills.Blocks[2]
	assert.Equal(t, KindSkills, block.Kind)
	assert.Equal(t, 0.07, block.Stagger)
	require.Len(t, block.Items, 5)
	assert.Equal(t, "01", block.Items[0].Num)
	assert.True(t, block.Items[4].Highlight)
	assert.False(t, block.Items[3].Highlight)

	fit, _ := p.Section("fit")
	cols := fit.Blocks[2]
	require.Len(t, cols.Columns, 2)
	assert.Equal(t, 0.1, cols.Columns[0].Delay)
	assert.Equal(t, 0.15, cols.Columns[1].Delay)
	assert.Equal(t, "自走できる力を育てたい", cols.Columns[0].Items[0].Title)
}

func TestDefault_HeroDelays(t *testing.T) {
	hero, ok := Default().Section("hero")
	require.True(t, ok)

	var delays []float64
	for _, b := range hero.Blocks {
		delays = append(delays, b.Delay)
	}
	assert.Equal(t, []float64{0, 0.1, 0.2, 0.3, 0.4}, delays)
}

const minimal = `
contact:
  email: hello@example.com
nav:
  label: Go
  href: "#end"
sections:
  - id: start
    blocks:
      - kind: heading
        text: Hi
  - id: end
    blocks:
      - kind: list
        items: [a, {title: b, desc: c}]
`

func TestParse_Minimal(t *testing.T) {
	p, err := Parse([]byte(minimal))
	require.NoError(t, err)

	items := p.Sections[1].Blocks[0].Items
	assert.Equal(t, []Item{{Title: "a"}, {Title: "b", Desc: "c"}}, items)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte(minimal + "colour: red\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil)

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Page)
		want   string
	}{
		{"unknown kind", func(p *Page) { p.Sections[0].Blocks[0].Kind = "carousel" }, `unknown kind "carousel"`},
		{"negative delay", func(p *Page) { p.Sections[0].Blocks[0].Delay = -0.1 }, "negative delay"},
		{"missing email", func(p *Page) { p.Contact.Email = "" }, "contact email is required"},
		{"bad email", func(p *Page) { p.Contact.Email = "not an address" }, "contact email"},
		{"duplicate id", func(p *Page) { p.Sections[1].ID = "start" }, `duplicate section id "start"`},
		{"dangling anchor", func(p *Page) { p.Nav.Href = "#nowhere" }, `link "#nowhere" points at no section`},
		{"empty list", func(p *Page) { p.Sections[1].Blocks[0].Items = nil }, "list has no items"},
		{"unknown theme", func(p *Page) { p.Sections[0].Theme = "neon" }, `unknown theme "neon"`},
		{"nested columns", func(p *Page) {
			p.Sections[0].Blocks = []Block{{Kind: KindColumns, Columns: []Block{{Kind: KindColumns}}}}
		}, "columns cannot nest"},
		{"unpaired strong next to brackets", func(p *Page) {
			p.Sections[0].Blocks[0].Text = "これは**「知的」**です"
		}, "has unpaired ** markup"},
		{"copy renders empty", func(p *Page) { p.Sections[0].Blocks[0].Text = "[](#end)" }, "renders empty"},
		{"item desc markup", func(p *Page) { p.Sections[1].Blocks[0].Items[1].Desc = "**c" }, "item 1 desc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(minimal))
			require.NoError(t, err)

			tt.mutate(p)
			err = p.Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	p, err := Parse([]byte(minimal))
	require.NoError(t, err)

	p.Contact.Email = ""
	p.Sections[0].Blocks[0].Kind = "nope"
	p.Nav.Href = "#gone"

	errs := multierr.Errors(p.Validate())
	assert.Len(t, errs, 3)
	for _, e := range errs {
		assert.ErrorIs(t, e, ErrInvalid)
	}
}

func TestDefault_EveryTextParses(t *testing.T) {
	for _, s := range Default().Sections {
		for _, b := range s.Blocks {
			if b.Text == "" {
				continue
			}
			runs := ParseInline(b.Text)
			assert.NotEmpty(t, runs, "%s/%s", s.ID, b.Kind)
			assert.False(t, strings.Contains(Plain(runs), "**"), "%s/%s has unparsed markup", s.ID, b.Kind)
		}
	}
}
