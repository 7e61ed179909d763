// Package content holds the landing page copy and the model it decodes into.
// The copy lives in landing.yaml so wording can change without touching the
// components that lay it out.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed landing.yaml
var landingYAML []byte

// Block kinds.
const (
	KindEyebrow   = "eyebrow"
	KindHeading   = "heading"
	KindParagraph = "paragraph"
	KindList      = "list"
	KindButton    = "button"
	KindStatement = "statement"
	KindSkills    = "skills"
	KindColumns   = "columns"
	KindProfile   = "profile"
	KindQuote     = "quote"
)

// Section themes.
const (
	ThemeLight = "light"
	ThemeMuted = "muted"
	ThemeDark  = "dark"
)

// List markers.
const (
	MarkerNumber = "number" // 1, 2, 3 in a round badge
	MarkerIndex  = "index"  // 01, 02, 03
	MarkerDash   = "dash"
	MarkerCheck  = "check"
)

// Page is the whole landing page.
type Page struct {
	Lang        string    `yaml:"lang"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Brand       string    `yaml:"brand"`
	Nav         Link      `yaml:"nav"`
	Contact     Contact   `yaml:"contact"`
	Sections    []Section `yaml:"sections"`
	Footer      string    `yaml:"footer"`
}

// Link is a labelled anchor.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Contact is where enquiries go.
type Contact struct {
	Email string `yaml:"email"`
}

// Section is one full-width band of the page.
type Section struct {
	ID     string  `yaml:"id"`
	Theme  string  `yaml:"theme"`
	Align  string  `yaml:"align"`
	Width  string  `yaml:"width"`
	Blocks []Block `yaml:"blocks"`
}

// Block is one revealable unit inside a section. Which fields matter
// depends on Kind.
type Block struct {
	Kind    string  `yaml:"kind"`
	Delay   float64 `yaml:"delay"` // seconds
	Text    string  `yaml:"text"`
	Caption string  `yaml:"caption"`
	Items   []Item  `yaml:"items"`
	Columns []Block `yaml:"columns"`
	Title   string  `yaml:"title"`
	Marker  string  `yaml:"marker"`
	Href    string  `yaml:"href"`
	Label   string  `yaml:"label"`
	Note    string  `yaml:"note"`
	Name    string  `yaml:"name"`
	Role    string  `yaml:"role"`
	Avatar  string  `yaml:"avatar"`
	Stagger float64 `yaml:"stagger"` // seconds per item
}

// Item is a list entry. In YAML a plain string is shorthand for an item
// with only a title.
type Item struct {
	Num       string `yaml:"num"`
	Title     string `yaml:"title"`
	Desc      string `yaml:"desc"`
	Highlight bool   `yaml:"highlight"`
}

// UnmarshalYAML accepts either a scalar title or a full mapping.
func (it *Item) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		it.Title = value.Value
		return nil
	}
	type plain Item
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*it = Item(p)
	return nil
}

// LandingYAML returns the embedded page source.
func LandingYAML() []byte {
	return landingYAML
}

// Default returns the embedded landing page. It panics if the embedded copy
// does not load, which a test guards against.
func Default() *Page {
	p, err := Parse(landingYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded landing.yaml: %v", err))
	}
	return p
}

// Parse decodes and validates a page.
func Parse(data []byte) (*Page, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a page from r, rejecting unknown fields, and validates it.
func Decode(r io.Reader) (*Page, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Page
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("decode page: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ContactHref is the mailto link for the contact address.
func (p *Page) ContactHref() string {
	return "mailto:" + p.Contact.Email
}

// Section returns the section with the given id.
func (p *Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
