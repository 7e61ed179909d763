// Package shell builds index.html: the document the browser loads before the
// WebAssembly runtime takes over #app.
package shell

import (
	"fmt"
	"io"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/vcrobe/visiq/content"
	"github.com/vcrobe/visiq/internal/app/components/pages"
	"github.com/vcrobe/visiq/vdom"
)

// FontHref is the Noto Sans JP stylesheet the page is set in.
const FontHref = "https://fonts.googleapis.com/css2?family=Noto+Sans+JP:wght@300;400;500;700&display=swap"

// MountID is the element the runtime renders into.
const MountID = "app"

// Options name the assets the document links to, relative to the document.
type Options struct {
	Stylesheet string
	WASM       string
	WASMExec   string
}

// Document returns the full page. The <noscript> block carries the page in
// its final state for browsers that will never run the runtime.
func Document(page *content.Page, opts Options) (g.Node, error) {
	fallback, err := vdom.HTML(pages.Static(page))
	if err != nil {
		return nil, fmt.Errorf("prerender noscript: %w", err)
	}

	return c.HTML5(c.HTML5Props{
		Title:       page.Title,
		Description: page.Description,
		Language:    page.Lang,
		Head: []g.Node{
			Meta(Name("theme-color"), Content("#ffffff")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), g.Attr("crossorigin")),
			Link(Rel("stylesheet"), Href(FontHref)),
			Link(Rel("stylesheet"), Href(opts.Stylesheet)),
		},
		Body: []g.Node{
			Div(ID(MountID)),
			NoScript(g.Raw(fallback)),
			Script(Src(opts.WASMExec)),
			Script(g.Raw(loader(opts.WASM))),
		},
	}), nil
}

// Write renders the document to w.
func Write(w io.Writer, page *content.Page, opts Options) error {
	doc, err := Document(page, opts)
	if err != nil {
		return err
	}
	if err := doc.Render(w); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

func loader(wasm string) string {
	return `const go = new Go();
WebAssembly.instantiateStreaming(fetch(` + strconv.Quote(wasm) + `), go.importObject)
	.then((result) => go.run(result.instance))
	.catch((err) => console.error("visiq: failed to start", err));`
}
