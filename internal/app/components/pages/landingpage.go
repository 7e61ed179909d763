package pages

import (
	"github.com/vcrobe/visiq/content"
	"github.com/vcrobe/visiq/internal/app/components/sections"
	"github.com/vcrobe/visiq/logging"
	"github.com/vcrobe/visiq/runtime"
	"github.com/vcrobe/visiq/vdom"
	"github.com/vcrobe/visiq/visibility"
)

// LandingPage is the single page of the site: nav bar, content sections and
// footer, with every content block revealed as it scrolls into view.
type LandingPage struct {
	runtime.ComponentBase

	Page *content.Page
	Host visibility.Host
	// Static renders the final state with no observers, for <noscript>.
	Static bool
}

func (p *LandingPage) OnInit() {
	log := logging.Component("pages")
	log.Debug().
		Int("sections", len(p.Page.Sections)).
		Bool("static", p.Static).
		Msg("landing page init")
}

func (p *LandingPage) Render(r runtime.Renderer) *vdom.VNode {
	nav := r.RenderChild("nav", &sections.Nav{
		Brand: p.Page.Brand,
		Link:  p.Page.Nav,
	})

	bands := make([]*vdom.VNode, 0, len(p.Page.Sections))
	for i, s := range p.Page.Sections {
		level := 2
		if i == 0 {
			level = 1
		}
		bands = append(bands, r.RenderChild("#"+s.ID, &sections.Section{
			Content:      s,
			Host:         p.Host,
			ContactHref:  p.Page.ContactHref(),
			HeadingLevel: level,
			Static:       p.Static,
		}))
	}

	footer := r.RenderChild("footer", &sections.Footer{Text: p.Page.Footer})
	return vdom.Div(vdom.Class("landing"), nav, vdom.El("main", nil, bands...), footer)
}
