//go:build js || wasm

// Command landing is the WebAssembly runtime of the landing page. It renders
// into #app and reveals each block as it scrolls into view.
package main

import (
	"syscall/js"

	"github.com/vcrobe/visiq/console"
	"github.com/vcrobe/visiq/content"
	"github.com/vcrobe/visiq/events"
	"github.com/vcrobe/visiq/internal/app/components/pages"
	"github.com/vcrobe/visiq/logging"
	"github.com/vcrobe/visiq/runtime"
	"github.com/vcrobe/visiq/visibility"
)

const mount = "#app"

func main() {
	logging.Configure(logging.ProfileBrowser, console.Writer, "")
	log := logging.Component("landing")

	page, err := content.Parse(content.LandingYAML())
	if err != nil {
		log.Error().Err(err).Msg("load content")
		console.Error("visiq: " + err.Error())
		return
	}

	renderer := runtime.NewRenderer(mount)
	renderer.SetCurrentComponent(&pages.LandingPage{
		Page: page,
		Host: visibility.JSHost{},
	})
	renderer.RenderRoot()

	// Tell the smoke check (and the stylesheet) the runtime owns the page.
	js.Global().Get("document").Call("querySelector", mount).Call("setAttribute", "data-ready", "")

	events.Bind(&events.Lifecycle{
		Teardown: func() {
			log.Debug().Msg("pagehide: teardown")
			renderer.Teardown()
		},
		Restart: func() {
			log.Debug().Msg("pageshow: restart")
			renderer.Restart()
		},
	})
	log.Info().Int("sections", len(page.Sections)).Msg("mounted")

	// Keep the Go program running
	select {}
}
