package runtime

import "github.com/vcrobe/visiq/logging"

// ComponentBase gives an embedding component StateHasChanged.
type ComponentBase struct {
	renderer Renderer
}

// SetRenderer implements Component. The tree calls it; user code should not.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// StateHasChanged requests a re-render of the tree the component lives in.
// Before the component is attached to a renderer it only logs a warning.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		log := logging.Component("runtime")
		log.Warn().Msg("StateHasChanged on a component with no renderer")
		return
	}
	b.renderer.ReRender()
}
