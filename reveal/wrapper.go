package reveal

import (
	"time"

	"github.com/vcrobe/visiq/logging"
	"github.com/vcrobe/visiq/runtime"
	"github.com/vcrobe/visiq/vdom"
	"github.com/vcrobe/visiq/visibility"
)

// Options configure a Wrapper.
type Options struct {
	// ID is exposed as data-reveal-id and used in logs.
	ID string
	// Delay postpones the transition once the content is visible.
	Delay time.Duration
	// Class is an optional presentation class for the wrapper element.
	Class string
	// Threshold is the visible fraction that triggers the reveal.
	// Zero means visibility.DefaultThreshold.
	Threshold float64
	// Content is the wrapped payload.
	Content []*vdom.VNode
}

// Wrapper reveals its content once it has been scrolled into view.
type Wrapper struct {
	runtime.ComponentBase
	Options

	host        visibility.Host
	ref         *vdom.Ref
	observer    *visibility.Observer
	unsubscribe func()
	boundGen    uint64 // ref generation the observer is bound to
}

var (
	_ runtime.Component     = (*Wrapper)(nil)
	_ runtime.Initializer   = (*Wrapper)(nil)
	_ runtime.Mounter       = (*Wrapper)(nil)
	_ runtime.AfterRenderer = (*Wrapper)(nil)
	_ runtime.Unmounter     = (*Wrapper)(nil)
	_ runtime.PropUpdater   = (*Wrapper)(nil)
)

// New returns a wrapper that will watch its element through host.
// With a nil host the content stays hidden.
func New(host visibility.Host, opts Options) *Wrapper {
	return &Wrapper{
		Options: opts,
		host:    host,
		ref:     &vdom.Ref{},
	}
}

// OnInit allocates the observer. Nothing is bound until the element exists.
func (w *Wrapper) OnInit() {
	w.watch()
}

// watch starts a fresh unbound observer, releasing any previous one.
func (w *Wrapper) watch() {
	w.release()
	threshold := w.Threshold
	if threshold <= 0 {
		threshold = visibility.DefaultThreshold
	}
	w.observer = visibility.New(w.host, visibility.WithThreshold(threshold))
	w.unsubscribe = w.observer.OnVisible(func() {
		log := logging.Component("reveal")
		log.Debug().Str("id", w.ID).Dur("delay", w.Delay).Msg("revealed")
		w.StateHasChanged()
	})
}

// OnMount binds the observer to the committed element.
func (w *Wrapper) OnMount() {
	w.bind()
}

// OnAfterRender retries binding if the element did not exist at mount time.
func (w *Wrapper) OnAfterRender() {
	w.bind()
}

// bind binds the observer to the committed element. If the renderer
// replaced the element before it was ever seen, the old binding is dropped
// and the new element is watched instead.
func (w *Wrapper) bind() {
	if w.observer == nil {
		return
	}
	el := w.ref.Current()
	if el == nil {
		return
	}
	gen := w.ref.Generation()
	switch w.observer.State() {
	case visibility.Unbound:
	case visibility.Bound:
		if gen == w.boundGen {
			return
		}
		w.watch()
	default:
		return
	}
	if w.observer.Bind(el) {
		w.boundGen = gen
	}
}

// OnUnmount releases the observer whatever state it is in.
func (w *Wrapper) OnUnmount() {
	w.release()
}

func (w *Wrapper) release() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	if w.observer != nil {
		w.observer.Release()
	}
}

// ApplyProps takes the delay, class and content of a freshly built wrapper.
// The threshold is fixed for the instance's lifetime.
func (w *Wrapper) ApplyProps(next runtime.Component) {
	n, ok := next.(*Wrapper)
	if !ok {
		return
	}
	w.ID = n.ID
	w.Delay = n.Delay
	w.Class = n.Class
	w.Content = n.Content
}

// Render draws the wrapper element with the styles for the current state.
func (w *Wrapper) Render(r runtime.Renderer) *vdom.VNode {
	attrs := Present(w.Visible(), w.Delay).Attributes(w.Class)
	if w.ID != "" {
		attrs[AttrID] = w.ID
	}
	return vdom.Div(attrs, w.Content...).WithRef(w.ref)
}

// Visible reports whether the content has been revealed.
func (w *Wrapper) Visible() bool {
	return w.observer != nil && w.observer.Visible()
}

// State returns the observer state; Unbound before OnInit.
func (w *Wrapper) State() visibility.State {
	if w.observer == nil {
		return visibility.Unbound
	}
	return w.observer.State()
}

// Static renders content in its final state with no observer and no
// transition, for documents that never run the runtime.
func Static(opts Options) *vdom.VNode {
	attrs := map[string]any{AttrState: StateStatic}
	if opts.Class != "" {
		attrs["class"] = opts.Class
	}
	if opts.ID != "" {
		attrs[AttrID] = opts.ID
	}
	return vdom.Div(attrs, opts.Content...)
}
