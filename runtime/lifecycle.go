package runtime

// Initializer is implemented by components that need one-time setup before
// their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive state from
// their props before every render.
type ParameterReceiver interface {
	OnParametersSet()
}

// PropUpdater copies props from a freshly constructed component onto the
// live instance kept at the same key, preserving the instance's state.
type PropUpdater interface {
	ApplyProps(next Component)
}

// Mounter is implemented by components that need their DOM to exist.
// OnMount runs once, after the first commit that included the component.
type Mounter interface {
	OnMount()
}

// AfterRenderer runs after every commit that included the component.
type AfterRenderer interface {
	OnAfterRender()
}

// Unmounter is implemented by components holding resources that must be
// released when they leave the tree or the page is torn down. OnUnmount
// runs exactly once per mounted instance.
type Unmounter interface {
	OnUnmount()
}
