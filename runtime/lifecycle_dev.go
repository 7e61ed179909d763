//go:build dev
// +build dev

package runtime

// invoke calls a lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func invoke(key, hook string, fn func()) {
	fn()
}
