//go:build !wasm
// +build !wasm

package events

// Stub for non-WASM builds. The browser binding is in events.go.

// Bind is a no-op outside the browser; l is driven directly in tests.
func Bind(l *Lifecycle) (release func()) {
	return func() {}
}
