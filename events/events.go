//go:build js || wasm

package events

import "syscall/js"

// Listen adds fn as a listener for name on target. The returned function
// removes the listener and releases the callback; it is safe to call twice.
func Listen(target js.Value, name string, fn func(ev js.Value)) (release func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", name, cb)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", name, cb)
		cb.Release()
	}
}

// Bind wires l to the window's pagehide and pageshow events.
func Bind(l *Lifecycle) (release func()) {
	window := js.Global()
	offHide := Listen(window, "pagehide", func(js.Value) { l.Hide() })
	offShow := Listen(window, "pageshow", func(ev js.Value) {
		persisted := ev.Truthy() && ev.Get("persisted").Truthy()
		l.Show(persisted)
	})
	return func() {
		offHide()
		offShow()
	}
}
