//go:build !dev
// +build !dev

package runtime

import "github.com/vcrobe/visiq/logging"

// invoke calls a lifecycle method in production mode.
// Panics are recovered and logged so one broken component cannot take the page down.
func invoke(key, hook string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			log := logging.Component("runtime")
			log.Error().
				Str("key", key).
				Str("hook", hook).
				Interface("panic", rec).
				Msg("lifecycle panic recovered")
		}
	}()
	fn()
}
