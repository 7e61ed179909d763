//go:build !wasm

package console

import "io"

// Error does nothing outside the browser.
func Error(args ...any) {}

// Writer discards log output outside the browser; native builds log to
// stderr instead.
var Writer io.Writer = io.Discard
