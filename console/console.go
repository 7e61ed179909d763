//go:build js || wasm

// Package console writes to the browser developer console.
package console

import (
	"strings"
	"syscall/js"
)

func call(method string, args ...any) {
	js.Global().Get("console").Call(method, args...)
}

func Log(args ...any)   { call("log", args...) }
func Warn(args ...any)  { call("warn", args...) }
func Error(args ...any) { call("error", args...) }

// Writer sends each zerolog JSON line to the console method matching its
// level, so warnings and errors stand out in devtools.
var Writer = writer{}

type writer struct{}

func (writer) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	switch {
	case strings.Contains(line, `"level":"error"`), strings.Contains(line, `"level":"fatal"`):
		Error(line)
	case strings.Contains(line, `"level":"warn"`):
		Warn(line)
	default:
		Log(line)
	}
	return len(p), nil
}
