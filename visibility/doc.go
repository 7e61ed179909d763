// Package visibility reports when a rendered element first enters the
// viewport.
//
// An [Observer] watches one target through a [Host], the environment's
// intersection primitive. The observer follows this state machine:
//
//	         Bind(target)            ratio >= threshold
//	Unbound ──────────────► Bound ─────────────────────► Visible
//	   │                      │
//	   │      Release()       │ Release()
//	   └──────────────────────┴──────────────────────────► Released
//
// Visible and Released are terminal. Becoming visible unsubscribes from the
// host before any callback runs, so later entries for the same target are
// never processed. Binding a nil target leaves the observer Unbound; the
// owner can bind again once the element exists.
package visibility
