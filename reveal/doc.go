// Package reveal fades content in the first time it scrolls into view.
//
// A [Wrapper] owns one [visibility.Observer] bound to its own root element.
// Until the observer reports the element visible the content is transparent
// and shifted down by [Offset] pixels; afterwards it transitions to its
// natural state over [Duration], after the wrapper's delay. The mapping from
// state to styles is [Present], which can be called without a renderer.
package reveal
