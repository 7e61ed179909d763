package reveal

import (
	"math"
	"strconv"
	"time"

	"github.com/vcrobe/visiq/vdom"
)

const (
	// Duration is how long the reveal transition runs once it starts.
	Duration = 700 * time.Millisecond
	// Offset is how far below its natural position hidden content sits, in px.
	Offset = 24.0
	// Curve is the CSS timing function of the transition.
	Curve = "ease"
)

// Data attribute values describing the reveal state of a wrapper.
const (
	AttrState   = "data-reveal"
	AttrID      = "data-reveal-id"
	StateHidden = "hidden"
	StateShown  = "shown"
	StateStatic = "static"
)

// Presentation is the visual state of revealed content.
type Presentation struct {
	Visible bool
	Opacity float64
	OffsetY float64
	Delay   time.Duration
}

// Present maps the reveal state and delay to presentation attributes.
// It depends on nothing but its arguments.
func Present(hasBeenVisible bool, delay time.Duration) Presentation {
	p := Presentation{
		Visible: hasBeenVisible,
		Delay:   max(delay, 0),
	}
	if hasBeenVisible {
		p.Opacity = 1
	} else {
		p.OffsetY = Offset
	}
	return p
}

// Transform returns the CSS transform for the offset.
func (p Presentation) Transform() string {
	return translateY(p.OffsetY)
}

// Transition returns the CSS transition shorthand for opacity and transform.
func (p Presentation) Transition() string {
	timing := seconds(Duration) + " " + Curve + " " + seconds(p.Delay)
	return "opacity " + timing + ", transform " + timing
}

// Style renders the presentation as inline CSS.
func (p Presentation) Style() vdom.Style {
	return vdom.Style{
		{Property: "opacity", Value: number(p.Opacity)},
		{Property: "transform", Value: p.Transform()},
		{Property: "transition", Value: p.Transition()},
	}
}

// Attributes returns the element attributes for a wrapper with the given
// presentation class.
func (p Presentation) Attributes(class string) map[string]any {
	attrs := map[string]any{
		"style":   p.Style(),
		AttrState: StateHidden,
	}
	if p.Visible {
		attrs[AttrState] = StateShown
	}
	if class != "" {
		attrs["class"] = class
	}
	return attrs
}

// Seconds converts a delay in (possibly fractional) seconds to a duration,
// rounded to the millisecond.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s*1000)) * time.Millisecond
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func translateY(px float64) string {
	if px == 0 {
		return "translateY(0)"
	}
	return "translateY(" + number(px) + "px)"
}
