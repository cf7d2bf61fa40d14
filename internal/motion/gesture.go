package motion

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type GestureState int

const (
	StateRest GestureState = iota
	StateHover
	StatePressed
)

func (s GestureState) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StatePressed:
		return "pressed"
	default:
		return "rest"
	}
}

// Gesture scales a node while it is hovered or pressed. Zero fields mean
// "no change" for that state.
type Gesture struct {
	Hover float64
	Tap   float64
}

// Springy is the hover/tap pair used by the landing page cards.
var Springy = Gesture{Hover: 1.05, Tap: 0.95}

// Scale resolves the scale a node shows in state. Rest is always 1.
func (gs Gesture) Scale(state GestureState) float64 {
	switch state {
	case StateHover:
		if gs.Hover > 0 {
			return gs.Hover
		}
	case StatePressed:
		if gs.Tap > 0 {
			return gs.Tap
		}
	}
	return 1
}

// Attrs renders the gesture as CSS custom properties read by the stylesheet.
func (gs Gesture) Attrs() g.Node {
	return g.Group{
		h.Data("motion-gesture", ""),
		h.Style("--motion-rest-scale:" + formatFloat(gs.Scale(StateRest)) +
			";--motion-hover-scale:" + formatFloat(gs.Scale(StateHover)) +
			";--motion-tap-scale:" + formatFloat(gs.Scale(StatePressed))),
	}
}
