// Package motion declares animations on server-rendered nodes.
//
// Nothing here animates anything. Each helper returns attributes that the
// embedded client runtime (assets/static/motion.js) reads: keyframes go into
// data-motion-* attributes, timings and gesture scales into CSS custom
// properties. The attributes never carry layout classes, so a page without
// the runtime renders the resting state.
package motion

import (
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Trigger string

const (
	// TriggerEnter plays once, on first paint.
	TriggerEnter Trigger = "enter"
	// TriggerInView plays every time the node scrolls into the viewport.
	TriggerInView Trigger = "in-view"
)

// Keyframe is a sparse set of animatable properties. Nil fields are left to
// the stylesheet.
type Keyframe struct {
	Opacity *float64
	X       *float64
	Y       *float64
	Scale   *float64
}

type Transition struct {
	Duration time.Duration
	Delay    time.Duration
}

type Animation struct {
	Trigger    Trigger
	Initial    Keyframe
	Animate    Keyframe
	Transition Transition
}

// Value returns a pointer to v, for building keyframes inline.
func Value(v float64) *float64 {
	return &v
}

func Fade(opacity float64) Keyframe {
	return Keyframe{Opacity: Value(opacity)}
}

func Enter(initial, animate Keyframe, t Transition) Animation {
	return Animation{Trigger: TriggerEnter, Initial: initial, Animate: animate, Transition: t}
}

func InView(initial, animate Keyframe, t Transition) Animation {
	return Animation{Trigger: TriggerInView, Initial: initial, Animate: animate, Transition: t}
}

// Stagger returns the delay of the item at index when each item starts step
// after the previous one.
func Stagger(index int, step time.Duration) time.Duration {
	if index < 0 {
		return 0
	}
	return time.Duration(index) * step
}

// Attrs renders the animation as node attributes.
func (a Animation) Attrs() g.Node {
	nodes := g.Group{h.Data("motion", string(a.Trigger))}
	if !a.Initial.empty() {
		nodes = append(nodes, h.Data("motion-initial", a.Initial.Encode()))
	}
	if !a.Animate.empty() {
		nodes = append(nodes, h.Data("motion-animate", a.Animate.Encode()))
	}
	return append(nodes, h.Style(a.Transition.style()))
}

// Encode writes the keyframe as "prop:value;..." in a fixed property order.
func (k Keyframe) Encode() string {
	var parts []string
	add := func(name string, v *float64) {
		if v != nil {
			parts = append(parts, name+":"+formatFloat(*v))
		}
	}
	add("opacity", k.Opacity)
	add("x", k.X)
	add("y", k.Y)
	add("scale", k.Scale)
	return strings.Join(parts, ";")
}

func (k Keyframe) empty() bool {
	return k.Opacity == nil && k.X == nil && k.Y == nil && k.Scale == nil
}

func (t Transition) style() string {
	return "--motion-duration:" + seconds(t.Duration) + ";--motion-delay:" + seconds(t.Delay)
}

func seconds(d time.Duration) string {
	return formatFloat(d.Seconds()) + "s"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
