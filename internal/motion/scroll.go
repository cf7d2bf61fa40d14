package motion

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ScrollOffset names the pair of edge intersections that bound scroll
// progress, e.g. "start end" to "end start".
type ScrollOffset [2]string

var TrackWholeTarget = ScrollOffset{"start end", "end start"}

// ScrollTransform maps scroll progress onto a property value.
type ScrollTransform struct {
	Property string
	Input    [2]float64
	Output   [2]float64
}

func (st ScrollTransform) Encode() string {
	return formatFloat(st.Input[0]) + "," + formatFloat(st.Input[1]) + ":" +
		formatFloat(st.Output[0]) + "," + formatFloat(st.Output[1])
}

// ScrollTracker declares progress tracking over a target node. The runtime
// publishes progress as --scroll-progress and each transform's value as
// --scroll-<property>; nothing binds them to layout unless the stylesheet does.
type ScrollTracker struct {
	Offset     ScrollOffset
	Transforms []ScrollTransform
}

func (s ScrollTracker) Attrs() g.Node {
	nodes := g.Group{
		h.Data("scroll-track", s.Offset[0]+"|"+s.Offset[1]),
	}
	for _, st := range s.Transforms {
		nodes = append(nodes, h.Data("scroll-"+st.Property, st.Encode()))
	}
	return nodes
}
