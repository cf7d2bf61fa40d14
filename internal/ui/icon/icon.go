// Package icon renders the fixed set of inert glyphs used by the landing page.
// The path data is taken from the lucide icon set.
package icon

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Glyph string

const (
	ArrowDown Glyph = "arrow-down"
	Activity  Glyph = "activity"
	Shield    Glyph = "shield"
	Zap       Glyph = "zap"
)

const DefaultSize = 24

var paths = map[Glyph][]string{
	ArrowDown: {
		"M12 5v14",
		"m19 12-7 7-7-7",
	},
	Activity: {
		"M22 12h-2.48a2 2 0 0 0-1.93 1.46l-2.35 8.36a.25.25 0 0 1-.48 0L9.24 2.18a.25.25 0 0 0-.48 0l-2.35 8.36A2 2 0 0 1 4.49 12H2",
	},
	Shield: {
		"M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z",
	},
	Zap: {
		"M4 14a1 1 0 0 1-.78-1.63l9.9-10.2a.5.5 0 0 1 .86.46l-1.92 6.02A1 1 0 0 0 13 10h7a1 1 0 0 1 .78 1.63l-9.9 10.2a.5.5 0 0 1-.86-.46l1.92-6.02A1 1 0 0 0 11 14z",
	},
}

// Known reports whether the glyph has path data.
func Known(glyph Glyph) bool {
	_, ok := paths[glyph]
	return ok
}

// Icon renders glyph as an inline SVG. Unknown glyphs render nothing.
// A size of zero or less falls back to DefaultSize.
func Icon(glyph Glyph, size int, class string) g.Node {
	ds, ok := paths[glyph]
	if !ok {
		return g.Group(nil)
	}
	if size <= 0 {
		size = DefaultSize
	}
	dim := strconv.Itoa(size)

	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", dim),
		g.Attr("height", dim),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Class("icon icon-"+string(glyph)+classSuffix(class)),
		Aria("hidden", "true"),
		Data("icon", string(glyph)),
		g.Map(ds, func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		}),
	)
}

func classSuffix(class string) string {
	if class == "" {
		return ""
	}
	return " " + class
}
