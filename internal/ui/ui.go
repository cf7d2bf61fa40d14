// Package ui holds the shared visual primitives the page sections are built
// from. Styling lives in the embedded stylesheet; these functions only pick
// class names.
package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Variant string

const (
	VariantDefault   Variant = "default"
	VariantSecondary Variant = "secondary"
)

type Size string

const (
	SizeDefault Size = "default"
	SizeSmall   Size = "sm"
	SizeLarge   Size = "lg"
)

type ButtonOptions struct {
	Variant Variant
	Size    Size
	Class   string
}

// Button renders a plain type="button" element. It is never wired to a
// destination.
func Button(opts ButtonOptions, children ...g.Node) g.Node {
	variant := opts.Variant
	if variant == "" {
		variant = VariantDefault
	}
	size := opts.Size
	if size == "" {
		size = SizeDefault
	}

	return h.Button(
		h.Type("button"),
		h.Class(classes("btn", "btn-"+string(variant), "btn-size-"+string(size), opts.Class)),
		g.Group(children),
	)
}

func Card(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(classes("card", class)), g.Group(children))
}

func CardHeader(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(classes("card-header", class)), g.Group(children))
}

func CardTitle(text string) g.Node {
	return h.H3(h.Class("card-title"), g.Text(text))
}

func CardDescription(text string) g.Node {
	return h.P(h.Class("card-description"), g.Text(text))
}

func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(classes("card-content", class)), g.Group(children))
}

func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
