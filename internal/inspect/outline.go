// Package inspect reads a rendered landing document back into its outline:
// which sections mounted, in what order, and what the repeated blocks hold.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/medconnect/landing/internal/content"
	"github.com/medconnect/landing/internal/core"
	"github.com/medconnect/landing/internal/sections"
)

var (
	ErrNoApp   = errors.New("document has no #app element")
	ErrOutline = errors.New("page outline mismatch")
)

type Step struct {
	Badge     string
	Title     string
	Connected bool
}

type Outline struct {
	Render string
	// Ready mirrors #app[data-ready].
	Ready       bool
	AppEmpty    bool
	HasTemplate bool
	// PageCount is the number of page roots found in #app and the template.
	PageCount     int
	Sections      []string
	HeroTitle     string
	FeatureTitles []string
	Steps         []Step
	Authors       []string
	CallToAction  string
	Buttons       []string
}

// Badges returns the timeline badge texts in document order.
func (o *Outline) Badges() []string {
	out := make([]string, len(o.Steps))
	for i, s := range o.Steps {
		out[i] = s.Badge
	}
	return out
}

// Connectors counts the steps followed by a connector line.
func (o *Outline) Connectors() int {
	n := 0
	for _, s := range o.Steps {
		if s.Connected {
			n++
		}
	}
	return n
}

// Parse reads a full document. The mounted page is taken from #app when it
// has content, otherwise from the page template.
func Parse(r io.Reader) (*Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	app := findByID(doc, core.AppElementID)
	if app == nil {
		return nil, ErrNoApp
	}

	o := &Outline{
		Render:   attr(app, "data-render"),
		Ready:    attr(app, "data-ready") == "true",
		AppEmpty: isEmpty(app),
	}

	var roots []*html.Node
	roots = append(roots, findAll(app, hasClass("page"))...)

	tmpl := findByID(doc, core.PageTemplateID)
	if tmpl != nil && tmpl.DataAtom == atom.Template {
		o.HasTemplate = true
		roots = append(roots, findAll(tmpl, hasClass("page"))...)
	}
	o.PageCount = len(roots)

	if len(roots) > 0 {
		o.readPage(roots[0])
	}
	return o, nil
}

func (o *Outline) readPage(page *html.Node) {
	for _, s := range findAll(page, isElement(atom.Section)) {
		if id := attr(s, "id"); id != "" {
			o.Sections = append(o.Sections, id)
		}
	}

	if hero := findByID(page, sections.IDHero); hero != nil {
		if h1 := first(hero, isElement(atom.H1)); h1 != nil {
			o.HeroTitle = text(h1)
		}
	}

	if features := findByID(page, sections.IDFeatures); features != nil {
		for _, n := range findAll(features, hasClass("card-title")) {
			o.FeatureTitles = append(o.FeatureTitles, text(n))
		}
	}

	if steps := findByID(page, sections.IDHowItWorks); steps != nil {
		for _, n := range findAll(steps, hasClass("timeline-step")) {
			step := Step{Connected: first(n, hasClass("timeline-connector")) != nil}
			if badge := first(n, hasClass("timeline-badge")); badge != nil {
				step.Badge = text(badge)
			}
			if title := first(n, isElement(atom.H3)); title != nil {
				step.Title = text(title)
			}
			o.Steps = append(o.Steps, step)
		}
	}

	if quotes := findByID(page, sections.IDTestimonials); quotes != nil {
		for _, n := range findAll(quotes, hasClass("testimonial-author")) {
			o.Authors = append(o.Authors, text(n))
		}
	}

	if cta := findByID(page, sections.IDCallToAction); cta != nil {
		if h2 := first(cta, isElement(atom.H2)); h2 != nil {
			o.CallToAction = text(h2)
		}
	}

	for _, n := range findAll(page, isElement(atom.Button)) {
		o.Buttons = append(o.Buttons, text(n))
	}
}

// Verify checks a parsed outline against the fixed page content and returns
// every mismatch joined under ErrOutline.
func Verify(o *Outline) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if o.PageCount != 1 {
		fail("expected the page exactly once, found %d", o.PageCount)
	}
	if o.Ready == o.AppEmpty {
		fail("#app ready=%t but empty=%t", o.Ready, o.AppEmpty)
	}
	if !o.Ready && !o.HasTemplate {
		fail("client shell has no page template")
	}

	if !slices.Equal(o.Sections, sections.SectionIDs()) {
		fail("sections %v, want %v", o.Sections, sections.SectionIDs())
	}
	if o.HeroTitle != content.Hero().Title {
		fail("hero title %q, want %q", o.HeroTitle, content.Hero().Title)
	}

	var wantTitles []string
	for _, f := range content.Features() {
		wantTitles = append(wantTitles, f.Title)
	}
	if !slices.Equal(o.FeatureTitles, wantTitles) {
		fail("feature titles %v, want %v", o.FeatureTitles, wantTitles)
	}

	timeline := content.Timeline()
	if len(o.Steps) != len(timeline) {
		fail("%d timeline steps, want %d", len(o.Steps), len(timeline))
	} else {
		for i, s := range o.Steps {
			if want := fmt.Sprint(i + 1); s.Badge != want {
				fail("step %d badge %q, want %q", i+1, s.Badge, want)
			}
			if s.Title != timeline[i].Title {
				fail("step %d title %q, want %q", i+1, s.Title, timeline[i].Title)
			}
			if want := i < len(timeline)-1; s.Connected != want {
				fail("step %d connector %t, want %t", i+1, s.Connected, want)
			}
		}
	}

	var wantAuthors []string
	for _, t := range content.Testimonials() {
		wantAuthors = append(wantAuthors, t.Author)
	}
	if !slices.Equal(o.Authors, wantAuthors) {
		fail("authors %v, want %v", o.Authors, wantAuthors)
	}
	if o.CallToAction != content.CallToAction().Heading {
		fail("call to action %q, want %q", o.CallToAction, content.CallToAction().Heading)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrOutline, errors.Join(errs...))
}

// VerifyDocument parses and verifies in one step.
func VerifyDocument(r io.Reader) (*Outline, error) {
	o, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return o, Verify(o)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isElement(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		return slices.Contains(strings.Fields(attr(n, "class")), class)
	}
}

func findByID(root *html.Node, id string) *html.Node {
	return first(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
}

// first returns the first descendant of root matching match, depth first.
func first(root *html.Node, match func(*html.Node) bool) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if n := first(c, match); n != nil {
			return n
		}
	}
	return nil
}

// findAll returns matching descendants of root without descending into a
// match.
func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			out = append(out, c)
			continue
		}
		out = append(out, findAll(c, match)...)
	}
	return out
}

func isEmpty(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return false
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return false
		}
	}
	return true
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
