// Package sections composes the landing page from its five sections.
package sections

import (
	"sync"
	"sync/atomic"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/medconnect/landing/internal/motion"
)

const (
	IDHero         = "hero"
	IDFeatures     = "features"
	IDHowItWorks   = "how-it-works"
	IDTestimonials = "testimonials"
	IDCallToAction = "call-to-action"
)

// Page is the shell that mounts every section in order. It renders nothing
// until Mount has been called; each page view builds its own Page.
type Page struct {
	once  sync.Once
	ready atomic.Bool
}

func NewPage() *Page {
	return &Page{}
}

// Mount flips the page to ready. Only the first call does anything and only
// that call returns true.
func (p *Page) Mount() bool {
	flipped := false
	p.once.Do(func() {
		p.ready.Store(true)
		flipped = true
	})
	return flipped
}

func (p *Page) Ready() bool {
	return p.ready.Load()
}

func SectionIDs() []string {
	return []string{IDHero, IDFeatures, IDHowItWorks, IDTestimonials, IDCallToAction}
}

// PageScroll is declared over the page root. Nothing in the stylesheet binds
// it; the runtime only publishes the values.
var PageScroll = motion.ScrollTracker{
	Offset: motion.TrackWholeTarget,
	Transforms: []motion.ScrollTransform{
		{Property: "opacity", Input: [2]float64{0, 0.5}, Output: [2]float64{0, 1}},
		{Property: "scale", Input: [2]float64{0, 0.5}, Output: [2]float64{0.8, 1}},
	},
}

func (p *Page) Node() g.Node {
	if !p.Ready() {
		return g.Group(nil)
	}

	return h.Div(
		h.Class("page min-h-screen bg-background text-foreground"),
		PageScroll.Attrs(),
		Hero(),
		Features(),
		HowItWorks(),
		Testimonials(),
		CallToAction(),
	)
}
