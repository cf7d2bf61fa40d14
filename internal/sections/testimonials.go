package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/medconnect/landing/internal/content"
	"github.com/medconnect/landing/internal/motion"
	"github.com/medconnect/landing/internal/ui"
)

func Testimonials() g.Node {
	return h.Section(
		h.ID(IDTestimonials),
		h.Class("py-20 px-8"),
		h.H2(h.Class("text-3xl font-semibold text-center mb-12"), g.Text(content.TestimonialsHeading)),
		h.Div(
			h.Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
			g.Map(content.Testimonials(), testimonialCard),
		),
	)
}

func testimonialCard(t content.TestimonialItem) g.Node {
	return h.Div(
		h.Class("testimonial-card"),
		motion.Springy.Attrs(),
		ui.Card("",
			ui.CardContent("pt-6",
				h.P(h.Class("testimonial-quote text-lg mb-4"), g.Text(`"`+t.Quote+`"`)),
				h.P(h.Class("testimonial-author font-semibold"), g.Text(t.Author)),
				h.P(h.Class("testimonial-role text-sm text-muted-foreground"), g.Text(t.Role)),
			),
		),
	)
}
