package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/medconnect/landing/internal/content"
	"github.com/medconnect/landing/internal/motion"
	"github.com/medconnect/landing/internal/ui"
	"github.com/medconnect/landing/internal/ui/icon"
)

func Features() g.Node {
	return h.Section(
		h.ID(IDFeatures),
		h.Class("py-20 px-8"),
		h.H2(h.Class("text-3xl font-semibold text-center mb-12"), g.Text(content.FeaturesHeading)),
		h.Div(
			h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
			g.Map(content.Features(), featureCard),
		),
	)
}

func featureCard(f content.FeatureItem) g.Node {
	return h.Div(
		h.Class("feature-card"),
		motion.Springy.Attrs(),
		ui.Card("h-full",
			ui.CardHeader("",
				h.Div(h.Class("mb-4"), icon.Icon(f.Icon, 48, "w-12 h-12 text-primary")),
				ui.CardTitle(f.Title),
				ui.CardDescription(f.Description),
			),
		),
	)
}
