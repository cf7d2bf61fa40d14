package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/medconnect/landing/internal/content"
	"github.com/medconnect/landing/internal/ui"
)

func CallToAction() g.Node {
	cta := content.CallToAction()

	return h.Section(
		h.ID(IDCallToAction),
		h.Class("py-20 px-8 bg-primary text-primary-foreground text-center"),
		h.H2(h.Class("text-3xl font-semibold mb-4"), g.Text(cta.Heading)),
		h.P(h.Class("text-xl mb-8"), g.Text(cta.Body)),
		ui.Button(ui.ButtonOptions{Variant: ui.VariantSecondary, Size: ui.SizeLarge}, g.Text(cta.Action)),
	)
}
