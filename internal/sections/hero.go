package sections

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/medconnect/landing/internal/content"
	"github.com/medconnect/landing/internal/motion"
	"github.com/medconnect/landing/internal/ui"
	"github.com/medconnect/landing/internal/ui/icon"
)

var (
	heroEntrance = motion.Enter(
		motion.Keyframe{Opacity: motion.Value(0), Y: motion.Value(-50)},
		motion.Keyframe{Opacity: motion.Value(1), Y: motion.Value(0)},
		motion.Transition{Duration: 500 * time.Millisecond},
	)
	scrollHint = motion.Enter(
		motion.Fade(0),
		motion.Fade(1),
		motion.Transition{Delay: time.Second, Duration: 500 * time.Millisecond},
	)
)

func Hero() g.Node {
	hero := content.Hero()

	return h.Section(
		h.ID(IDHero),
		h.Class("hero h-screen flex flex-col justify-center items-center text-center p-8"),
		h.Div(
			h.Class("hero-intro"),
			heroEntrance.Attrs(),
			h.H1(h.Class("text-5xl font-bold text-primary mb-4"), g.Text(hero.Title)),
			h.P(h.Class("text-2xl text-muted-foreground mb-8"), g.Text(hero.Subtitle)),
			ui.Button(
				ui.ButtonOptions{Size: ui.SizeLarge, Class: "bg-primary text-primary-foreground hover:bg-primary/90"},
				g.Text(hero.Action),
			),
		),
		h.Div(
			h.Class("scroll-hint absolute bottom-10"),
			scrollHint.Attrs(),
			icon.Icon(icon.ArrowDown, 32, "animate-bounce"),
		),
	)
}
