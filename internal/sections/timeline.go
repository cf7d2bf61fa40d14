package sections

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/medconnect/landing/internal/content"
	"github.com/medconnect/landing/internal/motion"
)

const (
	stepDuration = 500 * time.Millisecond
	stepStagger  = 100 * time.Millisecond
)

func HowItWorks() g.Node {
	return h.Section(
		h.ID(IDHowItWorks),
		h.Class("py-20 px-8 bg-secondary"),
		h.H2(h.Class("text-3xl font-semibold text-center mb-12"), g.Text(content.HowItWorksHeading)),
		h.Div(
			h.Class("max-w-3xl mx-auto"),
			Timeline(content.Timeline()),
		),
	)
}

// StepAnimation is the in-view entrance of the step at index: it slides in
// from the left, each step starting a little after the one before.
func StepAnimation(index int) motion.Animation {
	return motion.InView(
		motion.Keyframe{Opacity: motion.Value(0), X: motion.Value(-50)},
		motion.Keyframe{Opacity: motion.Value(1), X: motion.Value(0)},
		motion.Transition{Duration: stepDuration, Delay: motion.Stagger(index, stepStagger)},
	)
}

func Timeline(steps []content.TimelineStep) g.Node {
	nodes := make(g.Group, 0, len(steps))
	for i, step := range steps {
		nodes = append(nodes, timelineStep(i, step, i < len(steps)-1))
	}
	return h.Div(h.Class("timeline space-y-8"), nodes)
}

func timelineStep(index int, step content.TimelineStep, connected bool) g.Node {
	return h.Div(
		h.Class("timeline-step flex"),
		StepAnimation(index).Attrs(),
		h.Div(
			h.Class("flex flex-col items-center mr-4"),
			h.Div(
				h.Class("timeline-badge flex items-center justify-center w-8 h-8 rounded-full bg-primary text-primary-foreground"),
				g.Text(strconv.Itoa(index+1)),
			),
			g.If(connected, h.Div(h.Class("timeline-connector w-px h-full bg-primary/30 mt-2"))),
		),
		h.Div(
			h.H3(h.Class("text-xl font-semibold mb-2"), g.Text(step.Title)),
			h.P(h.Class("text-muted-foreground"), g.Text(step.Description)),
		),
	)
}
