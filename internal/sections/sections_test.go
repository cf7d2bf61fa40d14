package sections

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/medconnect/landing/internal/content"
)

func TestHero(t *testing.T) {
	html := render(t, Hero())

	checks := []string{
		`<section id="hero"`,
		`<h1 class="text-5xl font-bold text-primary mb-4">MedConnect</h1>`,
		"A Smart Blockchain-Driven AI Platform for Hospitals and Patients",
		`data-motion-initial="opacity:0;y:-50"`,
		"--motion-delay:1s",
		`data-icon="arrow-down"`,
		"animate-bounce",
		">Get Started</button>",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("Expected hero to contain %q", want)
		}
	}
}

func TestFeatures(t *testing.T) {
	html := render(t, Features())

	titles := regexp.MustCompile(`<h3 class="card-title">([^<]+)</h3>`).FindAllStringSubmatch(html, -1)
	want := []string{"AI Health Monitoring", "Secure Blockchain EMR", "Smart Scheduling"}
	if len(titles) != len(want) {
		t.Fatalf("Expected %d feature cards, got %d", len(want), len(titles))
	}
	for i, m := range titles {
		if m[1] != want[i] {
			t.Errorf("Card %d: expected %q, got %q", i, want[i], m[1])
		}
	}

	for _, glyph := range []string{"activity", "shield", "zap"} {
		if !strings.Contains(html, `data-icon="`+glyph+`"`) {
			t.Errorf("Expected %s icon", glyph)
		}
	}
	if n := strings.Count(html, "data-motion-gesture"); n != 3 {
		t.Errorf("Expected 3 hover cards, got %d", n)
	}
}

func TestTimeline(t *testing.T) {
	html := render(t, HowItWorks())

	badges := regexp.MustCompile(`timeline-badge[^"]*">(\d+)</div>`).FindAllStringSubmatch(html, -1)
	if len(badges) != 5 {
		t.Fatalf("Expected 5 badges, got %d", len(badges))
	}
	for i, m := range badges {
		if want := string(rune('1' + i)); m[1] != want {
			t.Errorf("Badge %d: expected %s, got %s", i, want, m[1])
		}
	}

	if n := strings.Count(html, "timeline-connector"); n != 4 {
		t.Errorf("Expected 4 connectors, got %d", n)
	}

	steps := strings.Split(html, `class="timeline-step`)[1:]
	if len(steps) != 5 {
		t.Fatalf("Expected 5 steps, got %d", len(steps))
	}
	if strings.Contains(steps[4], "timeline-connector") {
		t.Error("Expected no connector after the last step")
	}
	for i := 0; i < 4; i++ {
		if !strings.Contains(steps[i], "timeline-connector") {
			t.Errorf("Expected connector after step %d", i+1)
		}
	}
}

func TestTimelineEmpty(t *testing.T) {
	html := render(t, Timeline(nil))
	if strings.Contains(html, "timeline-step") {
		t.Errorf("Expected no steps, got %s", html)
	}
}

func TestStepAnimationDelays(t *testing.T) {
	prev := time.Duration(-1)
	for i := range content.Timeline() {
		a := StepAnimation(i)
		if a.Transition.Delay <= prev {
			t.Errorf("Step %d delay %s does not exceed %s", i, a.Transition.Delay, prev)
		}
		if a.Transition.Duration != 500*time.Millisecond {
			t.Errorf("Step %d: expected 500ms duration, got %s", i, a.Transition.Duration)
		}
		prev = a.Transition.Delay
	}
}

func TestTestimonials(t *testing.T) {
	html := render(t, Testimonials())

	authors := regexp.MustCompile(`testimonial-author[^"]*">([^<]+)</p>`).FindAllStringSubmatch(html, -1)
	want := []string{"Dr. Sarah Johnson", "Michael Chen"}
	if len(authors) != len(want) {
		t.Fatalf("Expected %d testimonials, got %d", len(want), len(authors))
	}
	for i, m := range authors {
		if m[1] != want[i] {
			t.Errorf("Testimonial %d: expected %q, got %q", i, want[i], m[1])
		}
	}
	if !strings.Contains(html, "&#34;MedConnect has revolutionized") {
		t.Error("Expected quote wrapped in quotation marks")
	}
}

func TestCallToAction(t *testing.T) {
	html := render(t, CallToAction())

	checks := []string{
		`<section id="call-to-action"`,
		"Ready to Transform Healthcare?",
		"Join MedConnect today and experience the future of medical care.",
		"btn-secondary",
		">Get Started Now</button>",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("Expected call to action to contain %q", want)
		}
	}
}
