package content

import (
	"testing"

	"github.com/medconnect/landing/internal/ui/icon"
)

func TestFeatures(t *testing.T) {
	got := Features()

	want := []struct {
		icon  icon.Glyph
		title string
	}{
		{icon.Activity, "AI Health Monitoring"},
		{icon.Shield, "Secure Blockchain EMR"},
		{icon.Zap, "Smart Scheduling"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d features, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Icon != w.icon || got[i].Title != w.title {
			t.Errorf("Feature %d: expected %s/%q, got %s/%q", i, w.icon, w.title, got[i].Icon, got[i].Title)
		}
		if got[i].Description == "" {
			t.Errorf("Feature %d has no description", i)
		}
	}
}

func TestTimeline(t *testing.T) {
	want := []string{
		"Patient Signs Up",
		"AI Health Monitoring",
		"Smart Appointment Booking",
		"Secure Data Sharing",
		"Efficient Treatment",
	}

	got := Timeline()
	if len(got) != len(want) {
		t.Fatalf("Expected %d steps, got %d", len(want), len(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("Step %d: expected %q, got %q", i+1, title, got[i].Title)
		}
	}
}

func TestTestimonials(t *testing.T) {
	got := Testimonials()
	if len(got) != 2 {
		t.Fatalf("Expected 2 testimonials, got %d", len(got))
	}
	if got[0].Author != "Dr. Sarah Johnson" || got[0].Role != "Chief of Medicine" {
		t.Errorf("Unexpected first testimonial %+v", got[0])
	}
	if got[1].Author != "Michael Chen" || got[1].Role != "Patient" {
		t.Errorf("Unexpected second testimonial %+v", got[1])
	}
}

func TestListsAreCopies(t *testing.T) {
	f := Features()
	f[0].Title = "changed"
	if Features()[0].Title != "AI Health Monitoring" {
		t.Error("Expected Features to return a copy")
	}

	s := Timeline()
	s[0].Title = "changed"
	if Timeline()[0].Title != "Patient Signs Up" {
		t.Error("Expected Timeline to return a copy")
	}
}

func TestCopy(t *testing.T) {
	if Hero().Title != ProductName {
		t.Errorf("Expected hero title %s, got %s", ProductName, Hero().Title)
	}
	if CallToAction().Heading != "Ready to Transform Healthcare?" {
		t.Errorf("Unexpected call to action heading %q", CallToAction().Heading)
	}
	if Hero().Action != "Get Started" || CallToAction().Action != "Get Started Now" {
		t.Error("Unexpected button labels")
	}
}
