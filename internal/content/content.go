// Package content holds the literal display copy of the landing page.
//
// Every list is returned as a fresh copy so a section can range over it
// without being able to alter what the next render sees.
package content

import "github.com/medconnect/landing/internal/ui/icon"

type FeatureItem struct {
	Icon        icon.Glyph
	Title       string
	Description string
}

type TimelineStep struct {
	Title       string
	Description string
}

type TestimonialItem struct {
	Quote  string
	Author string
	Role   string
}

type HeroCopy struct {
	Title    string
	Subtitle string
	Action   string
}

type CallToActionCopy struct {
	Heading string
	Body    string
	Action  string
}

const (
	ProductName = "MedConnect"

	FeaturesHeading     = "Key Features"
	HowItWorksHeading   = "How It Works"
	TestimonialsHeading = "What Our Users Say"
)

var features = [...]FeatureItem{
	{
		Icon:        icon.Activity,
		Title:       "AI Health Monitoring",
		Description: "Periodic health tests with AI analysis for proactive care.",
	},
	{
		Icon:        icon.Shield,
		Title:       "Secure Blockchain EMR",
		Description: "Access and transfer medical records securely across hospitals.",
	},
	{
		Icon:        icon.Zap,
		Title:       "Smart Scheduling",
		Description: "AI-powered appointment booking and queue management.",
	},
}

var timeline = [...]TimelineStep{
	{Title: "Patient Signs Up", Description: "Create an account and set up your health profile."},
	{Title: "AI Health Monitoring", Description: "Regular health checks and AI analysis of your condition."},
	{Title: "Smart Appointment Booking", Description: "AI matches you with the best available doctor when needed."},
	{Title: "Secure Data Sharing", Description: "Your medical records are securely shared with your doctor via blockchain."},
	{Title: "Efficient Treatment", Description: "Receive personalized care based on your complete medical history."},
}

var testimonials = [...]TestimonialItem{
	{
		Quote:  "MedConnect has revolutionized how we manage patient care. It's a game-changer!",
		Author: "Dr. Sarah Johnson",
		Role:   "Chief of Medicine",
	},
	{
		Quote:  "As a patient, I feel more in control of my health. The AI monitoring is incredible.",
		Author: "Michael Chen",
		Role:   "Patient",
	},
}

func Features() []FeatureItem {
	out := make([]FeatureItem, len(features))
	copy(out, features[:])
	return out
}

func Timeline() []TimelineStep {
	out := make([]TimelineStep, len(timeline))
	copy(out, timeline[:])
	return out
}

func Testimonials() []TestimonialItem {
	out := make([]TestimonialItem, len(testimonials))
	copy(out, testimonials[:])
	return out
}

func Hero() HeroCopy {
	return HeroCopy{
		Title:    ProductName,
		Subtitle: "A Smart Blockchain-Driven AI Platform for Hospitals and Patients",
		Action:   "Get Started",
	}
}

func CallToAction() CallToActionCopy {
	return CallToActionCopy{
		Heading: "Ready to Transform Healthcare?",
		Body:    "Join MedConnect today and experience the future of medical care.",
		Action:  "Get Started Now",
	}
}
