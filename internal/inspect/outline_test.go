package inspect

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/medconnect/landing/internal/core"
	"github.com/medconnect/landing/internal/sections"
)

func renderDocument(t *testing.T, render core.RenderMode, mount bool) []byte {
	t.Helper()

	page := sections.NewPage()
	if mount {
		page.Mount()
	}

	var buf bytes.Buffer
	err := core.RenderDocument(&buf, core.Document{
		StylesHref: "/assets/styles.css",
		ScriptSrc:  "/assets/motion.js",
		Render:     render,
		Page:       page.Node(),
	})
	if err != nil {
		t.Fatalf("RenderDocument failed: %v", err)
	}
	return buf.Bytes()
}

func TestParseSSR(t *testing.T) {
	o, err := VerifyDocument(bytes.NewReader(renderDocument(t, core.RenderSSR, true)))
	if err != nil {
		t.Fatalf("Expected valid outline, got %v", err)
	}

	if !o.Ready || o.AppEmpty {
		t.Errorf("Expected ready non-empty app, got ready=%t empty=%t", o.Ready, o.AppEmpty)
	}
	if o.HasTemplate {
		t.Error("Expected no page template in SSR")
	}
	if o.Render != "ssr" {
		t.Errorf("Expected render ssr, got %s", o.Render)
	}

	wantBadges := []string{"1", "2", "3", "4", "5"}
	if !slices.Equal(o.Badges(), wantBadges) {
		t.Errorf("Expected badges %v, got %v", wantBadges, o.Badges())
	}
	if o.Connectors() != 4 {
		t.Errorf("Expected 4 connectors, got %d", o.Connectors())
	}
	if o.Steps[4].Connected {
		t.Error("Expected no connector after the last step")
	}
	wantButtons := []string{"Get Started", "Get Started Now"}
	if !slices.Equal(o.Buttons, wantButtons) {
		t.Errorf("Expected buttons %v, got %v", wantButtons, o.Buttons)
	}
}

func TestParseClientShell(t *testing.T) {
	o, err := VerifyDocument(bytes.NewReader(renderDocument(t, core.RenderClient, true)))
	if err != nil {
		t.Fatalf("Expected valid outline, got %v", err)
	}

	if o.Ready {
		t.Error("Expected client shell to be not ready")
	}
	if !o.AppEmpty {
		t.Error("Expected empty #app in client shell")
	}
	if !o.HasTemplate {
		t.Error("Expected page template in client shell")
	}
	if o.PageCount != 1 {
		t.Errorf("Expected page once, got %d", o.PageCount)
	}
}

func TestVerifyUnmountedPage(t *testing.T) {
	_, err := VerifyDocument(bytes.NewReader(renderDocument(t, core.RenderSSR, false)))
	if !errors.Is(err, ErrOutline) {
		t.Fatalf("Expected ErrOutline, got %v", err)
	}
	if !strings.Contains(err.Error(), "exactly once") {
		t.Errorf("Expected page count mismatch in %q", err.Error())
	}
}

func TestParseNoApp(t *testing.T) {
	_, err := Parse(strings.NewReader("<!doctype html><html><body><main></main></body></html>"))
	if !errors.Is(err, ErrNoApp) {
		t.Errorf("Expected ErrNoApp, got %v", err)
	}
}

func TestVerifyReportsEveryMismatch(t *testing.T) {
	o := &Outline{
		Ready:         true,
		PageCount:     1,
		Sections:      []string{sections.IDHero},
		HeroTitle:     "Other",
		FeatureTitles: []string{"Smart Scheduling"},
	}

	err := Verify(o)
	if !errors.Is(err, ErrOutline) {
		t.Fatalf("Expected ErrOutline, got %v", err)
	}

	for _, want := range []string{"sections", "hero title", "feature titles", "timeline steps", "authors"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %q in error %q", want, err.Error())
		}
	}
}
