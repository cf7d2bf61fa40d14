package assets

import (
	"regexp"
	"strings"
	"testing"
)

var (
	cssCommentRE = regexp.MustCompile(`(?s)/\*.*?\*/`)
	cssRuleRE    = regexp.MustCompile(`([^{}]+)\{([^{}]*)\}`)
)

type cssRule struct {
	selectors []string
	body      string
}

func stylesheetRules(t *testing.T) []cssRule {
	t.Helper()

	data, err := Embedded().ReadFile(StylesName)
	if err != nil {
		t.Fatalf("failed to read %s: %v", StylesName, err)
	}
	css := cssCommentRE.ReplaceAllString(string(data), "")

	var rules []cssRule
	for _, m := range cssRuleRE.FindAllStringSubmatch(css, -1) {
		var selectors []string
		for _, sel := range strings.Split(m[1], ",") {
			selectors = append(selectors, strings.TrimSpace(sel))
		}
		rules = append(rules, cssRule{selectors: selectors, body: m[2]})
	}
	return rules
}

func findRule(rules []cssRule, selector string) (cssRule, bool) {
	for _, r := range rules {
		for _, sel := range r.selectors {
			if sel == selector {
				return r, true
			}
		}
	}
	return cssRule{}, false
}

func TestStylesheetGatesMotionTransition(t *testing.T) {
	rules := stylesheetRules(t)

	found := false
	for _, r := range rules {
		if !strings.Contains(r.body, "transition") {
			continue
		}
		for _, sel := range r.selectors {
			if !strings.HasPrefix(sel, "[data-motion]") {
				continue
			}
			found = true
			if !strings.Contains(sel, ".motion-active") {
				t.Errorf("Expected transition on %q to require .motion-active", sel)
			}
		}
	}
	if !found {
		t.Fatal("Expected a transition rule for [data-motion].motion-active")
	}

	active, ok := findRule(rules, "[data-motion].motion-active")
	if !ok {
		t.Fatal("Expected a [data-motion].motion-active rule")
	}
	for _, want := range []string{"var(--motion-duration", "var(--motion-delay"} {
		if !strings.Contains(active.body, want) {
			t.Errorf("Expected %q in the active transition, got %s", want, active.body)
		}
	}
}

func TestRuntimeActivatesAfterInitialFrame(t *testing.T) {
	data, err := Embedded().ReadFile(ScriptName)
	if err != nil {
		t.Fatalf("failed to read %s: %v", ScriptName, err)
	}
	js := string(data)

	initial := strings.Index(js, `applyFrame(el, initial);`)
	activate := strings.Index(js, `classList.add("motion-active")`)
	if initial < 0 || activate < 0 {
		t.Fatalf("Expected the runtime to apply the initial frame and add motion-active")
	}
	if activate < initial {
		t.Error("Expected motion-active to be added after the initial frame is applied")
	}
	if !strings.Contains(js, `classList.toggle("motion-active", entry.isIntersecting)`) {
		t.Error("Expected in-view nodes to drop motion-active when they leave the viewport")
	}
}

func TestStylesheetBindsGestureScales(t *testing.T) {
	rules := stylesheetRules(t)

	tests := []struct {
		selector string
		want     string
	}{
		{"[data-motion-gesture]", "scale(var(--motion-rest-scale, 1))"},
		{"[data-motion-gesture]:hover", "scale(var(--motion-hover-scale, 1))"},
		{"[data-motion-gesture]:active", "scale(var(--motion-tap-scale, 1))"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			r, ok := findRule(rules, tt.selector)
			if !ok {
				t.Fatalf("Expected a %s rule", tt.selector)
			}
			if !strings.Contains(r.body, tt.want) {
				t.Errorf("Expected %q in %s, got %s", tt.want, tt.selector, r.body)
			}
		})
	}
}
