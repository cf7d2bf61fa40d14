package motion

import (
	"bytes"
	"strings"
	"testing"
	"time"

	h "maragu.dev/gomponents/html"
)

func TestKeyframeEncode(t *testing.T) {
	tests := []struct {
		name string
		k    Keyframe
		want string
	}{
		{"empty", Keyframe{}, ""},
		{"fade", Fade(0), "opacity:0"},
		{"slide", Keyframe{Opacity: Value(0), X: Value(-50)}, "opacity:0;x:-50"},
		{"settled", Keyframe{Opacity: Value(1), X: Value(0), Y: Value(0)}, "opacity:1;x:0;y:0"},
		{"scale", Keyframe{Scale: Value(0.8)}, "scale:0.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.Encode(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStagger(t *testing.T) {
	step := 100 * time.Millisecond

	if Stagger(-1, step) != 0 {
		t.Error("Expected negative index to have no delay")
	}

	prev := time.Duration(-1)
	for i := 0; i < 5; i++ {
		d := Stagger(i, step)
		if d <= prev {
			t.Errorf("Expected delay %d (%s) to exceed %s", i, d, prev)
		}
		prev = d
	}
	if Stagger(4, step) != 400*time.Millisecond {
		t.Errorf("Expected 400ms, got %s", Stagger(4, step))
	}
}

func TestAnimationAttrs(t *testing.T) {
	a := InView(
		Keyframe{Opacity: Value(0), X: Value(-50)},
		Keyframe{Opacity: Value(1), X: Value(0)},
		Transition{Duration: 500 * time.Millisecond, Delay: 200 * time.Millisecond},
	)

	var buf bytes.Buffer
	if err := h.Div(a.Attrs()).Render(&buf); err != nil {
		t.Fatal(err)
	}

	want := `<div data-motion="in-view" data-motion-initial="opacity:0;x:-50" data-motion-animate="opacity:1;x:0" style="--motion-duration:0.5s;--motion-delay:0.2s"></div>`
	if buf.String() != want {
		t.Errorf("Expected %s, got %s", want, buf.String())
	}
}

func TestAnimationAttrsOmitsEmptyKeyframes(t *testing.T) {
	var buf bytes.Buffer
	if err := h.Div(Enter(Keyframe{}, Keyframe{}, Transition{}).Attrs()).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "data-motion-initial") || strings.Contains(buf.String(), "data-motion-animate") {
		t.Errorf("Expected no keyframe attributes, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `data-motion="enter"`) {
		t.Errorf("Expected enter trigger, got %s", buf.String())
	}
}
