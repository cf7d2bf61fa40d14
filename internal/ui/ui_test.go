package ui

import (
	"bytes"
	"testing"

	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestButton(t *testing.T) {
	tests := []struct {
		name string
		opts ButtonOptions
		want string
	}{
		{
			name: "defaults",
			opts: ButtonOptions{},
			want: `<button type="button" class="btn btn-default btn-size-default">Go</button>`,
		},
		{
			name: "secondary large",
			opts: ButtonOptions{Variant: VariantSecondary, Size: SizeLarge},
			want: `<button type="button" class="btn btn-secondary btn-size-lg">Go</button>`,
		},
		{
			name: "extra class",
			opts: ButtonOptions{Size: SizeSmall, Class: " bg-primary "},
			want: `<button type="button" class="btn btn-default btn-size-sm bg-primary">Go</button>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, Button(tt.opts, g.Text("Go"))); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCard(t *testing.T) {
	got := render(t, Card("h-full",
		CardHeader("",
			CardTitle("Title"),
			CardDescription("Body"),
		),
		CardContent("pt-6"),
	))

	want := `<div class="card h-full"><div class="card-header"><h3 class="card-title">Title</h3><p class="card-description">Body</p></div><div class="card-content pt-6"></div></div>`
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
