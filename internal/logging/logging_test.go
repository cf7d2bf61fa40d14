package logging

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"json info", "info", "json", false},
		{"console debug", "debug", "console", false},
		{"default format", "warn", "", false},
		{"bad level", "loud", "json", true},
		{"bad format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for level=%q format=%q", tt.level, tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if logger == nil {
				t.Fatal("Expected logger, got nil")
			}
			_ = logger.Sync()
		})
	}
}

func TestNewLevel(t *testing.T) {
	logger, err := New("warn", "json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Error("Expected debug to be disabled at warn level")
	}
	if !logger.Core().Enabled(1) {
		t.Error("Expected warn to be enabled at warn level")
	}
}
