package types

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Max <= cfg.Min {
		t.Errorf("default range (%v, %v) is empty", cfg.Min, cfg.Max)
	}
	if !ValidLabel(cfg.Label) {
		t.Errorf("default label %q is not valid", cfg.Label)
	}
	if cfg.TextWidth <= 0 || cfg.GraphicWidth <= 0 || cfg.GraphicHeight <= 0 {
		t.Errorf("default sizes must be positive: %+v", cfg)
	}
	if cfg.Interval != 0 {
		t.Errorf("Interval = %v, want 0 (stream stdin)", cfg.Interval)
	}
}

func TestValidLabel(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"left", true},
		{"right", true},
		{"none", true},
		{"", false},
		{"LEFT", false},
		{"center", false},
	}
	for _, tt := range tests {
		if got := ValidLabel(tt.in); got != tt.want {
			t.Errorf("ValidLabel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
