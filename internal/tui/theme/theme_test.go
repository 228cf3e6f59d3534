package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{
			name:      "load mocha theme",
			themeName: "mocha",
			wantName:  "mocha",
		},
		{
			name:      "load latte theme",
			themeName: "latte",
			wantName:  "latte",
		},
		{
			name:      "empty name defaults to mocha",
			themeName: "",
			wantName:  "mocha",
		},
		{
			name:      "invalid theme falls back to mocha",
			themeName: "nonexistent",
			wantName:  "mocha",
		},
		{
			name:      "case insensitive",
			themeName: "Latte",
			wantName:  "latte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_ThemeColors(t *testing.T) {
	for _, name := range Available() {
		theme, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%s) unexpected error: %v", name, err)
		}

		colors := map[string]string{
			"Bg":          theme.Bg,
			"BgHighlight": theme.BgHighlight,
			"BgSelection": theme.BgSelection,
			"Fg":          theme.Fg,
			"FgMuted":     theme.FgMuted,
			"Accent":      theme.Accent,
			"Available":   theme.Available,
			"Preferred":   theme.Preferred,
			"Unavailable": theme.Unavailable,
			"Warning":     theme.Warning,
		}

		for field, hex := range colors {
			if len(hex) != 7 || hex[0] != '#' {
				t.Errorf("%s: theme.%s = %q, want 7-char hex string", name, field, hex)
			}
		}
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "mocha", expected: true},
		{name: "case insensitive", theme: "Mocha", expected: true},
		{name: "missing theme", theme: "unknown", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestNewPalette(t *testing.T) {
	th, err := Load("mocha")
	if err != nil {
		t.Fatal(err)
	}
	p := NewPalette(th)
	if string(p.Available) != th.Available {
		t.Errorf("palette.Available = %q, want %q", p.Available, th.Available)
	}
	if string(p.AvailableBg) == "" {
		t.Error("AvailableBg not derived")
	}
	if string(p.AvailableBg) == th.Available {
		t.Error("AvailableBg should be a muted shade, not the accent itself")
	}
}

func TestNewPalette_NilFallsBack(t *testing.T) {
	p := NewPalette(nil)
	if string(p.Bg) == "" {
		t.Error("nil theme should fall back to mocha")
	}
}
