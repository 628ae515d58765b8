package ui

import (
	"strings"
	"testing"

	"daybook/internal/config"
)

func TestNewStylesFromTheme_Defaults(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{})

	if s.ColorPrimary != "#7C3AED" {
		t.Errorf("primary = %s, want default", s.ColorPrimary)
	}
	if s.ColorMuted != "#6B7280" {
		t.Errorf("muted = %s, want default", s.ColorMuted)
	}
}

func TestNewStylesFromTheme_Overrides(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{
		Primary: "#FF0000",
		Muted:   "#00FF00",
	})

	if s.ColorPrimary != "#FF0000" {
		t.Errorf("primary = %s, want override", s.ColorPrimary)
	}
	if s.ColorMuted != "#00FF00" {
		t.Errorf("muted = %s, want override", s.ColorMuted)
	}
}

func TestRenderHelp(t *testing.T) {
	setupTest(t)
	s := createTestStyles()

	out := s.RenderHelp("a", "add", "q", "quit")
	for _, want := range []string{"[a]", "add", "[q]", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q: %s", want, out)
		}
	}
}
