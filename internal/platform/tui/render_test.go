package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZomoXYZ/dreambox-snake/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, '@', core.ColorBrightGreen)
	s.SetColored(4, 0, 'o', core.ColorGreen)
	s.SetColored(0, 1, '*', core.ColorBrightRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d printed width = %d, want 6", i, w)
		}
	}
	for _, r := range []string{"ab", "@", "o", "*"} {
		if !strings.Contains(out, r) {
			t.Errorf("RenderScreen() is missing %q", r)
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(1, 0, 'x', core.Color(200))

	if out := RenderScreen(s); !strings.Contains(out, "x") {
		t.Errorf("RenderScreen() = %q, want the rune drawn with the default style", out)
	}
}
