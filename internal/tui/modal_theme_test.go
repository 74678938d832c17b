package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRenderModalBox_UsesLightBackground_WhenThemeForcedLight(t *testing.T) {
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
	})

	t.Setenv("REELIST_CONFIG_DIR", t.TempDir())
	t.Setenv("REELIST_TUI_THEME", "light")
	t.Setenv("REELIST_TUI_DARKBG", "")

	applyThemePreference()
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected HasDarkBackground=false after forcing light theme")
	}

	out := renderModalBox(80, "Title", "Body")

	// With a forced light theme, we expect the light background variant to be used.
	// colorSurfaceBg is ac("255","235") so the light bg should appear in the ANSI output.
	if !strings.Contains(out, "48;5;255") {
		t.Fatalf("expected modal to include light background (48;5;255); got: %q", out)
	}
}

func TestModalWidths_Bounded(t *testing.T) {
	t.Parallel()

	if got := modalOuterWidth(200); got != maxModalWidth {
		t.Fatalf("expected wide terminals to cap at %d; got %d", maxModalWidth, got)
	}
	if got := modalOuterWidth(20); got != 30 {
		t.Fatalf("expected narrow terminals to floor at 30; got %d", got)
	}
	if got := modalBodyWidth(200); got != maxModalWidth-4 {
		t.Fatalf("expected body width to subtract padding; got %d", got)
	}
}
