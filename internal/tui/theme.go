package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"reelist-cli/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Common semantic colors used across the TUI.
var (
	colorMuted = ac("240", "243") // dark-ish gray on light; soft gray on dark

	// Used for headings and other secondary chrome.
	colorChromeMutedFg = ac("240", "245")

	// Selection highlight for list rows and modal buttons.
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")

	colorSurfaceBg = ac("255", "235")
	colorSurfaceFg = ac("235", "252")

	// Slightly elevated surface for controls/inputs so they remain visible on light terminals.
	colorControlBg = ac("252", "235")
	colorInputBg   = ac("254", "234")

	colorAccent = ac("27", "62") // blue
	// Foreground for text rendered on top of colorAccent backgrounds (e.g. input cursor).
	colorAccentFg = ac("255", "235")

	// Star ratings read as "gold" on both backgrounds.
	colorStarFg = ac("136", "178")

	// Inline validation errors (e.g. an empty title in the add modal).
	colorErrorFg = ac("160", "203")

	// Modal colors track the surface.
	colorModalSurfaceBg = colorSurfaceBg
	colorModalSurfaceFg = colorSurfaceFg
	colorModalHeaderBg  = colorControlBg
	colorModalHeaderFg  = colorSurfaceFg
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful for
// non-interactive CLI output but can accidentally disable colors in a TUI. For the TUI,
// we only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	// Start from termenv's best guess.
	profile := termenv.ColorProfile()

	// Heuristics:
	// - If TERM/COLORTERM indicate stronger support than the detector reports, trust
	//   the env. This helps terminals like macOS Terminal.app where color probing
	//   can under-report (leading to degraded "gray" colors).
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		} else if profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Some terminals don't reliably report their background, which can cause
// lipgloss.AdaptiveColor to pick the wrong variant (e.g. dark palette on a light theme).
//
// Priority:
// 1) REELIST_TUI_THEME=light|dark|auto
// 2) the tui.theme key of the global config
// 3) REELIST_TUI_DARKBG=true|false
// 4) COLORFGBG heuristic (common in terminals; format like "15;0" = fg;bg)
func applyThemePreference() {
	v := strings.TrimSpace(os.Getenv("REELIST_TUI_THEME"))
	if v == "" {
		if cfg, err := store.LoadConfig(); err == nil && cfg != nil && cfg.TUI != nil {
			v = strings.TrimSpace(cfg.TUI.Theme)
		}
	}
	if v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		case "auto":
			// fallthrough to heuristics/default
		default:
			// Unknown value: ignore.
		}
	}

	if v := strings.TrimSpace(os.Getenv("REELIST_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	// Heuristic: COLORFGBG is often "fg;bg" (sometimes more segments). Use last segment as bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			// Treat "lighter" backgrounds as non-dark. This is heuristic, but better than
			// consistently choosing the wrong palette.
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}

	// macOS Terminal.app often doesn't set COLORFGBG, and background probing can be unreliable.
	// As a fallback, use the OS appearance (Light vs Dark) when available.
	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
			return
		}
	}
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and returns exit status 1
	// in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
