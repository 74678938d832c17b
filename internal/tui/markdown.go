package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Renderer construction is the expensive part of glamour, and WithAutoStyle
// probes the terminal, which can block under some multiplexers. Descriptions
// re-render on every frame, so renderers are cached per style+width and built
// with a fixed style resolved from the theme preference instead.
var (
	mdCacheMu sync.Mutex
	mdCache   = map[string]*glamour.TermRenderer{}
)

func cachedMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := style + ":" + strconv.Itoa(width)

	mdCacheMu.Lock()
	r := mdCache[key]
	mdCacheMu.Unlock()
	if r != nil {
		return r, nil
	}

	rr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	mdCacheMu.Lock()
	// A concurrent frame may have built the same renderer; keep the first.
	if existing := mdCache[key]; existing != nil {
		rr = existing
	} else {
		mdCache[key] = rr
	}
	mdCacheMu.Unlock()
	return rr, nil
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	r, err := cachedMarkdownRenderer(markdownStyle(), width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return trimVisuallyEmptyTail(out)
}

// trimVisuallyEmptyTail drops trailing lines that contain only whitespace and
// ANSI styling. Glamour pads block output with styled blank lines; those eat
// rows of the detail pane without showing anything.
func trimVisuallyEmptyTail(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	end := len(lines)
	for end > 0 && strings.TrimSpace(stripANSIEscapes(lines[end-1])) == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}

func markdownStyle() string {
	// Explicit override for debugging / accessibility.
	switch strings.ToLower(strings.TrimSpace(os.Getenv("REELIST_TUI_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// Keep markdown styling aligned with the TUI theme preference. Without this,
	// markdown can render with a dark palette even when the TUI is forced to
	// light mode, making description text unreadable on light terminals.
	switch strings.ToLower(strings.TrimSpace(os.Getenv("REELIST_TUI_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	case "auto":
		// fallthrough
	}
	if v := strings.TrimSpace(os.Getenv("REELIST_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			if b {
				return "dark"
			}
			return "light"
		}
	}
	// Heuristic: COLORFGBG is often "fg;bg" (e.g. "15;0" => dark bg).
	// Prefer this over term queries to avoid blocking.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgS := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgS); err == nil {
			// Common xterm palette: 0-6 dark colors, 7-15 light colors.
			if bg >= 7 {
				return "light"
			}
			if bg >= 0 {
				return "dark"
			}
		}
	}
	// Final fallback: align markdown with Lip Gloss's current background detection so
	// description text doesn't end up using a dark palette on light terminals (or vice versa).
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
