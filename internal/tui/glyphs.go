package tui

import (
	"os"
	"strings"
	"sync"

	"reelist-cli/internal/store"
)

// Terminal apps can't change the user's actual font. Instead, we can choose
// between Unicode and ASCII glyph sets for UI affordances (stars, bullets,
// rules). This helps on terminals/fonts that don't render some glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference reads REELIST_TUI_GLYPHS, falling back to the tui
// section of the global config.
func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("REELIST_TUI_GLYPHS")))
	if v == "" {
		if cfg, err := store.LoadConfig(); err == nil && cfg != nil && cfg.TUI != nil {
			v = strings.ToLower(strings.TrimSpace(cfg.TUI.Glyphs))
		}
	}
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphStarFull() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "★"
}

func glyphStarHalf() string {
	if glyphs() == glyphSetASCII {
		return "+"
	}
	return "½"
}

func glyphStarEmpty() string {
	if glyphs() == glyphSetASCII {
		return "."
	}
	return "☆"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}
