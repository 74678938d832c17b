package tui

import (
	"strings"

	"reelist-cli/internal/rating"

	"github.com/charmbracelet/lipgloss"
)

// starPicker is a tiny left/right control over the half-step rating scale.
// It never goes below the picker floor; unrated (0.0) entries enter editing
// at the floor rather than at zero.
type starPicker struct {
	value float64
}

func newStarPicker(v float64) starPicker {
	if v < rating.PickerMin {
		v = rating.PickerMin
	}
	return starPicker{value: rating.Snap(v)}
}

func (p *starPicker) incr() { p.value = rating.Incr(p.value) }
func (p *starPicker) decr() { p.value = rating.Decr(p.value) }

func (p starPicker) view(focused bool) string {
	stars := starGlyphs(p.value)
	label := stars + "  " + rating.Format(p.value)
	st := lipgloss.NewStyle().Foreground(colorStarFg)
	if focused {
		arrows := "‹ ›"
		if glyphs() == glyphSetASCII {
			arrows = "< >"
		}
		return st.Bold(true).Render(label) + "  " + styleMuted().Render(arrows)
	}
	return st.Render(label)
}

// starGlyphs renders a five-slot star strip for v: full stars, an optional
// half marker, and empty-star padding.
func starGlyphs(v float64) string {
	full, half := rating.Split(v)
	var b strings.Builder
	for i := 0; i < full; i++ {
		b.WriteString(glyphStarFull())
	}
	if half {
		b.WriteString(glyphStarHalf())
	}
	slots := full
	if half {
		slots++
	}
	for i := slots; i < 5; i++ {
		b.WriteString(glyphStarEmpty())
	}
	return b.String()
}
