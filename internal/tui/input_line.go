package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputField renders one line of the add-movie form (title or
// description) with the input background filled to the full field width.
// These fields never hold newlines themselves, but a pasted newline in the
// underlying textinput view would wrap the modal box, so the view is
// flattened first.
func renderInputField(width int, view string) string {
	if width < 10 {
		width = 10
	}
	view = strings.NewReplacer("\r", " ", "\n", " ").Replace(view)

	line := " " + view + " "
	w := xansi.StringWidth(line)
	switch {
	case w > width:
		// Clamp, and close whatever style the cut left open.
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	case w < width:
		fill := lipgloss.NewStyle().
			Background(colorInputBg).
			Render(strings.Repeat(" ", width-w))
		line += fill
	}
	return line
}
