package tui

import "github.com/charmbracelet/lipgloss"

const maxModalWidth = 76

// modalOuterWidth bounds modal boxes so they stay readable on wide terminals
// while still fitting narrow ones.
func modalOuterWidth(width int) int {
	w := width - 6
	if w > maxModalWidth {
		w = maxModalWidth
	}
	if w < 30 {
		w = 30
	}
	return w
}

// modalBodyWidth is the width available to modal content, accounting for the
// box's horizontal padding.
func modalBodyWidth(width int) int {
	return modalOuterWidth(width) - 4
}

// renderModalBox renders a titled, surface-colored box. Callers place the
// result with lipgloss.Place; the box itself carries no margins.
func renderModalBox(width int, title string, content string) string {
	outerW := modalOuterWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Width(outerW).
		Padding(0, 2).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(colorModalSurfaceFg).
		Background(colorModalSurfaceBg).
		Width(outerW).
		Padding(1, 2).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
