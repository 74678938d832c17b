package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderConfirmModal draws the delete confirmation: the question, a
// tab-focusable button pair, and the key help. No borders; nested bordered
// components over a modal background leave artifacts in some terminals.
func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	confirm := confirmButton(confirmLabel, focus == confirmFocusConfirm)
	cancel := confirmButton(cancelLabel, focus == confirmFocusCancel)
	gap := lipgloss.NewStyle().Background(colorControlBg).Render(" ")

	help := styleMuted().
		Width(modalBodyWidth(width)).
		Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{
		body,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, confirm, gap, cancel),
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}

func confirmButton(label string, active bool) string {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if active {
		st = st.
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
	}
	return st.Render(label)
}
