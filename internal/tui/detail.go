package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxContentW = 96

func contentWidth(width int) int {
	w := width
	if w < 40 {
		w = 40
	}
	w -= 4
	if w > maxContentW {
		w = maxContentW
	}
	return w
}

func (m appModel) viewDetailScreen() string {
	mv, ok := m.db.FindMovie(m.detailID)
	if !ok {
		// reloadFromDisk drops back to the list when the open movie vanishes;
		// this can only show for a single frame in between.
		return styleMuted().Render("Movie no longer exists.")
	}

	contentW := contentWidth(m.width)

	head := lipgloss.NewStyle().Bold(true).Render(mv.Title) + "\n" +
		styleMuted().Render(mv.ID) + "\n" +
		styleMuted().Render(strings.Repeat(glyphHRule(), contentW))

	desc := styleMuted().Render("No description.")
	if mv.Description != nil {
		desc = renderMarkdown(*mv.Description, contentW)
		if maxH := m.detailDescHeight(); strings.Count(desc, "\n")+1 > maxH {
			desc = normalizePane(desc, contentW, maxH)
		}
	}

	ratingPane := styleMuted().Render("Rating") + "\n" + m.detailPicker.view(m.detailFocus == detailFocusRating)
	commentPane := styleMuted().Render("Comment") + "\n" + m.textarea.View()

	bottom := styleMuted().Render("tab: focus  left/right: stars  ctrl+e: edit in $EDITOR  ctrl+s: save  esc: back")
	if strings.TrimSpace(m.minibufferText) != "" {
		bottom += "\n" + m.minibufferText
	}

	return strings.Join([]string{head, desc, ratingPane, commentPane, bottom}, "\n\n")
}

func (m appModel) detailDescHeight() int {
	h := m.height - 22
	if h < 6 {
		h = 6
	}
	if h > 14 {
		h = 14
	}
	return h
}
