package tui

import (
	"strings"

	"reelist-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type movieRowItem struct {
	movie model.Movie
}

func (i movieRowItem) FilterValue() string { return i.movie.Title }

func (i movieRowItem) Title() string {
	title := strings.TrimSpace(i.movie.Title)
	if title == "" {
		title = "(untitled)"
	}
	marker := ""
	if i.movie.Comment != nil {
		marker = "  " + glyphBullet()
	}
	return starGlyphs(i.movie.Rating) + "  " + title + marker
}

func (i movieRowItem) Description() string { return i.movie.ID }

func newMovieList(items []list.Item) list.Model {
	l := list.New(items, newMovieRowDelegate(), 0, 0)
	// We render our own global header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("movie", "movies")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Add Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func selectListItemByID(l *list.Model, id string) {
	for i := 0; i < len(l.Items()); i++ {
		if it, ok := l.Items()[i].(movieRowItem); ok && it.movie.ID == id {
			l.Select(i)
			return
		}
	}
}
