package tui

import (
	"errors"
	"strings"

	"reelist-cli/internal/mutate"
	"reelist-cli/internal/rating"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *appModel) openAddMovieModal() {
	m.closeAllModals()
	m.modal = modalAddMovie
	m.addFocus = addFocusTitle
	m.addPicker = newStarPicker(rating.Default)
	m.titleInput.Focus()
}

func (m *appModel) cycleAddFocus(backwards bool) {
	order := []addModalFocus{addFocusTitle, addFocusDescription, addFocusRating}
	idx := 0
	for i, f := range order {
		if f == m.addFocus {
			idx = i
		}
	}
	if backwards {
		idx = (idx + len(order) - 1) % len(order)
	} else {
		idx = (idx + 1) % len(order)
	}
	m.addFocus = order[idx]

	m.titleInput.Blur()
	m.descInput.Blur()
	switch m.addFocus {
	case addFocusTitle:
		m.titleInput.Focus()
	case addFocusDescription:
		m.descInput.Focus()
	}
}

func (m appModel) updateAddMovieModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, m.quitWithStateCmd()

	case "esc":
		// Cancel creates nothing, no matter how much was typed.
		m.closeAllModals()
		return m, nil

	case "tab", "shift+tab":
		m.cycleAddFocus(msg.String() == "shift+tab")
		return m, nil

	case "enter":
		return m.submitAddMovie()
	}

	switch m.addFocus {
	case addFocusTitle:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	case addFocusDescription:
		var cmd tea.Cmd
		m.descInput, cmd = m.descInput.Update(msg)
		return m, cmd
	case addFocusRating:
		switch msg.String() {
		case "left", "h":
			m.addPicker.decr()
		case "right", "l":
			m.addPicker.incr()
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) submitAddMovie() (tea.Model, tea.Cmd) {
	res, err := mutate.AddMovie(m.db, m.titleInput.Value(), m.descInput.Value(), m.addPicker.value)
	if err != nil {
		if errors.Is(err, mutate.ErrEmptyTitle) {
			m.addErr = "Title must not be empty"
		} else {
			m.addErr = err.Error()
		}
		m.addFocus = addFocusTitle
		m.titleInput.Focus()
		m.descInput.Blur()
		return m, nil
	}

	id := res.Movie.ID
	title := res.Movie.Title
	m.closeAllModals()
	m.refreshMovies()
	selectListItemByID(&m.moviesList, id)
	m.showMinibuffer("Added: " + title)
	_ = m.store.AppendEvent("movie.add", id, res.EventPayload)
	cmd := m.startSave()
	return m, cmd
}

func (m appModel) renderAddMovieModal() string {
	bodyW := modalBodyWidth(m.width)

	var b strings.Builder
	b.WriteString(styleMuted().Render("Title") + "\n")
	b.WriteString(renderInputField(bodyW, m.titleInput.View()) + "\n\n")
	b.WriteString(styleMuted().Render("Description") + "\n")
	b.WriteString(renderInputField(bodyW, m.descInput.View()) + "\n\n")
	b.WriteString(styleMuted().Render("Rating") + "\n")
	b.WriteString(m.addPicker.view(m.addFocus == addFocusRating) + "\n")
	if strings.TrimSpace(m.addErr) != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(colorErrorFg).Render(m.addErr) + "\n")
	}
	b.WriteString("\n" + styleMuted().Render("tab: next field  left/right: stars  enter: add  esc: cancel"))

	return renderModalBox(m.width, "Add movie", b.String())
}
