package tui

import (
	"fmt"
	"strings"
	"time"

	"reelist-cli/internal/mutate"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, tea.Quit
		}
		m.db = msg.db
		m.view = viewList
		m.refreshMovies()
		m.captureStoreModTimes()
		// Best-effort: restore last TUI screen/selection for this workspace.
		if st, err := m.store.LoadTUIState(); err == nil {
			m.applySavedTUIState(st)
		}
		return m, nil

	case savedMsg:
		m.saving = false
		m.captureStoreModTimes()
		if msg.err != nil {
			m.showMinibuffer("Save failed: " + msg.err.Error())
		}
		if m.savePending {
			cmd := m.startSave()
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if m.view != viewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case externalEditorDoneMsg:
		m.applyExternalEditorResult(msg)
		// Keep the comment focused after returning from the editor.
		if m.view == viewDetail {
			m.detailFocus = detailFocusComment
			m.textarea.Focus()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		// Don't show the resize overlay on startup; only after we've seen an initial size.
		if !m.seenWindowSize {
			m.seenWindowSize = true
			m.resizing = false
			return m, nil
		}
		m.resizing = true
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg { return resizeDoneMsg{seq: seq} })

	case resizeDoneMsg:
		// Debounce: only clear if this corresponds to the latest resize seq.
		if msg.seq == m.resizeSeq {
			m.resizing = false
		}
		return m, nil

	case reloadTickMsg:
		if strings.TrimSpace(m.minibufferText) != "" && time.Since(m.minibufferSetAt) > minibufferAutoClearAfter {
			m.minibufferText = ""
		}
		// Skip disk reloads while a modal is open or a save is in flight; a
		// reload could drop the row a modal is about or resurrect pre-save state.
		if m.view != viewLoading && m.modal == modalNone && !m.saving && m.storeChanged() {
			_ = m.reloadFromDisk()
		}
		return m, tickReload()

	case tea.KeyMsg:
		if m.view == viewLoading {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			return m, nil
		}
		// If a modal is open, route all keys to the modal handler so text inputs
		// behave normally (e.g. backspace edits).
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		if m.view == viewDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// When filtering, capture all keystrokes for the filter input. This
	// prevents bindings like "a" (add) from triggering while typing.
	if m.moviesList.SettingFilter() {
		if msg.String() == "ctrl+c" {
			return m, m.quitWithStateCmd()
		}
		var cmd tea.Cmd
		m.moviesList, cmd = m.moviesList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, m.quitWithStateCmd()

	case "enter":
		if it, ok := m.moviesList.SelectedItem().(movieRowItem); ok {
			m.openDetail(it.movie.ID)
		}
		return m, nil

	case "a":
		m.openAddMovieModal()
		return m, nil

	case "d":
		if it, ok := m.moviesList.SelectedItem().(movieRowItem); ok {
			m.modal = modalConfirmDelete
			m.modalForID = it.movie.ID
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil

	case "s":
		res := mutate.SortByRating(m.db)
		m.refreshMovies()
		if res.Changed {
			m.showMinibuffer("Sorted by rating")
		} else {
			m.showMinibuffer("Already sorted")
		}
		_ = m.store.AppendEvent("list.sort", "", res.EventPayload)
		cmd := m.startSave()
		return m, cmd

	case "R":
		res := mutate.ResetMovies(m.db)
		m.refreshMovies()
		m.showMinibuffer(fmt.Sprintf("Reset to the %d default movies", len(res.Movies)))
		_ = m.store.AppendEvent("list.reset", "", res.EventPayload)
		cmd := m.startSave()
		return m, cmd

	case "r":
		// Reload from disk (so running CLI commands in another terminal is reflected).
		if err := m.reloadFromDisk(); err != nil {
			m.showMinibuffer("Reload failed: " + err.Error())
		}
		return m, nil

	case "y":
		if it, ok := m.moviesList.SelectedItem().(movieRowItem); ok {
			id := it.movie.ID
			if err := copyToClipboard(id); err != nil {
				m.showMinibuffer("Clipboard error: " + err.Error())
			} else {
				m.showMinibuffer("Copied: " + id)
			}
		}
		return m, nil
	}

	// Let the list handle navigation keys.
	var cmd tea.Cmd
	m.moviesList, cmd = m.moviesList.Update(msg)
	return m, cmd
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalAddMovie:
		return m.updateAddMovieModal(msg)
	case modalConfirmDelete:
		return m.updateConfirmDeleteModal(msg)
	}
	return m, nil
}

func (m appModel) updateConfirmDeleteModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, m.quitWithStateCmd()

	case "esc":
		m.closeAllModals()
		return m, nil

	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil

	case "enter":
		confirmed := m.confirmFocus == confirmFocusConfirm
		id := m.modalForID
		m.closeAllModals()
		if !confirmed {
			return m, nil
		}
		res, err := mutate.DeleteMovie(m.db, id)
		if err != nil || !res.Changed {
			// The movie can vanish while the modal is open; nothing to delete.
			return m, nil
		}
		m.refreshMovies()
		m.showMinibuffer("Deleted: " + res.Movie.Title)
		_ = m.store.AppendEvent("movie.delete", id, res.EventPayload)
		cmd := m.startSave()
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, m.quitWithStateCmd()

	case "esc":
		// Leave without saving; edits to rating and comment are discarded.
		m.closeDetail()
		return m, nil

	case "tab", "shift+tab":
		if m.detailFocus == detailFocusRating {
			m.detailFocus = detailFocusComment
			m.textarea.Focus()
		} else {
			m.detailFocus = detailFocusRating
			m.textarea.Blur()
		}
		return m, nil

	case "ctrl+s":
		return m.saveDetail()

	case "ctrl+e":
		cmd, err := m.openExternalEditorForTextarea()
		if err != nil {
			m.showMinibuffer("Editor error: " + err.Error())
			return m, nil
		}
		return m, cmd
	}

	if m.detailFocus == detailFocusRating {
		switch msg.String() {
		case "q":
			return m, m.quitWithStateCmd()
		case "left", "h":
			m.detailPicker.decr()
		case "right", "l":
			m.detailPicker.incr()
		case "y":
			if err := copyToClipboard(m.detailID); err != nil {
				m.showMinibuffer("Clipboard error: " + err.Error())
			} else {
				m.showMinibuffer("Copied: " + m.detailID)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m appModel) saveDetail() (tea.Model, tea.Cmd) {
	id := m.detailID
	res, err := mutate.EditMovie(m.db, id, m.detailPicker.value, m.textarea.Value())
	if err != nil {
		m.showMinibuffer("Save failed: " + err.Error())
		return m, nil
	}
	m.closeDetail()
	m.refreshMovies()
	if !res.Changed {
		// The movie vanished from under the edit; the edit is dropped.
		return m, nil
	}
	m.showMinibuffer("Saved: " + res.Movie.Title)
	_ = m.store.AppendEvent("movie.edit", id, res.EventPayload)
	cmd := m.startSave()
	return m, cmd
}
