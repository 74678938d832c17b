package tui

import (
	"time"

	"reelist-cli/internal/rating"
	"reelist-cli/internal/store"
)

type view int

const (
	viewLoading view = iota
	viewList
	viewDetail
)

type modalKind int

const (
	modalNone modalKind = iota
	modalAddMovie
	modalConfirmDelete
)

type addModalFocus int

const (
	addFocusTitle addModalFocus = iota
	addFocusDescription
	addFocusRating
)

type detailPaneFocus int

const (
	detailFocusRating detailPaneFocus = iota
	detailFocusComment
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

type loadedMsg struct {
	db  *store.DB
	err error
}

type savedMsg struct {
	err error
}

type reloadTickMsg struct{}

type resizeDoneMsg struct{ seq int }

const minibufferAutoClearAfter = 4 * time.Second

func (m *appModel) closeAllModals() {
	if m == nil {
		return
	}
	m.modal = modalNone
	m.modalForID = ""
	m.addErr = ""
	m.addFocus = addFocusTitle
	m.confirmFocus = confirmFocusConfirm

	// Reset inputs (safe even if not currently used).
	m.titleInput.SetValue("")
	m.titleInput.Blur()
	m.descInput.SetValue("")
	m.descInput.Blur()
	m.addPicker = newStarPicker(rating.Default)
}
