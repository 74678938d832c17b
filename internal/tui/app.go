package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"reelist-cli/internal/model"
	"reelist-cli/internal/rating"
	"reelist-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appModel struct {
	dir       string
	workspace string
	store     store.Store
	db        *store.DB

	width  int
	height int

	// We treat the very first WindowSizeMsg as "initial sizing" rather than a
	// user-driven resize. Otherwise we briefly render the full-height
	// "Resizing…" overlay on startup.
	seenWindowSize bool
	resizing       bool
	resizeSeq      int

	view    view
	loadErr error

	moviesList list.Model
	spinner    spinner.Model

	modal modalKind
	// modalForID pins the confirm-delete modal to one movie, so a disk reload
	// that reorders the list cannot retarget the deletion.
	modalForID string

	// Add-movie modal state.
	titleInput textinput.Model
	descInput  textinput.Model
	addPicker  starPicker
	addFocus   addModalFocus
	addErr     string

	confirmFocus confirmModalFocus

	// Detail screen state.
	detailID     string
	detailPicker starPicker
	textarea     textarea.Model
	detailFocus  detailPaneFocus

	// externalEditorPath is the temp file used when opening the current textarea
	// content in $VISUAL/$EDITOR.
	externalEditorPath   string
	externalEditorBefore string

	// Saves run through a queue of one: at most one Save in flight, at most
	// one more queued behind it.
	saving      bool
	savePending bool

	minibufferText  string
	minibufferSetAt time.Time

	lastDBModTime  time.Time
	lastWALModTime time.Time
}

func newAppModel(dir, workspace string) appModel {
	s := store.Store{Dir: dir}
	m := appModel{
		dir:       dir,
		workspace: strings.TrimSpace(workspace),
		store:     s,
		view:      viewLoading,
	}

	m.moviesList = newMovieList([]list.Item{})

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = lipgloss.NewStyle().Foreground(colorAccent)

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "Title"
	m.titleInput.CharLimit = 200
	m.titleInput.Width = 40

	m.descInput = textinput.New()
	m.descInput.Placeholder = "Description (optional)"
	m.descInput.CharLimit = 400
	m.descInput.Width = 40

	m.addPicker = newStarPicker(rating.Default)
	m.detailPicker = newStarPicker(rating.Default)

	m.textarea = textarea.New()
	m.textarea.Placeholder = "Write…"
	m.textarea.CharLimit = 0
	m.textarea.SetWidth(72)
	m.textarea.SetHeight(10)
	m.textarea.ShowLineNumbers = false

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick, tickReload())
}

func (m appModel) loadCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		db, err := s.Load()
		return loadedMsg{db: db, err: err}
	}
}

// startSave begins an async Save of the current list. The command snapshots
// the list so Update can keep mutating m.db while the write runs; a mutation
// that lands mid-flight sets savePending and the savedMsg handler starts the
// next round.
func (m *appModel) startSave() tea.Cmd {
	if m.db == nil {
		return nil
	}
	if m.saving {
		m.savePending = true
		return nil
	}
	m.saving = true
	m.savePending = false
	s := m.store
	snapshot := &store.DB{
		Version: m.db.Version,
		Movies:  append([]model.Movie(nil), m.db.Movies...),
	}
	return func() tea.Msg {
		return savedMsg{err: s.Save(snapshot)}
	}
}

func (m appModel) View() string {
	if m.view == viewLoading {
		return m.viewLoadingScreen()
	}
	if m.db == nil {
		return ""
	}
	if m.resizing && m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styleMuted().Render("Resizing…"))
	}
	if m.modal != modalNone {
		return m.viewModal()
	}
	if m.view == viewDetail {
		return m.viewDetailScreen()
	}
	return m.viewListScreen()
}

func (m appModel) viewLoadingScreen() string {
	title := lipgloss.NewStyle().Bold(true).Render("Reelist")
	hint := styleMuted().Render("Loading movies…")
	return "\n  " + m.spinner.View() + " " + title + "\n\n  " + hint + "\n"
}

func (m appModel) viewListScreen() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Render(fmt.Sprintf("Reelist  Dir=%s  Workspace=%s  %d movies",
			m.dir,
			emptyAsDash(m.workspace),
			len(m.db.Movies),
		))

	body := m.moviesList.View()

	bottom := styleMuted().Render("enter: open  a: add  d: delete  s: sort  R: reset  r: reload  y: yank id  q: quit")
	if strings.TrimSpace(m.minibufferText) != "" {
		bottom += "\n" + m.minibufferText
	}
	return strings.Join([]string{header, body, bottom}, "\n\n")
}

func (m appModel) viewModal() string {
	var box string
	switch m.modal {
	case modalAddMovie:
		box = m.renderAddMovieModal()
	case modalConfirmDelete:
		box = m.renderConfirmDeleteModal()
	default:
		return m.viewListScreen()
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m appModel) renderConfirmDeleteModal() string {
	title := "(untitled)"
	if mv, ok := m.db.FindMovie(m.modalForID); ok && strings.TrimSpace(mv.Title) != "" {
		title = mv.Title
	}
	body := fmt.Sprintf("Delete %q from the list?", title)
	return renderConfirmModal(m.width, "Delete movie", body, "Delete", "Cancel", m.confirmFocus)
}

func (m *appModel) resizeLists() {
	// Leave room for header/footer.
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.moviesList.SetSize(w, h)

	m.textarea.SetWidth(contentWidth(m.width))
	taH := m.height - 20
	if taH < 6 {
		taH = 6
	}
	if taH > 12 {
		taH = 12
	}
	m.textarea.SetHeight(taH)
}

func emptyAsDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func (m *appModel) refreshMovies() {
	curID := ""
	if it, ok := m.moviesList.SelectedItem().(movieRowItem); ok {
		curID = it.movie.ID
	}
	items := make([]list.Item, 0, len(m.db.Movies))
	for _, mv := range m.db.Movies {
		items = append(items, movieRowItem{movie: mv})
	}
	m.moviesList.SetItems(items)
	if curID != "" {
		selectListItemByID(&m.moviesList, curID)
	}
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = strings.TrimSpace(text)
	m.minibufferSetAt = time.Now()
}

func (m *appModel) openDetail(id string) {
	mv, ok := m.db.FindMovie(id)
	if !ok {
		return
	}
	m.view = viewDetail
	m.detailID = mv.ID
	m.detailPicker = newStarPicker(mv.Rating)
	body := ""
	if mv.Comment != nil {
		body = *mv.Comment
	}
	m.textarea.SetValue(body)
	m.textarea.Blur()
	m.detailFocus = detailFocusRating
}

func (m *appModel) closeDetail() {
	id := m.detailID
	m.view = viewList
	m.detailID = ""
	m.textarea.SetValue("")
	m.textarea.Blur()
	m.detailFocus = detailFocusRating
	if id != "" {
		selectListItemByID(&m.moviesList, id)
	}
}

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

// The sqlite db runs in WAL mode, so a write from another process usually
// lands in the -wal file before the main db file changes. Watch both.
func (m *appModel) captureStoreModTimes() {
	m.lastDBModTime = fileModTime(filepath.Join(m.dir, "reelist.sqlite"))
	m.lastWALModTime = fileModTime(filepath.Join(m.dir, "reelist.sqlite-wal"))
}

func (m *appModel) storeChanged() bool {
	dbMT := fileModTime(filepath.Join(m.dir, "reelist.sqlite"))
	walMT := fileModTime(filepath.Join(m.dir, "reelist.sqlite-wal"))
	return dbMT.After(m.lastDBModTime) || walMT.After(m.lastWALModTime)
}

func fileModTime(path string) time.Time {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}

func (m *appModel) reloadFromDisk() error {
	db, err := m.store.Load()
	if err != nil {
		return err
	}
	m.db = db
	m.captureStoreModTimes()
	m.refreshMovies()
	if m.view == viewDetail {
		if _, ok := db.FindMovie(m.detailID); !ok {
			// The open movie is gone; fall back to the list.
			m.closeDetail()
		}
	}
	return nil
}

// applySavedTUIState restores the last screen/selection for this workspace.
// Best effort: ids that no longer exist leave the model on the list.
func (m *appModel) applySavedTUIState(st *store.TUIState) {
	if st == nil {
		return
	}
	id := strings.TrimSpace(st.SelectedMovieID)
	if id == "" {
		return
	}
	selectListItemByID(&m.moviesList, id)
	if st.View == "detail" {
		m.openDetail(id)
	}
}

func (m appModel) currentTUIState() *store.TUIState {
	st := &store.TUIState{Version: 1, View: "list"}
	if m.view == viewDetail {
		st.View = "detail"
		st.SelectedMovieID = m.detailID
		return st
	}
	if it, ok := m.moviesList.SelectedItem().(movieRowItem); ok {
		st.SelectedMovieID = it.movie.ID
	}
	return st
}

func (m appModel) quitWithStateCmd() tea.Cmd {
	_ = m.store.SaveTUIState(m.currentTUIState())
	return tea.Quit
}
