package noteview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noteboard/internal/board"
	"noteboard/internal/logs"
	"noteboard/internal/notes"
	"noteboard/internal/tui/messages"
	"noteboard/internal/tui/shared"
	"noteboard/internal/tui/theme"
)

const requiredFieldHint = "Title and body are required"

// Model is the note board view: the note list, inline search, the
// create/edit form and the delete confirmation.
type Model struct {
	board *board.Board
	keys  KeyMap
	mode  Mode

	views        []board.NoteView
	cursor       int
	scrollOffset int

	searchInput textinput.Model
	form        FormModel
	confirm     *ConfirmationModal

	status    string
	statusErr bool

	copyText func(string) error

	width  int
	height int
}

// New creates the board view over b
func New(b *board.Board) Model {
	si := textinput.New()
	si.Placeholder = "search title or body..."
	si.Prompt = ""
	si.CharLimit = 256

	m := Model{
		board:       b,
		keys:        DefaultKeyMap(),
		searchInput: si,
		form:        NewForm(),
		copyText:    clipboard.WriteAll,
		width:       80,
		height:      24,
	}
	m.refresh()
	return m
}

// Keys exposes the bindings for the help popup
func (m Model) Keys() KeyMap {
	return m.keys
}

// Mode returns the current input mode
func (m Model) Mode() Mode {
	return m.mode
}

// IsInModalState reports whether keys should stay with this view instead
// of global shortcuts such as q and ?.
func (m Model) IsInModalState() bool {
	return m.mode != ModeBrowse
}

// Selected returns the note under the cursor
func (m Model) Selected() (board.NoteView, bool) {
	if m.cursor >= 0 && m.cursor < len(m.views) {
		return m.views[m.cursor], true
	}
	return board.NoteView{}, false
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form.SetWidth(width)
	m.searchInput.Width = width - 4
	m.ensureCursorVisible()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfirmationResultMsg:
		return m.handleConfirmationResult(msg)

	case messages.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.Error
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		m.statusErr = false

		switch m.mode {
		case ModeConfirmation:
			if m.confirm != nil {
				return m, m.confirm.Update(msg)
			}
			m.mode = ModeBrowse
			return m, nil
		case ModeSearch:
			return m.handleSearchMode(msg)
		case ModeForm:
			return m.handleFormMode(msg)
		default:
			return m.handleBrowseMode(msg)
		}
	}

	return m, nil
}

// Input handlers

func (m Model) handleBrowseMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.views))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.views))

	case key.Matches(msg, m.keys.Search):
		return m.startSearch()

	case key.Matches(msg, m.keys.Sort):
		order := m.board.CycleSortOrder()
		m.refreshKeepingSelection()
		return m, messages.Status(order.Label())

	case key.Matches(msg, m.keys.Fuzzy):
		mode := m.board.ToggleSearchMode()
		m.refreshKeepingSelection()
		return m, messages.Status(fmt.Sprintf("Search mode: %s", mode))

	case key.Matches(msg, m.keys.New):
		return m.startNewNote()

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()

	case key.Matches(msg, m.keys.Delete):
		return m.handleStartDelete()

	case key.Matches(msg, m.keys.ReadMore):
		if v, ok := m.Selected(); ok && v.Truncated {
			m.board.ToggleExpanded(v.Note.ID)
			m.refreshKeepingSelection()
		}

	case key.Matches(msg, m.keys.Yank):
		return m.yankSelected()

	case key.Matches(msg, m.keys.Escape):
		return m.handleEscape()
	}
	return m, nil
}

func (m Model) handleSearchMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.board.SetQuery("")
		m.mode = ModeBrowse
		m.refreshKeepingSelection()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.searchInput.Blur()
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if q := m.searchInput.Value(); q != m.board.Query() {
		m.board.SetQuery(q)
		m.cursor = 0
		m.scrollOffset = 0
		m.refresh()
	}
	return m, cmd
}

func (m Model) handleFormMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case key.Matches(msg, m.keys.Escape):
		m.board.Cancel()
		m.closeForm()
		m.refreshKeepingSelection()
		return m, nil
	}

	cmd := m.form.Update(msg, m.keys)
	m.board.SetDraft(m.form.Values())
	return m, cmd
}

// handleEscape cancels a pending edit first, then clears the search
func (m Model) handleEscape() (Model, tea.Cmd) {
	if state, _ := m.board.State(); state == board.EditorEditing {
		m.board.Cancel()
		m.form.Reset()
		m.refreshKeepingSelection()
		return m, nil
	}
	if m.board.Query() != "" {
		m.board.SetQuery("")
		m.searchInput.Reset()
		m.refreshKeepingSelection()
	}
	return m, nil
}

func (m Model) startSearch() (Model, tea.Cmd) {
	m.mode = ModeSearch
	m.searchInput.SetValue(m.board.Query())
	m.searchInput.CursorEnd()
	cmd := m.searchInput.Focus()
	m.ensureCursorVisible()
	return m, cmd
}

func (m Model) startNewNote() (Model, tea.Cmd) {
	m.board.Cancel()
	m.form.Reset()
	m.mode = ModeForm
	m.refreshKeepingSelection()
	return m, m.form.Focus()
}

func (m Model) startEdit() (Model, tea.Cmd) {
	v, ok := m.Selected()
	if !ok {
		return m, nil
	}
	if err := m.board.StartEdit(v.Note.ID); err != nil {
		return m, messages.StatusError("Note no longer exists")
	}
	m.form.Load(m.board.Draft())
	m.mode = ModeForm
	m.refreshKeepingSelection()
	return m, m.form.Focus()
}

func (m Model) submitForm() (Model, tea.Cmd) {
	m.board.SetDraft(m.form.Values())
	state, _ := m.board.State()

	note, err := m.board.Submit()
	switch {
	case errors.Is(err, notes.ErrEmptyField):
		m.form.Error = requiredFieldHint
		return m, nil
	case err != nil:
		logs.Logger.Printf("Submit failed: %v", err)
		m.closeForm()
		m.refreshKeepingSelection()
		return m, messages.StatusError("Note no longer exists")
	}

	m.closeForm()
	m.refresh()
	m.selectID(note.ID)

	text := "Added " + note.Title
	if state == board.EditorEditing {
		text = "Updated " + note.Title
	}
	return m, messages.Status(text)
}

func (m *Model) closeForm() {
	m.form.Reset()
	m.form.Blur()
	m.mode = ModeBrowse
}

// handleStartDelete opens the confirmation modal for the selected note
func (m Model) handleStartDelete() (Model, tea.Cmd) {
	v, ok := m.Selected()
	if !ok {
		return m, nil
	}
	m.confirm = NewConfirmationModal(
		v.Note.ID,
		"Delete this note?",
		v.Note.Title,
		50,
	)
	m.mode = ModeConfirmation
	return m, nil
}

func (m Model) handleConfirmationResult(msg ConfirmationResultMsg) (Model, tea.Cmd) {
	m.confirm = nil
	m.mode = ModeBrowse
	if !msg.Confirmed {
		return m, nil
	}

	title := ""
	if n, err := m.board.Store().Get(msg.NoteID); err == nil {
		title = n.Title
	}
	if err := m.board.Delete(msg.NoteID); err != nil {
		m.refresh()
		return m, nil
	}
	m.refresh()
	return m, messages.Status("Deleted " + title)
}

func (m Model) yankSelected() (Model, tea.Cmd) {
	v, ok := m.Selected()
	if !ok {
		return m, nil
	}
	if err := m.copyText(v.Note.Body); err != nil {
		logs.Logger.Printf("Clipboard write failed: %v", err)
		return m, messages.StatusError("Clipboard unavailable")
	}
	return m, messages.Status("Copied body of " + v.Note.Title)
}

// Helpers

func (m *Model) refresh() {
	m.views = m.board.View()
	if m.cursor >= len(m.views) {
		m.cursor = len(m.views) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// refreshKeepingSelection recomputes the view and keeps the cursor on the
// same note when it is still visible.
func (m *Model) refreshKeepingSelection() {
	v, ok := m.Selected()
	m.refresh()
	if ok {
		m.selectID(v.Note.ID)
	}
}

func (m *Model) selectID(id string) {
	for i, v := range m.views {
		if v.Note.ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.views) {
		m.cursor = len(m.views) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// listHeight is the number of lines left for note cards.
// Info bar, gap, hints, and the form box take the rest.
func (m *Model) listHeight() int {
	editing, _ := m.board.State()
	used := infoBarLines + 1 + 1 + shared.LineCount(m.form.View(editing == board.EditorEditing))
	if m.mode == ModeSearch {
		used++
	}
	h := m.height - used
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) cardHeight(i int) int {
	return shared.LineCount(renderCard(m.views[i], i == m.cursor, m.width)) + 1 // blank separator
}

// ensureCursorVisible adjusts scrollOffset so the selected card fits in
// the list area.
func (m *Model) ensureCursorVisible() {
	if m.scrollOffset < 0 || len(m.views) == 0 {
		m.scrollOffset = 0
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	avail := m.listHeight()
	for m.scrollOffset < m.cursor {
		used := 0
		for i := m.scrollOffset; i <= m.cursor; i++ {
			used += m.cardHeight(i)
		}
		if used <= avail {
			break
		}
		m.scrollOffset++
	}
}

// View renders the board view
func (m Model) View() string {
	var b strings.Builder

	editing, _ := m.board.State()
	info := InfoBarModel{
		Mode:       m.mode,
		Editor:     editing,
		SortOrder:  m.board.SortOrder(),
		SearchMode: m.board.SearchMode(),
		Query:      m.board.Query(),
		Shown:      len(m.views),
		Total:      m.board.Store().Len(),
		Width:      m.width,
	}

	if m.confirm != nil {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.confirm.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	b.WriteString(info.View())
	b.WriteString("\n")

	if m.mode == ModeSearch {
		b.WriteString(searchStyle.Render("/") + m.searchInput.View() + "\n")
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.form.View(editing == board.EditorEditing))

	hints := info.Hints()
	if m.status != "" {
		if m.statusErr {
			hints = theme.Error.Render(m.status)
		} else {
			hints = theme.Ok.Render(m.status)
		}
	}

	return shared.PinBottom(b.String(), hints, m.height)
}

func (m Model) renderList() string {
	avail := m.listHeight()

	if len(m.views) == 0 {
		msg := "No notes yet. Press n to add one."
		if m.board.Query() != "" {
			msg = "No notes match \"" + m.board.Query() + "\"."
		}
		return shared.PinBottom(emptyStyle.Render(msg), "", avail)
	}

	var lines []string
	for i := m.scrollOffset; i < len(m.views); i++ {
		card := strings.Split(renderCard(m.views[i], i == m.cursor, m.width), "\n")
		if len(lines)+len(card) > avail && len(lines) > 0 {
			break
		}
		lines = append(lines, card...)
		lines = append(lines, "")
	}
	if len(lines) > avail {
		lines = lines[:avail]
	}
	for len(lines) < avail {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
