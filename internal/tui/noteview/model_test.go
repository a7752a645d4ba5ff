package noteview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noteboard/internal/board"
	"noteboard/internal/notes"
	"noteboard/internal/tui/messages"
)

func newTestModel(t *testing.T, seed ...[2]string) (Model, *board.Board) {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	store := notes.NewStore(
		notes.WithClock(func() time.Time {
			now = now.Add(time.Minute)
			return now
		}),
		notes.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("nt-%d", n)
		}),
	)
	for _, s := range seed {
		if _, err := store.Add(s[0], s[1]); err != nil {
			t.Fatalf("seed %q: %v", s[0], err)
		}
	}
	b := board.New(store, board.Options{SortOrder: board.SortTitleAsc, Location: time.UTC})
	m := New(b)
	m.SetSize(100, 60)
	return m, b
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(runeKey(string(r)))
	}
	return m
}

func titles(m Model) []string {
	out := make([]string, len(m.views))
	for i, v := range m.views {
		out[i] = v.Note.Title
	}
	return out
}

var seedNotes = [][2]string{
	{"Groceries", "milk eggs bread"},
	{"Alpha", "first body"},
	{"Beta", "second body"},
}

func TestNewNote_SubmitCreatesNote(t *testing.T) {
	m, b := newTestModel(t)

	m = press(m, runeKey("n"))
	if m.Mode() != ModeForm {
		t.Fatalf("expected Form mode, got %s", m.Mode())
	}
	m = typeText(m, "Groceries")
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "milk eggs")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if b.Store().Len() != 1 {
		t.Fatalf("expected 1 note, got %d", b.Store().Len())
	}
	note := b.Store().List()[0]
	if note.Title != "Groceries" || note.Body != "milk eggs" {
		t.Errorf("expected Groceries/milk eggs, got %q/%q", note.Title, note.Body)
	}
	if m.Mode() != ModeBrowse {
		t.Errorf("expected Browse mode after submit, got %s", m.Mode())
	}
	if title, body := m.form.Values(); title != "" || body != "" {
		t.Errorf("expected cleared form, got %q/%q", title, body)
	}
	if cmd == nil {
		t.Fatal("expected status command")
	}
	if status, ok := cmd().(messages.StatusMsg); !ok || status.Text != "Added Groceries" {
		t.Errorf("expected status %q, got %#v", "Added Groceries", status)
	}
}

func TestNewNote_EnterInTitleMovesToBody(t *testing.T) {
	m, b := newTestModel(t)

	m = press(m, runeKey("n"))
	m = typeText(m, "Title")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "Body")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if b.Store().Len() != 1 {
		t.Fatalf("expected 1 note, got %d", b.Store().Len())
	}
	if got := b.Store().List()[0].Body; got != "Body" {
		t.Errorf("expected body %q, got %q", "Body", got)
	}
}

func TestSubmit_EmptyBodyShowsHint(t *testing.T) {
	m, b := newTestModel(t)

	m = press(m, runeKey("n"))
	m = typeText(m, "Only a title")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if b.Store().Len() != 0 {
		t.Errorf("expected no notes, got %d", b.Store().Len())
	}
	if m.Mode() != ModeForm {
		t.Errorf("expected form to stay open, got %s", m.Mode())
	}
	if m.form.Error != requiredFieldHint {
		t.Errorf("expected hint %q, got %q", requiredFieldHint, m.form.Error)
	}
	if title, _ := m.form.Values(); title != "Only a title" {
		t.Errorf("expected draft kept, got %q", title)
	}
}

func TestEdit_UpdatesSelectedNote(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	// asc order: Alpha, Beta, Groceries
	m = press(m, runeKey("j"), runeKey("e"))

	state, id := b.State()
	if state != board.EditorEditing || id != "nt-3" {
		t.Fatalf("expected Editing(nt-3), got %s(%s)", state, id)
	}
	if title, body := m.form.Values(); title != "Beta" || body != "second body" {
		t.Fatalf("expected form loaded with Beta, got %q/%q", title, body)
	}

	m = typeText(m, " two")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	note, err := b.Store().Get("nt-3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if note.Title != "Beta two" {
		t.Errorf("expected title %q, got %q", "Beta two", note.Title)
	}
	if !note.Updated.After(note.Created) {
		t.Errorf("expected updated after created")
	}
	if state, _ := b.State(); state != board.EditorIdle {
		t.Errorf("expected Idle after update, got %s", state)
	}
	if v, _ := m.Selected(); v.Note.ID != "nt-3" {
		t.Errorf("expected cursor to stay on edited note, got %s", v.Note.ID)
	}
}

func TestEdit_EscapeCancels(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	m = press(m, runeKey("e"))
	m = typeText(m, "XYZ")
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	if state, _ := b.State(); state != board.EditorIdle {
		t.Errorf("expected Idle, got %s", state)
	}
	if m.Mode() != ModeBrowse {
		t.Errorf("expected Browse mode, got %s", m.Mode())
	}
	note, _ := b.Store().Get("nt-2")
	if note.Title != "Alpha" {
		t.Errorf("expected Alpha unchanged, got %q", note.Title)
	}
}

func TestDelete_ConfirmRemovesNote(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	m = press(m, runeKey("D"))
	if m.Mode() != ModeConfirmation || !m.IsInModalState() {
		t.Fatalf("expected confirmation mode, got %s", m.Mode())
	}

	m, cmd := m.Update(runeKey("y"))
	if cmd == nil {
		t.Fatal("expected confirmation command")
	}
	m, _ = m.Update(cmd())

	if b.Store().Len() != 2 {
		t.Fatalf("expected 2 notes, got %d", b.Store().Len())
	}
	if _, err := b.Store().Get("nt-2"); err == nil {
		t.Error("expected Alpha to be deleted")
	}
	if got := strings.Join(titles(m), ","); got != "Beta,Groceries" {
		t.Errorf("expected Beta,Groceries, got %s", got)
	}
	if m.Mode() != ModeBrowse {
		t.Errorf("expected Browse mode, got %s", m.Mode())
	}
}

func TestDelete_DeclineKeepsNote(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	m = press(m, runeKey("D"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(cmd())

	if b.Store().Len() != 3 {
		t.Errorf("expected 3 notes, got %d", b.Store().Len())
	}
	if m.Mode() != ModeBrowse {
		t.Errorf("expected Browse mode, got %s", m.Mode())
	}
}

func TestSearch_LiveFilterAndClear(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	m = press(m, runeKey("/"))
	m = typeText(m, "BOD")

	if b.Query() != "BOD" {
		t.Fatalf("expected query BOD, got %q", b.Query())
	}
	if got := strings.Join(titles(m), ","); got != "Alpha,Beta" {
		t.Errorf("expected Alpha,Beta, got %s", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if b.Query() != "" {
		t.Errorf("expected query cleared, got %q", b.Query())
	}
	if len(m.views) != 3 {
		t.Errorf("expected 3 notes after clear, got %d", len(m.views))
	}
}

func TestSearch_EnterKeepsQuery(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	m = press(m, runeKey("/"))
	m = typeText(m, "milk")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Mode() != ModeBrowse {
		t.Errorf("expected Browse mode, got %s", m.Mode())
	}
	if b.Query() != "milk" || len(m.views) != 1 {
		t.Errorf("expected milk to filter to 1 note, got %q and %d", b.Query(), len(m.views))
	}

	// esc in browse mode clears the query
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if b.Query() != "" || len(m.views) != 3 {
		t.Errorf("expected cleared query, got %q and %d", b.Query(), len(m.views))
	}
}

func TestSortKey_CyclesOrder(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	m = press(m, runeKey("s"))
	if b.SortOrder() != board.SortTitleDesc {
		t.Fatalf("expected desc, got %s", b.SortOrder())
	}
	if got := strings.Join(titles(m), ","); got != "Groceries,Beta,Alpha" {
		t.Errorf("expected Groceries,Beta,Alpha, got %s", got)
	}

	m = press(m, runeKey("s"))
	if got := strings.Join(titles(m), ","); got != "Beta,Alpha,Groceries" {
		t.Errorf("expected newest first, got %s", got)
	}

	// store keeps insertion order
	var stored []string
	for _, n := range b.Store().List() {
		stored = append(stored, n.Title)
	}
	if got := strings.Join(stored, ","); got != "Groceries,Alpha,Beta" {
		t.Errorf("expected store order unchanged, got %s", got)
	}
}

func TestFuzzyKey_TogglesSearchMode(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlF}, runeKey("/"))
	m = typeText(m, "grcrs")

	if b.SearchMode() != board.SearchFuzzy {
		t.Fatalf("expected fuzzy mode, got %s", b.SearchMode())
	}
	if got := strings.Join(titles(m), ","); got != "Groceries" {
		t.Errorf("expected Groceries, got %s", got)
	}
}

func TestReadMore_TogglesSelectedOnly(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve"
	m, b := newTestModel(t, [2]string{"Long A", long}, [2]string{"Long B", long})

	m = press(m, runeKey(" "))
	if !b.IsExpanded("nt-1") {
		t.Error("expected Long A expanded")
	}
	if b.IsExpanded("nt-2") {
		t.Error("expected Long B collapsed")
	}
	if m.views[0].Preview != long {
		t.Errorf("expected full body, got %q", m.views[0].Preview)
	}

	m = press(m, runeKey("j"), runeKey(" "))
	if !b.IsExpanded("nt-1") || !b.IsExpanded("nt-2") {
		t.Error("expected both notes expanded")
	}

	m = press(m, runeKey(" "))
	if b.IsExpanded("nt-2") {
		t.Error("expected Long B collapsed again")
	}
}

func TestReadMore_IgnoresShortBodies(t *testing.T) {
	m, b := newTestModel(t, seedNotes...)

	m = press(m, runeKey(" "))
	if b.IsExpanded("nt-2") {
		t.Error("expected short note to have no Read More toggle")
	}
	_ = m
}

func TestYank_CopiesBody(t *testing.T) {
	m, _ := newTestModel(t, seedNotes...)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := m.Update(runeKey("y"))
	if copied != "first body" {
		t.Errorf("expected %q copied, got %q", "first body", copied)
	}
	if cmd == nil {
		t.Fatal("expected status command")
	}
	m, _ = m.Update(cmd())
	if !strings.Contains(m.View(), "Copied body of Alpha") {
		t.Error("expected copy status in view")
	}
}

func TestCursor_StaysInBounds(t *testing.T) {
	m, _ := newTestModel(t, seedNotes...)

	m = press(m, runeKey("k"))
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}
	m = press(m, runeKey("G"))
	if m.cursor != 2 {
		t.Errorf("expected cursor 2, got %d", m.cursor)
	}
	m = press(m, runeKey("j"))
	if m.cursor != 2 {
		t.Errorf("expected cursor 2, got %d", m.cursor)
	}
	m = press(m, runeKey("g"))
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}
}

func TestView_RendersCards(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve"
	m, _ := newTestModel(t, [2]string{"Long", long})

	view := m.View()
	for _, want := range []string{"Long", "one two three", readMoreText, "Created: 2026-03-01 09:01:00", "Sort by title (asc)", "New note"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if strings.Contains(view, "twelve") {
		t.Error("expected collapsed note to hide the tail of the body")
	}
}

func TestView_EmptyBoard(t *testing.T) {
	m, _ := newTestModel(t)

	if !strings.Contains(m.View(), "No notes yet") {
		t.Error("expected empty board message")
	}
}

func TestIsInModalState(t *testing.T) {
	m, _ := newTestModel(t, seedNotes...)

	if m.IsInModalState() {
		t.Error("expected browse mode to be non-modal")
	}
	m = press(m, runeKey("/"))
	if !m.IsInModalState() {
		t.Error("expected search to be modal")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey("n"))
	if !m.IsInModalState() {
		t.Error("expected form to be modal")
	}
}
