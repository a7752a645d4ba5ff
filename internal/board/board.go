package board

import (
	"errors"
	"time"

	"noteboard/internal/logs"
	"noteboard/internal/notes"
)

// EditorState is the state of the create/edit form
type EditorState int

const (
	// EditorIdle means submit creates a new note.
	EditorIdle EditorState = iota
	// EditorEditing means submit updates the selected note.
	EditorEditing
)

func (s EditorState) String() string {
	if s == EditorEditing {
		return "Editing"
	}
	return "Idle"
}

// Options configures a Board. Zero values fall back to defaults.
type Options struct {
	SortOrder    SortOrder
	SearchMode   SearchMode
	Language     string
	PreviewWords int
	TimeFormat   string
	Location     *time.Location
}

// NoteView is one row of the derived view
type NoteView struct {
	Note      notes.Note
	Preview   string // Full body when expanded or short enough
	Truncated bool   // Body is long enough to carry a Read More control
	Expanded  bool
	Editing   bool
	Created   string
	Modified  string
}

// Board is the note board state machine: a note store plus editor state
// (idle or editing one note by ID, with a draft) and view state (search,
// sort, and the set of expanded notes).
type Board struct {
	store  *notes.Store
	sorter *Sorter

	state      EditorState
	editingID  string
	draftTitle string
	draftBody  string

	query        string
	searchMode   SearchMode
	sortOrder    SortOrder
	expanded     map[string]bool
	previewWords int
	timeFormat   string
	location     *time.Location
}

// New creates a Board over store.
func New(store *notes.Store, opts Options) *Board {
	sorter, err := NewSorter(opts.Language)
	if opts.Language != "" && err != nil {
		logs.Logger.Printf("Warning: %v, using English collation", err)
	}

	b := &Board{
		store:        store,
		sorter:       sorter,
		searchMode:   SearchSubstring,
		sortOrder:    SortTitleDesc,
		expanded:     make(map[string]bool),
		previewWords: DefaultPreviewWords,
		timeFormat:   "2006-01-02 15:04:05",
		location:     time.Local,
	}
	if opts.SortOrder != "" {
		b.sortOrder = opts.SortOrder
	}
	if opts.SearchMode != "" {
		b.searchMode = opts.SearchMode
	}
	if opts.PreviewWords > 0 {
		b.previewWords = opts.PreviewWords
	}
	if opts.TimeFormat != "" {
		b.timeFormat = opts.TimeFormat
	}
	if opts.Location != nil {
		b.location = opts.Location
	}
	return b
}

// Store returns the underlying note store.
func (b *Board) Store() *notes.Store {
	return b.store
}

// State returns the editor state and, when editing, the note ID.
func (b *Board) State() (EditorState, string) {
	return b.state, b.editingID
}

// Draft returns the current form contents.
func (b *Board) Draft() (title, body string) {
	return b.draftTitle, b.draftBody
}

// SetDraft replaces the form contents.
func (b *Board) SetDraft(title, body string) {
	b.draftTitle = title
	b.draftBody = body
}

// StartEdit moves the editor to Editing(id) and loads the note into the
// draft. Unknown IDs leave the board unchanged.
func (b *Board) StartEdit(id string) error {
	note, err := b.store.Get(id)
	if err != nil {
		logs.Logger.Printf("Board: start edit ignored: %v", err)
		return err
	}
	b.state = EditorEditing
	b.editingID = id
	b.draftTitle = note.Title
	b.draftBody = note.Body
	return nil
}

// Submit commits the draft: a new note when idle, an update when editing.
// On success the form clears and the editor returns to idle. A blank
// field leaves state and draft untouched and returns notes.ErrEmptyField.
func (b *Board) Submit() (notes.Note, error) {
	var (
		note notes.Note
		err  error
	)
	if b.state == EditorEditing {
		note, err = b.store.Update(b.editingID, b.draftTitle, b.draftBody)
	} else {
		note, err = b.store.Add(b.draftTitle, b.draftBody)
	}

	if errors.Is(err, notes.ErrEmptyField) {
		return notes.Note{}, err
	}
	if err != nil {
		// Edited note is gone; nothing left to update
		logs.Logger.Printf("Board: submit dropped: %v", err)
		b.reset()
		return notes.Note{}, err
	}

	b.reset()
	return note, nil
}

// Cancel discards the draft and returns to idle. The note is unchanged.
func (b *Board) Cancel() {
	b.reset()
}

// Delete removes a note. Deleting the note being edited returns the
// editor to idle.
func (b *Board) Delete(id string) error {
	if err := b.store.Delete(id); err != nil {
		logs.Logger.Printf("Board: delete ignored: %v", err)
		return err
	}
	delete(b.expanded, id)
	if b.state == EditorEditing && b.editingID == id {
		b.reset()
	}
	return nil
}

func (b *Board) reset() {
	b.state = EditorIdle
	b.editingID = ""
	b.draftTitle = ""
	b.draftBody = ""
}

// Query returns the search query.
func (b *Board) Query() string {
	return b.query
}

// SetQuery replaces the search query.
func (b *Board) SetQuery(q string) {
	b.query = q
}

// SearchMode returns the current search mode.
func (b *Board) SearchMode() SearchMode {
	return b.searchMode
}

// ToggleSearchMode switches between substring and fuzzy matching.
func (b *Board) ToggleSearchMode() SearchMode {
	if b.searchMode == SearchFuzzy {
		b.searchMode = SearchSubstring
	} else {
		b.searchMode = SearchFuzzy
	}
	return b.searchMode
}

// SortOrder returns the current sort order.
func (b *Board) SortOrder() SortOrder {
	return b.sortOrder
}

// SetSortOrder changes the order of the derived view only.
func (b *Board) SetSortOrder(order SortOrder) {
	b.sortOrder = order
}

// CycleSortOrder advances to the next order in the selector.
func (b *Board) CycleSortOrder() SortOrder {
	b.sortOrder = b.sortOrder.Next()
	return b.sortOrder
}

// ToggleExpanded flips the Read More state of one note and reports the
// new state. Other notes keep their own state.
func (b *Board) ToggleExpanded(id string) bool {
	if _, err := b.store.Get(id); err != nil {
		return false
	}
	if b.expanded[id] {
		delete(b.expanded, id)
		return false
	}
	b.expanded[id] = true
	return true
}

// IsExpanded reports whether a note is expanded.
func (b *Board) IsExpanded(id string) bool {
	return b.expanded[id]
}

// View computes the derived view: filter, sort, then preview.
func (b *Board) View() []NoteView {
	filtered := applySearch(b.store.List(), b.query, b.searchMode)

	// Fuzzy results are already ranked by relevance while a query is active
	sorted := filtered
	if b.searchMode != SearchFuzzy || b.query == "" {
		sorted = b.sorter.Sort(filtered, b.sortOrder)
	}

	views := make([]NoteView, 0, len(sorted))
	for _, n := range sorted {
		preview, truncated := Preview(n.Body, b.previewWords)
		expanded := b.expanded[n.ID]
		if expanded {
			preview = n.Body
		}
		views = append(views, NoteView{
			Note:      n,
			Preview:   preview,
			Truncated: truncated,
			Expanded:  expanded,
			Editing:   b.state == EditorEditing && b.editingID == n.ID,
			Created:   n.Created.In(b.location).Format(b.timeFormat),
			Modified:  n.Updated.In(b.location).Format(b.timeFormat),
		})
	}
	return views
}
