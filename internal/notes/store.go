package notes

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"noteboard/internal/logs"
)

// Store is an in-memory, insertion-ordered collection of notes addressed
// by ID. Sorting is a read-time concern; the store never reorders.
type Store struct {
	mu    sync.RWMutex
	notes []Note
	index map[string]int
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of Created/Updated.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		index: make(map[string]int),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new note with Created == Updated == now.
func (s *Store) Add(title, body string) (Note, error) {
	if isBlank(title) || isBlank(body) {
		return Note{}, ErrEmptyField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	note := Note{
		ID:      s.newID(),
		Title:   title,
		Body:    body,
		Created: now,
		Updated: now,
	}
	if _, exists := s.index[note.ID]; exists {
		return Note{}, fmt.Errorf("duplicate note id %s", note.ID)
	}

	s.index[note.ID] = len(s.notes)
	s.notes = append(s.notes, note)
	logs.Logger.Printf("Store: added note %s", note.ID)
	return note, nil
}

// Update replaces the title and body of a note, keeping Created.
func (s *Store) Update(id, title, body string) (Note, error) {
	if isBlank(title) || isBlank(body) {
		return Note{}, ErrEmptyField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return Note{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}

	note := s.notes[i]
	updated := s.now()
	// Updated must advance even on a coarse clock
	if !updated.After(note.Updated) {
		updated = note.Updated.Add(time.Nanosecond)
	}
	note.Title = title
	note.Body = body
	note.Updated = updated
	s.notes[i] = note

	logs.Logger.Printf("Store: updated note %s", id)
	return note, nil
}

// Delete removes a note. IDs of the remaining notes are unaffected.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}

	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.notes); j++ {
		s.index[s.notes[j].ID] = j
	}

	logs.Logger.Printf("Store: deleted note %s", id)
	return nil
}

// Get returns the note with the given ID.
func (s *Store) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Note{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return s.notes[i], nil
}

// List returns a copy of the notes in insertion order.
func (s *Store) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
