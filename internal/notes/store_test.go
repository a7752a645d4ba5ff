package notes

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeClock hands out a fixed time until advanced.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	n := 0
	store := NewStore(
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("nt-%d", n)
		}),
	)
	return store, clock
}

func TestAdd_SetsCreatedEqualUpdated(t *testing.T) {
	store, _ := newTestStore()

	note, err := store.Add("A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Len() != 1 {
		t.Fatalf("expected 1 note, got %d", store.Len())
	}
	if !note.Created.Equal(note.Updated) {
		t.Errorf("expected created == updated, got %v and %v", note.Created, note.Updated)
	}
	if note.Title != "A" || note.Body != "B" {
		t.Errorf("expected A/B, got %q/%q", note.Title, note.Body)
	}
	if note.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestAdd_DefaultIDsAreUnique(t *testing.T) {
	store := NewStore()
	a, _ := store.Add("one", "body")
	b, _ := store.Add("two", "body")
	if a.ID == b.ID {
		t.Errorf("expected distinct ids, both %q", a.ID)
	}
}

func TestAdd_RejectsEmptyFields(t *testing.T) {
	store, _ := newTestStore()

	tests := []struct {
		title string
		body  string
	}{
		{"", "body"},
		{"title", ""},
		{"   ", "body"},
		{"title", "\n\t"},
	}

	for _, tt := range tests {
		_, err := store.Add(tt.title, tt.body)
		if !errors.Is(err, ErrEmptyField) {
			t.Errorf("Add(%q, %q): expected ErrEmptyField, got %v", tt.title, tt.body, err)
		}
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d notes", store.Len())
	}
}

func TestUpdate_PreservesCreated(t *testing.T) {
	store, clock := newTestStore()

	note, _ := store.Add("Groceries", "milk eggs bread")
	clock.Advance(time.Minute)

	updated, err := store.Update(note.ID, "Groceries", "milk eggs bread butter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.Created.Equal(note.Created) {
		t.Errorf("expected created %v, got %v", note.Created, updated.Created)
	}
	if !updated.Updated.After(note.Updated) {
		t.Errorf("expected updated to advance past %v, got %v", note.Updated, updated.Updated)
	}
	if updated.Body != "milk eggs bread butter" {
		t.Errorf("expected edited body, got %q", updated.Body)
	}

	got, _ := store.Get(note.ID)
	if got != updated {
		t.Errorf("expected stored note %+v, got %+v", updated, got)
	}
}

func TestUpdate_AdvancesOnFrozenClock(t *testing.T) {
	store, _ := newTestStore()

	note, _ := store.Add("t", "b")
	updated, err := store.Update(note.ID, "t", "b2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Updated.After(note.Updated) {
		t.Errorf("expected updated to advance even with a frozen clock")
	}
	if !updated.Modified() {
		t.Error("expected Modified() to be true after update")
	}
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	store, _ := newTestStore()
	store.Add("t", "b")

	_, err := store.Update("missing", "x", "y")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_EmptyFieldIsNoop(t *testing.T) {
	store, _ := newTestStore()
	note, _ := store.Add("t", "b")

	if _, err := store.Update(note.ID, "", "y"); !errors.Is(err, ErrEmptyField) {
		t.Errorf("expected ErrEmptyField, got %v", err)
	}
	got, _ := store.Get(note.ID)
	if got.Title != "t" {
		t.Errorf("expected title unchanged, got %q", got.Title)
	}
}

func TestDelete_ShiftsOrderButKeepsIDs(t *testing.T) {
	store, _ := newTestStore()
	a, _ := store.Add("a", "1")
	b, _ := store.Add("b", "2")
	c, _ := store.Add("c", "3")

	if err := store.Delete(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := store.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(list))
	}
	if list[0].ID != b.ID || list[1].ID != c.ID {
		t.Errorf("expected [b c], got [%s %s]", list[0].Title, list[1].Title)
	}

	// Later notes are still addressable by their original IDs
	got, err := store.Get(c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "c" {
		t.Errorf("expected c, got %q", got.Title)
	}
	if _, err := store.Update(c.ID, "c2", "3"); err != nil {
		t.Errorf("expected update after delete to succeed, got %v", err)
	}
}

func TestDelete_UnknownIDIsNotFound(t *testing.T) {
	store, _ := newTestStore()
	if err := store.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore()
	store.Add("a", "1")

	list := store.List()
	list[0].Title = "mutated"

	got := store.List()
	if got[0].Title != "a" {
		t.Errorf("expected store to be unaffected, got %q", got[0].Title)
	}
}
