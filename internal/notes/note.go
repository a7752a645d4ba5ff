package notes

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no note has the requested ID.
	ErrNotFound = errors.New("note not found")
	// ErrEmptyField is returned when a title or body is blank.
	ErrEmptyField = errors.New("title and body are required")
)

// Note is a short titled text note held in memory
type Note struct {
	ID      string
	Title   string
	Body    string
	Created time.Time // Set once on Add
	Updated time.Time // Advanced on every Update
}

// Modified reports whether the note was updated after creation.
func (n Note) Modified() bool {
	return n.Updated.After(n.Created)
}
