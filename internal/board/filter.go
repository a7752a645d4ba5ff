package board

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"noteboard/internal/notes"
)

// SearchMode selects how the query is matched against notes
type SearchMode string

const (
	SearchSubstring SearchMode = "substring"
	SearchFuzzy     SearchMode = "fuzzy"
)

// ParseSearchMode validates a search mode name.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(strings.ToLower(strings.TrimSpace(s))) {
	case SearchSubstring, "":
		return SearchSubstring, nil
	case SearchFuzzy:
		return SearchFuzzy, nil
	}
	return SearchSubstring, fmt.Errorf("unknown search mode %q", s)
}

// Filter returns the notes whose title or body contains query, ignoring
// case. An empty query matches everything. The input is never modified.
func Filter(list []notes.Note, query string) []notes.Note {
	out := make([]notes.Note, 0, len(list))
	if query == "" {
		return append(out, list...)
	}

	q := strings.ToLower(query)
	for _, n := range list {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Body), q) {
			out = append(out, n)
		}
	}
	return out
}

// noteSource adapts a note slice for fuzzy matching over "title body".
type noteSource []notes.Note

func (s noteSource) String(i int) string { return s[i].Title + " " + s[i].Body }

func (s noteSource) Len() int { return len(s) }

// FilterFuzzy returns the notes that fuzzy-match query, best match first.
// An empty query matches everything in the original order.
func FilterFuzzy(list []notes.Note, query string) []notes.Note {
	out := make([]notes.Note, 0, len(list))
	if query == "" {
		return append(out, list...)
	}

	matches := fuzzy.FindFrom(query, noteSource(list))
	for _, match := range matches {
		out = append(out, list[match.Index])
	}
	return out
}

func applySearch(list []notes.Note, query string, mode SearchMode) []notes.Note {
	if mode == SearchFuzzy {
		return FilterFuzzy(list, query)
	}
	return Filter(list, query)
}
