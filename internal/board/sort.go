package board

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"noteboard/internal/notes"
)

// SortOrder is the order the derived view is presented in
type SortOrder string

const (
	SortTitleAsc  SortOrder = "asc"
	SortTitleDesc SortOrder = "desc"
	SortCreated   SortOrder = "created"
	SortUpdated   SortOrder = "updated"
)

// SortOrders lists the selectable orders in cycle order.
var SortOrders = []SortOrder{SortTitleAsc, SortTitleDesc, SortCreated, SortUpdated}

// ParseSortOrder validates a sort order name.
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	for _, o := range SortOrders {
		if o == order {
			return o, nil
		}
	}
	return SortTitleDesc, fmt.Errorf("unknown sort order %q", s)
}

// Next returns the order after o in the selector.
func (o SortOrder) Next() SortOrder {
	for i, candidate := range SortOrders {
		if candidate == o {
			return SortOrders[(i+1)%len(SortOrders)]
		}
	}
	return SortOrders[0]
}

// Label returns the selector text for o.
func (o SortOrder) Label() string {
	switch o {
	case SortTitleAsc:
		return "Sort by title (asc)"
	case SortTitleDesc:
		return "Sort by title (desc)"
	case SortCreated:
		return "Sort by date created"
	case SortUpdated:
		return "Sort by date modified"
	}
	return string(o)
}

// Sorter orders notes with a locale-aware title comparison. A Sorter is
// not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a Sorter for a BCP 47 language tag.
func NewSorter(lang string) (*Sorter, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return &Sorter{collator: collate.New(language.English)}, fmt.Errorf("parse language %q: %w", lang, err)
	}
	return &Sorter{collator: collate.New(tag)}, nil
}

// Sort returns a sorted copy of list. Title orders compare with the
// collator; date orders put the newest first. Ties fall back to title
// ascending, then ID.
func (s *Sorter) Sort(list []notes.Note, order SortOrder) []notes.Note {
	out := make([]notes.Note, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool {
		return s.less(out[i], out[j], order)
	})
	return out
}

func (s *Sorter) less(a, b notes.Note, order SortOrder) bool {
	switch order {
	case SortTitleDesc:
		if c := s.collator.CompareString(a.Title, b.Title); c != 0 {
			return c > 0
		}
		return a.ID < b.ID
	case SortCreated:
		if !a.Created.Equal(b.Created) {
			return a.Created.After(b.Created)
		}
	case SortUpdated:
		if !a.Updated.Equal(b.Updated) {
			return a.Updated.After(b.Updated)
		}
	}

	if c := s.collator.CompareString(a.Title, b.Title); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}
