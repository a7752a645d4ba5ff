package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"noteboard/internal/board"
)

func runList(args []string, b *board.Board, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	query := fs.String("q", "", "Filter by title or body")
	sortFlag := fs.String("sort", "", "Sort order: asc, desc, created, updated")
	fuzzy := fs.Bool("fuzzy", false, "Use fuzzy matching for -q")
	full := fs.Bool("full", false, "Print whole bodies instead of previews")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *sortFlag != "" {
		order, err := board.ParseSortOrder(*sortFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		b.SetSortOrder(order)
	}
	if *fuzzy && b.SearchMode() != board.SearchFuzzy {
		b.ToggleSearchMode()
	}
	b.SetQuery(*query)

	if *full {
		for _, v := range b.View() {
			if v.Truncated && !v.Expanded {
				b.ToggleExpanded(v.Note.ID)
			}
		}
	}

	views := b.View()
	if len(views) == 0 {
		fmt.Fprintln(stdout, "No notes found.")
		return 0
	}

	for _, v := range views {
		printNote(stdout, v)
	}

	fmt.Fprintf(stdout, "\n%d note(s), %s\n", len(views), strings.ToLower(b.SortOrder().Label()))
	return 0
}

func printNote(w io.Writer, v board.NoteView) {
	fmt.Fprintln(w, v.Note.Title)
	for _, line := range strings.Split(v.Preview, "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintf(w, "  Created: %s  Modified: %s\n", v.Created, v.Modified)
}
