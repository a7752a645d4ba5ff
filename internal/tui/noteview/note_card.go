package noteview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"noteboard/internal/board"
	"noteboard/internal/tui/theme"
)

const (
	cardIndent   = "    "
	readMoreText = "Read More"
	showLessText = "Show Less"
)

var (
	cursorStyle    = theme.Cursor
	cardTitleStyle = theme.NoteTitle
	cardBodyStyle  = theme.NoteBody
	readMoreStyle  = theme.ReadMore
	timestampStyle = theme.Timestamp
	editingStyle   = theme.Editing
	emptyStyle     = theme.Muted
)

// renderCard renders one note as a block of lines: title, body preview
// and timestamps.
func renderCard(v board.NoteView, selected bool, width int) string {
	var b strings.Builder

	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}

	badge := ""
	if v.Editing {
		badge = " " + editingStyle.Render("[editing]")
	}

	titleWidth := width - 2 - lipgloss.Width(badge)
	if titleWidth < 1 {
		titleWidth = 1
	}
	title := ansi.Truncate(v.Note.Title, titleWidth, "…")
	style := cardTitleStyle
	if selected {
		style = style.Foreground(theme.Warning)
	}
	b.WriteString(prefix + style.Render(title) + badge + "\n")

	bodyWidth := width - len(cardIndent)
	if bodyWidth < 10 {
		bodyWidth = 10
	}
	body := wordwrap.String(v.Preview, bodyWidth)
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(cardIndent + cardBodyStyle.Render(line) + "\n")
	}
	if v.Truncated {
		marker := readMoreText
		if v.Expanded {
			marker = showLessText
		}
		b.WriteString(cardIndent + readMoreStyle.Render(marker) + "\n")
	}

	stamps := "Created: " + v.Created + "  Modified: " + v.Modified
	b.WriteString(cardIndent + timestampStyle.Render(ansi.Truncate(stamps, bodyWidth, "…")))

	return b.String()
}
