package noteview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"noteboard/internal/board"
	"noteboard/internal/tui/theme"
)

// Mode is the input mode of the board view
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeForm
	ModeConfirmation
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "Search"
	case ModeForm:
		return "Form"
	case ModeConfirmation:
		return "Confirm"
	default:
		return "Browse"
	}
}

var (
	modeStyle    = theme.NavActive
	hintStyle    = theme.HelpHint
	sortStyle    = lipgloss.NewStyle().Foreground(theme.Warning)
	searchStyle  = lipgloss.NewStyle().Foreground(theme.Success)
	infoBarStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(theme.Border)
)

// infoBarLines is the height of the info bar including its border
const infoBarLines = 4

// InfoBarModel shows the mode, sort order, search state and note counts
type InfoBarModel struct {
	Mode       Mode
	Editor     board.EditorState
	SortOrder  board.SortOrder
	SearchMode board.SearchMode
	Query      string
	Shown      int
	Total      int
	Width      int
}

// View renders the info bar (3 fixed lines)
func (m InfoBarModel) View() string {
	lines := [3]string{
		m.renderModeLine(),
		m.renderSortLine(),
		m.renderSearchLine(),
	}
	return infoBarStyle.Width(m.Width).Render(strings.Join(lines[:], "\n"))
}

func (m InfoBarModel) renderModeLine() string {
	line := modeStyle.Render("[" + m.Mode.String() + "]")
	if m.Editor == board.EditorEditing {
		line += " " + theme.Editing.Render("editing")
	}
	count := fmt.Sprintf("%d notes", m.Total)
	if m.Shown != m.Total {
		count = fmt.Sprintf("%d of %d notes", m.Shown, m.Total)
	}
	return line + "  " + hintStyle.Render(count)
}

func (m InfoBarModel) renderSortLine() string {
	return sortStyle.Render(m.SortOrder.Label())
}

func (m InfoBarModel) renderSearchLine() string {
	label := "Search"
	if m.SearchMode == board.SearchFuzzy {
		label = "Fuzzy search"
	}
	if m.Query == "" {
		return hintStyle.Render(label + ": (none)")
	}
	return searchStyle.Render(label + ": " + m.Query)
}

// Hints returns the bottom keybind hints for the mode
func (m InfoBarModel) Hints() string {
	var hint string
	switch m.Mode {
	case ModeSearch:
		hint = "type to filter  enter:done  esc:clear"
	case ModeForm:
		hint = "tab:switch field  ctrl+s:save  esc:cancel"
	case ModeConfirmation:
		hint = "y/enter:delete  n/esc:keep"
	default:
		hint = "?:help  n:new  e:edit  D:delete  /:search  s:sort  space:read more  q:quit"
	}
	return hintStyle.Render(hint)
}
