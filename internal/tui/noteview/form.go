package noteview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noteboard/internal/tui/theme"
)

type formField int

const (
	fieldTitle formField = iota
	fieldBody
)

const (
	formBodyHeight = 4
	formTitleLimit = 200
)

var (
	formLabelStyle   = lipgloss.NewStyle().Foreground(theme.Secondary)
	formHeadingStyle = theme.Subtitle
	formErrorStyle   = theme.Error
)

// FormModel is the title + body form used for both creating and editing
type FormModel struct {
	title  textinput.Model
	body   textarea.Model
	field  formField
	active bool
	Error  string
	width  int
}

// NewForm creates an inactive, empty form
func NewForm() FormModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = formTitleLimit
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Body"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(formBodyHeight)
	ta.Prompt = ""

	f := FormModel{title: ti, body: ta}
	f.SetWidth(60)
	return f
}

// SetWidth resizes both inputs to fit inside the form box
func (f *FormModel) SetWidth(width int) {
	f.width = width
	inner := width - 4 // border + padding
	if inner < 10 {
		inner = 10
	}
	f.title.Width = inner
	f.body.SetWidth(inner)
}

// Active reports whether the form has keyboard focus
func (f FormModel) Active() bool {
	return f.active
}

// Focus gives the form keyboard focus, starting on the title field
func (f *FormModel) Focus() tea.Cmd {
	f.active = true
	f.field = fieldTitle
	f.body.Blur()
	return f.title.Focus()
}

// Blur releases keyboard focus without touching the values
func (f *FormModel) Blur() {
	f.active = false
	f.title.Blur()
	f.body.Blur()
}

// Load fills the inputs, used when editing an existing note
func (f *FormModel) Load(title, body string) {
	f.title.SetValue(title)
	f.title.CursorEnd()
	f.body.SetValue(body)
	f.Error = ""
}

// Reset clears the inputs and any error
func (f *FormModel) Reset() {
	f.title.Reset()
	f.body.Reset()
	f.Error = ""
}

// Values returns the current title and body
func (f FormModel) Values() (title, body string) {
	return f.title.Value(), f.body.Value()
}

func (f *FormModel) switchField() tea.Cmd {
	if f.field == fieldTitle {
		f.field = fieldBody
		f.title.Blur()
		return f.body.Focus()
	}
	f.field = fieldTitle
	f.body.Blur()
	return f.title.Focus()
}

// Update forwards a key to the focused input. Enter in the title moves to
// the body; enter in the body inserts a newline.
func (f *FormModel) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	if key.Matches(msg, keys.NextField) || (f.field == fieldTitle && key.Matches(msg, keys.Confirm)) {
		return f.switchField()
	}

	f.Error = ""
	var cmd tea.Cmd
	if f.field == fieldTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.body, cmd = f.body.Update(msg)
	}
	return cmd
}

// View renders the form box. editing selects the heading and submit label.
func (f FormModel) View(editing bool) string {
	heading := "New note"
	action := "Add"
	if editing {
		heading = "Edit note"
		action = "Update"
	}

	content := formHeadingStyle.Render(heading) + "\n"
	content += formLabelStyle.Render("Title") + "\n" + f.title.View() + "\n"
	content += formLabelStyle.Render("Body") + "\n" + f.body.View() + "\n"

	hint := "[ctrl+s] " + action
	if editing {
		hint += "  [esc] Cancel"
	}
	content += theme.HelpHint.Render(hint)
	if f.Error != "" {
		content += "  " + formErrorStyle.Render(f.Error)
	}

	box := theme.FormBox
	if f.active {
		box = theme.FormBoxFocused
	}
	return box.Width(f.width - 2).Render(content)
}
