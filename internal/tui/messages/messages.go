package messages

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg shows a one-line status in the status bar until the next key
type StatusMsg struct {
	Text  string
	Error bool
}

// NoteSavedMsg is sent after the form commits a note
type NoteSavedMsg struct {
	ID      string
	Created bool // false when an existing note was updated
}

// NoteDeletedMsg is sent after a note is removed
type NoteDeletedMsg struct {
	ID string
}

func Status(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

func StatusError(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text, Error: true}
	}
}
