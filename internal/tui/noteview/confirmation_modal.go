package noteview

import (
	tea "github.com/charmbracelet/bubbletea"

	"noteboard/internal/tui/theme"
)

var (
	confirmModalBoxStyle = theme.ModalBox
	confirmTitleStyle    = theme.ModalTitle
	confirmYesStyle      = theme.Ok
	confirmNoStyle       = theme.Error
)

// ConfirmationModal asks the user to confirm deleting a note
type ConfirmationModal struct {
	NoteID  string
	Message string
	Details string
	Width   int
}

// ConfirmationResultMsg is sent when the user answers the modal
type ConfirmationResultMsg struct {
	NoteID    string
	Confirmed bool
}

// NewConfirmationModal creates a confirmation modal for the given note
func NewConfirmationModal(noteID, message, details string, width int) *ConfirmationModal {
	return &ConfirmationModal{
		NoteID:  noteID,
		Message: message,
		Details: details,
		Width:   width,
	}
}

// Update handles key events for the confirmation modal
func (m *ConfirmationModal) Update(msg tea.KeyMsg) tea.Cmd {
	id := m.NoteID
	switch msg.String() {
	case "y", "enter":
		return func() tea.Msg {
			return ConfirmationResultMsg{NoteID: id, Confirmed: true}
		}
	case "n", "esc", "q":
		return func() tea.Msg {
			return ConfirmationResultMsg{NoteID: id, Confirmed: false}
		}
	}
	return nil
}

func (m *ConfirmationModal) View() string {
	content := confirmTitleStyle.Render(m.Message) + "\n"

	if m.Details != "" {
		content += "\n" + m.Details + "\n"
	}

	content += "\n"
	content += confirmYesStyle.Render("[y]") + " Delete  "
	content += confirmNoStyle.Render("[n/esc]") + " Keep"

	return confirmModalBoxStyle.Width(m.Width).Render(content)
}
