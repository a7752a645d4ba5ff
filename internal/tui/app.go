package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noteboard/internal/board"
	"noteboard/internal/tui/noteview"
	"noteboard/internal/tui/shared"
)

var (
	quitKey = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	helpKey = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "show this help"))
	killKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit"))
)

// AppModel is the root model that owns the board view and global keys
type AppModel struct {
	board     *board.Board
	boardView noteview.Model
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root application model
func NewAppModel(b *board.Board) AppModel {
	return AppModel{
		board:     b,
		boardView: noteview.New(b),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.boardView.SetSize(msg.Width, msg.Height-2) // status bar
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, killKey) {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Forms, search and the delete modal take every key
		if !m.boardView.IsInModalState() {
			switch {
			case key.Matches(msg, quitKey):
				return m, tea.Quit
			case key.Matches(msg, helpKey):
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.boardView, cmd = m.boardView.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	content := m.boardView.View()

	statusText := fmt.Sprintf("noteboard | %d notes | ?:help | q:quit", m.board.Store().Len())
	if m.boardView.IsInModalState() {
		statusText = fmt.Sprintf("noteboard | %s | ctrl+c:quit", m.boardView.Mode())
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	keys := m.boardView.Keys()
	sections := []shared.HelpSection{
		{Title: "Global", Binds: []key.Binding{helpKey, quitKey, killKey}},
		{Title: "Notes", Binds: keys.ListBindings()},
		{Title: "Actions", Binds: keys.ActionBindings()},
		{Title: "Form", Binds: keys.FormBindings()},
	}
	return shared.RenderHelpPopup("Noteboard - Keyboard Shortcuts", sections, m.width, m.height)
}
