package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpSection is a titled group of key bindings
type HelpSection struct {
	Title string
	Binds []key.Binding
}

var (
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	helpDescStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	helpBoxStyle     = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("4")).
				Padding(1, 2)
	helpDismissStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderHelpPopup renders a centered help popup listing the enabled
// bindings of each section.
func RenderHelpPopup(title string, sections []HelpSection, width, height int) string {
	var b strings.Builder
	b.WriteString(helpSectionStyle.Render(title))
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(helpSectionStyle.Render(section.Title))
		b.WriteString("\n")
		for _, bind := range section.Binds {
			if !bind.Enabled() {
				continue
			}
			h := bind.Help()
			b.WriteString("  " + helpKeyStyle.Width(14).Render(h.Key) + helpDescStyle.Render(h.Desc) + "\n")
		}
	}

	b.WriteString("\n" + helpDismissStyle.Render("Press any key to close"))

	box := helpBoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// ShortHelp joins bindings into a one-line hint such as "/ search  s sort".
func ShortHelp(binds ...key.Binding) string {
	parts := make([]string, 0, len(binds))
	for _, bind := range binds {
		if !bind.Enabled() {
			continue
		}
		h := bind.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
