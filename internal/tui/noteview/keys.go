package noteview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the board view bindings
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Search   key.Binding
	Sort     key.Binding
	Fuzzy    key.Binding
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	ReadMore key.Binding
	Yank     key.Binding
	Escape   key.Binding

	NextField key.Binding
	Submit    key.Binding
	Confirm   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous note"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next note"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first note"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last note"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Fuzzy: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "fuzzy search"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete"),
		),
		ReadMore: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "read more"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy body"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel / clear"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
	}
}

// ListBindings are the bindings active while browsing notes
func (k KeyMap) ListBindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.ReadMore, k.Yank}
}

// ActionBindings are the bindings that change notes or the view
func (k KeyMap) ActionBindings() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Delete, k.Search, k.Fuzzy, k.Sort, k.Escape}
}

// FormBindings are the bindings active inside the note form
func (k KeyMap) FormBindings() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Escape}
}
