package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/retodo/internal/core/config"
)

// KeyMap holds every binding the todo view responds to.
type KeyMap struct {
	Undo   key.Binding
	Redo   key.Binding
	Add    key.Binding
	Toggle key.Binding
	Remove key.Binding
	Up     key.Binding
	Down   key.Binding
	Focus  key.Binding
	Quit   key.Binding
}

// NewKeyMap builds the key map, taking undo and redo keys from configuration.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Undo: key.NewBinding(
			key.WithKeys(keys.Undo...),
			key.WithHelp(strings.Join(keys.Undo, "/"), "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys(keys.Redo...),
			key.WithHelp(strings.Join(keys.Redo, "/"), "redo"),
		),
		Add:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Toggle: key.NewBinding(key.WithKeys("space", "x"), key.WithHelp("space", "toggle")),
		Remove: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Remove, k.Undo, k.Redo, k.Focus, k.Quit}
}

// FullHelp returns every binding grouped by area.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Focus, k.Quit},
		{k.Up, k.Down, k.Toggle, k.Remove},
		{k.Undo, k.Redo},
	}
}

var guideSections = []string{"General", "List", "History"}

// KeyGuide renders the key bindings as a markdown document.
func (k KeyMap) KeyGuide() string {
	var b strings.Builder
	b.WriteString("# retodo key bindings\n\n")
	b.WriteString("Every change is recorded. Undo walks back one change at a time and redo\n")
	b.WriteString("re-applies it. Making a new change after undoing discards the redo steps.\n")

	for i, group := range k.FullHelp() {
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n| --- | --- |\n", guideSections[i])
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}

	return b.String()
}
