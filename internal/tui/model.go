// Package tui implements the interactive todo list.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/retodo/internal/core/config"
	"github.com/colonyops/retodo/internal/core/styles"
	"github.com/colonyops/retodo/internal/core/todo"
	"github.com/colonyops/retodo/internal/retodo"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the bubbletea model for a single editing session. All mutations go
// through the todo service; undo and redo never touch the list directly.
type Model struct {
	todos  *retodo.TodoService
	keys   KeyMap
	input  textinput.Model
	focus  focusArea
	cursor int
	width  int
	height int
}

// New creates the model for the given session.
func New(todos *retodo.TodoService, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new todo..."
	ti.Prompt = "+ "
	ti.SetWidth(40)
	ti.Focus()

	return Model{
		todos:  todos,
		keys:   NewKeyMap(cfg.Keys),
		input:  ti,
		focus:  focusInput,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(msg.Width-8, 10))
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Undo):
		m.todos.Undo()
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.keys.Redo):
		m.todos.Redo()
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		return m, m.toggleFocus()
	}

	if m.focus == focusInput {
		if key.Matches(msg, m.keys.Add) {
			m.todos.Add(m.input.Value())
			m.input.Reset()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	items := m.todos.Todos()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(items) > 0 {
			m.todos.Toggle(items[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Remove):
		if len(items) > 0 {
			m.todos.Remove(items[m.cursor].ID)
			m.clampCursor()
		}
	}

	return m, nil
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		m.clampCursor()
		return nil
	}

	m.focus = focusInput
	return m.input.Focus()
}

// clampCursor keeps the selection inside the list after it shrinks.
func (m *Model) clampCursor() {
	n := len(m.todos.Todos())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	title := styles.TitleStyle.Render("retodo")

	inputStyle := styles.InputStyle
	if m.focus == focusInput {
		inputStyle = styles.InputFocusStyle
	}
	input := inputStyle.Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		input,
		"",
		m.renderList(),
		"",
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderList() string {
	items := m.todos.Todos()
	if len(items) == 0 {
		return styles.TextMutedStyle.Render("Nothing to do")
	}

	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = m.renderItem(i, it)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderItem(i int, it todo.Item) string {
	glyph := styles.GlyphPending
	textStyle := styles.ItemStyle
	if it.Completed {
		glyph = styles.GlyphCompleted
		textStyle = styles.ItemDoneStyle
	}

	prefix := "  "
	if m.focus == focusList && i == m.cursor {
		prefix = styles.ItemCursorStyle.Render(styles.GlyphCursor) + " "
	}

	return prefix + glyph + " " + textStyle.Render(it.Text)
}

func (m Model) renderStatus() string {
	h := m.todos.History()
	status := fmt.Sprintf("undo %d · redo %d", h.UndoDepth(), h.RedoDepth())
	if !h.CanUndo() && !h.CanRedo() {
		return styles.StatusEmptyStyle.Render(status)
	}
	return styles.StatusStyle.Render(status)
}

func (m Model) renderHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styles.HelpStyle.Render(strings.Join(parts, "  "))
}
