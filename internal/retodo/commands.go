package retodo

import (
	"fmt"
	"slices"

	"github.com/colonyops/retodo/internal/core/todo"
)

// Each command captures the list as it was when the command was built and
// restores that snapshot on Undo. Execute always reads the live list so a
// redo after other commands applies to the current state.

type insertCommand struct {
	state    todo.State
	snapshot []todo.Item
	item     todo.Item
}

func (c *insertCommand) Execute() {
	if todo.IsBlank(c.item.Text) {
		return
	}
	c.state.SetTodos(todo.Append(c.state.Todos(), c.item))
}

func (c *insertCommand) Undo() {
	c.state.SetTodos(slices.Clone(c.snapshot))
}

func (c *insertCommand) Description() string {
	return fmt.Sprintf("insert %q", c.item.Text)
}

type toggleCommand struct {
	state    todo.State
	snapshot []todo.Item
	id       string
}

func (c *toggleCommand) Execute() {
	c.state.SetTodos(todo.Toggle(c.state.Todos(), c.id))
}

func (c *toggleCommand) Undo() {
	c.state.SetTodos(slices.Clone(c.snapshot))
}

func (c *toggleCommand) Description() string {
	return "toggle " + c.id
}

type removeCommand struct {
	state    todo.State
	snapshot []todo.Item
	id       string
}

func (c *removeCommand) Execute() {
	c.state.SetTodos(todo.Remove(c.state.Todos(), c.id))
}

func (c *removeCommand) Undo() {
	c.state.SetTodos(slices.Clone(c.snapshot))
}

func (c *removeCommand) Description() string {
	return "remove " + c.id
}
