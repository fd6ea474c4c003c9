package todo

import "slices"

// State is the owner of the current todo list. Commands only read the current
// list and replace it wholesale.
type State interface {
	// Todos returns the current list. Callers must not modify it.
	Todos() []Item
	// SetTodos replaces the current list.
	SetTodos(items []Item)
}

// MemoryState holds the list in memory for the lifetime of a session.
type MemoryState struct {
	items []Item
}

// NewMemoryState creates a MemoryState seeded with a copy of items.
func NewMemoryState(items ...Item) *MemoryState {
	return &MemoryState{items: slices.Clone(items)}
}

// Todos returns the current list.
func (s *MemoryState) Todos() []Item {
	return s.items
}

// SetTodos replaces the current list.
func (s *MemoryState) SetTodos(items []Item) {
	s.items = items
}
