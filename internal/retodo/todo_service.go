package retodo

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/retodo/internal/core/command"
	"github.com/colonyops/retodo/internal/core/todo"
)

var (
	// ErrNoState is returned when a TodoService is built without a state owner.
	ErrNoState = errors.New("todo service requires a state")
	// ErrNoHistory is returned when a TodoService is built without a history.
	ErrNoHistory = errors.New("todo service requires a command history")
)

// IDSource generates unique item ids.
type IDSource func() string

// NewUUID is the default IDSource.
func NewUUID() string {
	return uuid.NewString()
}

// TodoService turns todo operations into undoable commands and executes them
// through a command history. It is not safe for concurrent use.
type TodoService struct {
	state   todo.State
	history *command.History
	newID   IDSource
	log     zerolog.Logger
}

// NewTodoService creates a new TodoService. A nil newID falls back to NewUUID.
func NewTodoService(state todo.State, history *command.History, newID IDSource, log zerolog.Logger) (*TodoService, error) {
	if state == nil {
		return nil, ErrNoState
	}
	if history == nil {
		return nil, ErrNoHistory
	}
	if newID == nil {
		newID = NewUUID
	}

	return &TodoService{
		state:   state,
		history: history,
		newID:   newID,
		log:     log.With().Str("component", "todo-service").Logger(),
	}, nil
}

// Add inserts a pending item. Blank text is recorded as a no-op command.
func (s *TodoService) Add(text string) {
	s.Insert(text, false)
}

// Insert appends an item with the given completed flag. Blank text is recorded
// as a no-op command so that it can still be undone and redone.
func (s *TodoService) Insert(text string, completed bool) {
	cmd := &insertCommand{
		state:    s.state,
		snapshot: s.snapshot(),
		item: todo.Item{
			ID:        s.newID(),
			Text:      text,
			Completed: completed,
		},
	}

	if todo.IsBlank(text) {
		s.log.Debug().Msg("blank todo text, recording no-op insert")
	}

	s.history.Execute(cmd)
}

// Toggle inverts the completed flag of the item matching id.
func (s *TodoService) Toggle(id string) {
	s.logTarget("toggle", id)
	s.history.Execute(&toggleCommand{
		state:    s.state,
		snapshot: s.snapshot(),
		id:       id,
	})
}

// Remove deletes the first item matching id.
func (s *TodoService) Remove(id string) {
	s.logTarget("remove", id)
	s.history.Execute(&removeCommand{
		state:    s.state,
		snapshot: s.snapshot(),
		id:       id,
	})
}

// Undo reverts the most recent command, if any.
func (s *TodoService) Undo() {
	s.history.Undo()
}

// Redo re-applies the most recently undone command, if any.
func (s *TodoService) Redo() {
	s.history.Redo()
}

// Todos returns a copy of the current list.
func (s *TodoService) Todos() []todo.Item {
	return slices.Clone(s.state.Todos())
}

// History returns the history backing the service.
func (s *TodoService) History() *command.History {
	return s.history
}

// logTarget logs the item an operation addresses. A missing id still records
// a command, which leaves the list unchanged.
func (s *TodoService) logTarget(op, id string) {
	item, ok := todo.Find(s.state.Todos(), id)
	if !ok {
		s.log.Debug().Str("op", op).Str("id", id).Msg("no todo with id, recording no-op")
		return
	}
	s.log.Debug().Str("op", op).Str("id", id).Str("text", item.Text).Bool("completed", item.Completed).Msg("target todo")
}

func (s *TodoService) snapshot() []todo.Item {
	return slices.Clone(s.state.Todos())
}
