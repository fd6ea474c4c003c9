// Package retodo wires the todo state, the command history and the todo
// service into a single session consumed by commands and the TUI.
package retodo

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/retodo/internal/core/command"
	"github.com/colonyops/retodo/internal/core/config"
	"github.com/colonyops/retodo/internal/core/todo"
	"github.com/colonyops/retodo/pkg/randid"
)

// App owns one editing session. History lives exactly as long as the App.
type App struct {
	SessionID string
	State     *todo.MemoryState
	History   *command.History
	Todos     *TodoService
	Config    *config.Config
}

// NewApp creates a session with an empty list and history.
// A nil newID uses NewUUID.
func NewApp(cfg *config.Config, newID IDSource, log zerolog.Logger) (*App, error) {
	sessionID := randid.Generate(8)
	log = log.With().Str("session_id", sessionID).Logger()

	state := todo.NewMemoryState()
	history := command.NewHistory(log)

	svc, err := NewTodoService(state, history, newID, log)
	if err != nil {
		return nil, fmt.Errorf("create todo service: %w", err)
	}

	return &App{
		SessionID: sessionID,
		State:     state,
		History:   history,
		Todos:     svc,
		Config:    cfg,
	}, nil
}
