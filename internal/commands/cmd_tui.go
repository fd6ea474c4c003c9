package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/retodo/internal/core/logging"
	"github.com/colonyops/retodo/internal/retodo"
	"github.com/colonyops/retodo/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *retodo.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *retodo.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Register adds the tui command to the application
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "tui",
		Usage: "Open the interactive todo list",
		Description: `Opens the interactive todo list. This is also the default when retodo
is run without a subcommand.

The list lives only for the duration of the session. Undo and redo walk
through every change made since the list was opened.`,
		Action: cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	if out := cmd.flags.LogOutput; out != nil {
		out.Hold()
		defer func() {
			if err := out.Release(); err != nil {
				fmt.Println("failed to flush logs:", err)
			}
		}()
	}

	ctx = logging.WithSessionID(ctx, cmd.app.SessionID)
	log.Info().Ctx(ctx).Msg("starting tui")

	m := tui.New(cmd.app.Todos, cmd.app.Config)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Info().Ctx(ctx).
		Int("todos", len(cmd.app.Todos.Todos())).
		Int("history", cmd.app.History.Len()).
		Msg("tui stopped")

	return nil
}
