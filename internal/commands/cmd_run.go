package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/retodo/internal/core/logging"
	"github.com/colonyops/retodo/internal/retodo"
	"github.com/colonyops/retodo/pkg/iojson"
)

type RunCmd struct {
	flags *Flags
	app   *retodo.App
	fr    *iojson.FileReader

	history bool
	pretty  bool
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags, app *retodo.App) *RunCmd {
	return &RunCmd{
		flags: flags,
		app:   app,
		fr:    iojson.NewFileReader(),
	}
}

// HistorySummary describes the history position after a script has run.
type HistorySummary struct {
	Length    int  `json:"length"`
	Cursor    int  `json:"cursor"`
	CanUndo   bool `json:"can_undo"`
	CanRedo   bool `json:"can_redo"`
	UndoDepth int  `json:"undo_depth"`
	RedoDepth int  `json:"redo_depth"`
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Replay a script of todo operations",
		UsageText: "retodo run [-f script.yaml] [--history] [--pretty]",
		Description: `Replays a YAML script against a fresh, empty list and prints the
resulting todos as JSON lines.

Each step holds one operation. toggle and remove take the index of an item
in the list as it is when the step runs. An add with no text is kept as a
step that changes nothing, so it still takes an undo.

  steps:
    - add: Buy milk
    - add: Pay rent
      completed: true
    - toggle: 0
    - remove: 1
    - undo
    - redo

Examples:
  retodo run -f steps.yaml
  cat steps.yaml | retodo run --history
  retodo run -f steps.yaml --pretty`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.BoolFlag{
				Name:        "history",
				Usage:       "print a history summary after the todos",
				Destination: &cmd.history,
			},
			&cli.BoolFlag{
				Name:        "pretty",
				Usage:       "print indented JSON instead of JSON lines",
				Destination: &cmd.pretty,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	r, source, err := cmd.fr.Open()
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	script, err := retodo.ParseScript(r)
	if err != nil {
		return fmt.Errorf("parse script: %w", err)
	}

	ctx = logging.WithSessionID(ctx, cmd.app.SessionID)
	ctx = logging.WithScript(ctx, source)

	if err := script.Run(ctx, cmd.app.Todos, log.Logger); err != nil {
		return fmt.Errorf("run script: %w", err)
	}

	w := c.Root().Writer
	write := iojson.WriteLine
	if cmd.pretty {
		write = iojson.WriteIndent
	}

	for _, item := range cmd.app.Todos.Todos() {
		if err := write(w, item); err != nil {
			return err
		}
	}

	if cmd.history {
		h := cmd.app.History
		return write(w, HistorySummary{
			Length:    h.Len(),
			Cursor:    h.Cursor(),
			CanUndo:   h.CanUndo(),
			CanRedo:   h.CanRedo(),
			UndoDepth: h.UndoDepth(),
			RedoDepth: h.RedoDepth(),
		})
	}

	return nil
}
