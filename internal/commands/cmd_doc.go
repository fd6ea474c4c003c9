package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/retodo/internal/core/styles"
	"github.com/colonyops/retodo/internal/retodo"
	"github.com/colonyops/retodo/internal/tui"
)

type DocCmd struct {
	flags *Flags
	app   *retodo.App
	raw   bool
}

func NewDocCmd(flags *Flags, app *retodo.App) *DocCmd {
	return &DocCmd{flags: flags, app: app}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Show documentation",
		Description: `Shows documentation for retodo.

Use 'retodo doc keys' to list the key bindings of the interactive list,
including any undo/redo keys set in the config file.`,
		Commands: []*cli.Command{
			cmd.keysCmd(),
		},
	})
	return app
}

func (cmd *DocCmd) keysCmd() *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Show the interactive key bindings",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.runKeys,
	}
}

func (cmd *DocCmd) runKeys(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer
	guide := tui.NewKeyMap(cmd.app.Config.Keys).KeyGuide()

	if cmd.raw {
		_, err := fmt.Fprint(w, guide)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(guide)
	if err != nil {
		return fmt.Errorf("render key guide: %w", err)
	}

	_, err = fmt.Fprint(w, out)
	return err
}
