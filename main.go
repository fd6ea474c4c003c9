package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/retodo/internal/commands"
	"github.com/colonyops/retodo/internal/core/config"
	"github.com/colonyops/retodo/internal/core/styles"
	"github.com/colonyops/retodo/internal/retodo"
	"github.com/colonyops/retodo/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// `go install module@version` leaves ldflags unset; fall back to the
	// module version and VCS metadata recorded by the toolchain.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		app       = &retodo.App{}
	)

	flags := &commands.Flags{
		LogOutput: logutils.NewDeferredWriter(os.Stderr),
	}

	root := &cli.Command{
		Name:      "retodo",
		Usage:     "A todo list where every change can be undone and redone",
		UsageText: "retodo [global options] command [command options]",
		Description: `retodo keeps an in-memory todo list and records every change as a
command. Undo steps back through the recorded changes and redo steps forward
again. Making a new change after undoing discards the changes that could
have been redone.

Run 'retodo' with no arguments to open the interactive list.
Run 'retodo run -f steps.yaml' to replay a script of changes.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("RETODO_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logs go to stderr when unset)",
				Sources:     cli.EnvVars("RETODO_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("RETODO_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, flags.LogOutput)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Validation guarantees the theme exists.
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			session, err := retodo.NewApp(cfg, retodo.NewUUID, logger)
			if err != nil {
				return ctx, fmt.Errorf("create session: %w", err)
			}

			// Commands already hold a pointer to app.
			*app = *session

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, app)

	root = tuiCmd.Register(root)
	root = commands.NewRunCmd(flags, app).Register(root)
	root = commands.NewDocCmd(flags, app).Register(root)

	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'retodo --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
