package cmds

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// NewApp builds todo command line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:            "todo",
		Usage:           "plain text todo list",
		HideHelp:        true,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file, .ini or .yaml",
				EnvVars: []string{"TODO_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "todo-file",
				Usage:   "pending todos file",
				EnvVars: []string{"TODO_FILE"},
			},
			&cli.StringFlag{
				Name:    "done-file",
				Usage:   "completed todos file",
				EnvVars: []string{"TODO_DONE"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log file operations",
				EnvVars: []string{"TODO_DEBUG"},
			},
		},
		Before: Setup,
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Present() {
				return report(ctx, invalidCommand)
			}

			List(ctx).Help()
			return nil
		},
		OnUsageError: func(ctx *cli.Context, err error, _ bool) error {
			fmt.Fprintln(ctx.App.Writer, invalidCommand.Message)
			return nil
		},
		Commands: []*cli.Command{
			AddCmd,
			LsCmd,
			DelCmd,
			DoneCmd,
			ReportCmd,
			HelpCmd,
			ExportCmd,
			MenuCmd,
		},
	}
}
