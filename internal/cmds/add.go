package cmds

import (
	"github.com/urfave/cli/v2"
)

var AddCmd = &cli.Command{
	Name:            "add",
	Usage:           "add a new todo",
	ArgsUsage:       `"todo item"`,
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		return report(ctx, List(ctx).Add(arg(ctx)))
	},
}
