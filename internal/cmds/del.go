package cmds

import (
	"github.com/urfave/cli/v2"
)

var DelCmd = &cli.Command{
	Name:            "del",
	Usage:           "delete a todo",
	ArgsUsage:       "NUMBER",
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		return report(ctx, List(ctx).Del(arg(ctx)))
	},
}
