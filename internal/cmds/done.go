package cmds

import (
	"github.com/urfave/cli/v2"
)

var DoneCmd = &cli.Command{
	Name:            "done",
	Usage:           "complete a todo",
	ArgsUsage:       "NUMBER",
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		return report(ctx, List(ctx).MarkDone(arg(ctx)))
	},
}
