package cmds

import (
	"github.com/urfave/cli/v2"
)

var ReportCmd = &cli.Command{
	Name:            "report",
	Usage:           "statistics",
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		return report(ctx, List(ctx).Report())
	},
}
