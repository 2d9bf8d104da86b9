package cmds

import (
	"github.com/urfave/cli/v2"
)

var LsCmd = &cli.Command{
	Name:            "ls",
	Usage:           "show remaining todos",
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		return report(ctx, List(ctx).Ls())
	},
}
