package cmds

import (
	"github.com/urfave/cli/v2"
)

var HelpCmd = &cli.Command{
	Name:            "help",
	Usage:           "show usage",
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		List(ctx).Help()
		return nil
	},
}
