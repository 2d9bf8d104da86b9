package cmds

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todo/internal/export"
	"github.com/rprtr258/todo/internal/todo"
)

var renderers = map[string]func(io.Writer, []export.Entry) error{
	"md":       export.Markdown,
	"markdown": export.Markdown,
	"html":     export.HTML,
}

var ExportCmd = &cli.Command{
	Name:            "export",
	Usage:           "print both lists as markdown or html",
	ArgsUsage:       "[md|html]",
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		format := "md"
		if f := arg(ctx); f != nil {
			format = *f
		}

		render, ok := renderers[format]
		if !ok {
			return report(ctx, &todo.UserError{
				Kind:    ErrInvalidCommand,
				Message: fmt.Sprintf("Error: unknown export format %q.", format),
			})
		}

		list := List(ctx)
		pending, err := list.Pending()
		if err != nil {
			return err
		}

		done, err := list.Completed()
		if err != nil {
			return err
		}

		return render(list.Out, export.Entries(pending, done))
	},
}
