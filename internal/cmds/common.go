package cmds

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todo/internal/config"
	"github.com/rprtr258/todo/internal/logging"
	"github.com/rprtr258/todo/internal/store"
	"github.com/rprtr258/todo/internal/todo"
)

const listKey = "list"

var ErrInvalidCommand = errors.New("invalid command")

var invalidCommand = &todo.UserError{Kind: ErrInvalidCommand, Message: "Invalid Command!"}

// Setup resolves config and creates list files, so that every command,
// even unknown one, starts with both files present.
func Setup(ctx *cli.Context) error {
	cfg := config.Default()
	if filename := ctx.String("config"); filename != "" {
		loaded, err := config.Load(filename)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if ctx.IsSet("todo-file") {
		cfg.TodoFile = ctx.String("todo-file")
	}
	if ctx.IsSet("done-file") {
		cfg.DoneFile = ctx.String("done-file")
	}
	if ctx.IsSet("debug") {
		cfg.Debug = ctx.Bool("debug")
	}

	logger := logging.New(ctx.App.ErrWriter, cfg.Debug)
	logger.Debug("config resolved", "todo", cfg.TodoFile, "done", cfg.DoneFile)

	list := todo.New(
		store.New(cfg.TodoFile, logger.WithPrefix("pending")),
		store.New(cfg.DoneFile, logger.WithPrefix("done")),
		ctx.App.Writer,
		logger,
	)
	if err := list.Init(); err != nil {
		return err
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = map[string]any{}
	}
	ctx.App.Metadata[listKey] = list
	return nil
}

// List returns todo list prepared by Setup.
func List(ctx *cli.Context) *todo.List {
	return ctx.App.Metadata[listKey].(*todo.List)
}

// arg returns first positional argument, nil if none given. The rest is
// ignored.
func arg(ctx *cli.Context) *string {
	if !ctx.Args().Present() {
		return nil
	}

	first := ctx.Args().First()
	return &first
}

// report prints user errors and passes others, which are fatal, up.
func report(ctx *cli.Context, err error) error {
	var userErr *todo.UserError
	if errors.As(err, &userErr) {
		fmt.Fprintln(ctx.App.Writer, userErr.Message)
		return nil
	}

	return err
}
