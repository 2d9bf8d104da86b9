package cmds

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todo/internal/rofi"
	"github.com/rprtr258/todo/internal/todo"
)

// MenuCmd is rofi script mode, e.g. rofi -show todo -modi "todo:todo menu".
// Picking a row completes the todo, typing new text adds it.
var MenuCmd = &cli.Command{
	Name:            "menu",
	Usage:           "rofi script mode",
	HideHelp:        true,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		list := List(ctx)
		out := list.Out

		var messages bytes.Buffer
		list.Out = &messages
		defer func() { list.Out = out }()

		var err error
		switch rofi.Retv() {
		case rofi.RetvSelected:
			err = list.MarkDone(lo.ToPtr(rofi.GetInfo()))
		case rofi.RetvCustom:
			err = list.Add(arg(ctx))
		}

		var userErr *todo.UserError
		if errors.As(err, &userErr) {
			messages.WriteString(userErr.Message)
		} else if err != nil {
			return err
		}

		if message := strings.TrimSpace(messages.String()); message != "" {
			rofi.Message(out, message)
		}

		todos, err := list.Pending()
		if err != nil {
			return err
		}

		for i := len(todos) - 1; i >= 0; i-- {
			rofi.YieldItemWithInfo(out, fmt.Sprintf("[%d] %s", i+1, todos[i]), strconv.Itoa(i+1))
		}

		return nil
	},
}
