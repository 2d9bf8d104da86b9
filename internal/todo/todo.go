// Package todo implements todo list operations on top of two line stores:
// pending todos and done entries.
package todo

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/rprtr258/todo/internal/store"
)

const dateLayout = "2006-01-02"

const Usage = `Usage :-
$ ./todo add "todo item"  # Add a new todo
$ ./todo ls               # Show remaining todos
$ ./todo del NUMBER       # Delete a todo
$ ./todo done NUMBER      # Complete a todo
$ ./todo help             # Show usage
$ ./todo report           # Statistics`

type List struct {
	Todos  *store.Store
	Done   *store.Store
	Out    io.Writer
	Now    func() time.Time
	Logger *log.Logger
}

func New(todos, done *store.Store, out io.Writer, logger *log.Logger) *List {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &List{
		Todos:  todos,
		Done:   done,
		Out:    out,
		Now:    time.Now,
		Logger: logger,
	}
}

// Today is current local calendar date, e.g. 2022-12-31.
func (l *List) Today() string {
	return l.Now().Local().Format(dateLayout)
}

// Init creates both list files if missing.
func (l *List) Init() error {
	if err := l.Todos.Ensure(); err != nil {
		return err
	}

	return l.Done.Ensure()
}

func (l *List) Pending() ([]string, error) {
	return l.Todos.ReadLines()
}

func (l *List) Completed() ([]string, error) {
	return l.Done.ReadLines()
}

func (l *List) Add(text *string) error {
	if text == nil {
		return missing("Error: Missing todo string. Nothing added!")
	}

	if err := l.Todos.AppendLine(*text); err != nil {
		return err
	}

	fmt.Fprintf(l.Out, "Added todo: \"%s\"\n", *text)
	return nil
}

// Ls prints todos newest first, each numbered by its position in the file.
func (l *List) Ls() error {
	todos, err := l.Todos.ReadLines()
	if err != nil {
		return err
	}

	rows := lo.Map(todos, func(todo string, i int) string {
		return fmt.Sprintf("[%d] %s", i+1, todo)
	})
	fmt.Fprintln(l.Out, strings.TrimSpace(strings.Join(lo.Reverse(rows), "\n")))

	if len(todos) == 0 {
		fmt.Fprintln(l.Out, "There are no pending todos!")
	}

	return nil
}

func (l *List) Del(arg *string) error {
	if arg == nil {
		return missing("Error: Missing NUMBER for deleting todo.")
	}

	n, label, ok, err := l.resolve(*arg)
	if err != nil {
		return err
	}
	if !ok {
		return notExists("Error: todo #%s does not exist. Nothing deleted.", label)
	}

	if _, err := l.Todos.DeleteLine(n); err != nil {
		return err
	}

	fmt.Fprintf(l.Out, "Deleted todo #%d\n", n)
	return nil
}

func (l *List) MarkDone(arg *string) error {
	if arg == nil {
		return missing("Error: Missing NUMBER for marking todo as done.")
	}

	n, label, ok, err := l.resolve(*arg)
	if err != nil {
		return err
	}
	if !ok {
		return notExists("Error: todo #%s does not exist.", label)
	}

	todo, err := l.Todos.DeleteLine(n)
	if err != nil {
		return err
	}

	if err := l.Done.AppendLine("x " + l.Today() + " " + todo); err != nil {
		return err
	}

	fmt.Fprintf(l.Out, "Marked todo #%d as done.\n", n)
	return nil
}

func (l *List) Report() error {
	pending, err := l.Todos.Count()
	if err != nil {
		return err
	}

	completed, err := l.Done.Count()
	if err != nil {
		return err
	}

	fmt.Fprintf(l.Out, "%s Pending : %d Completed : %d\n", l.Today(), pending, completed)
	return nil
}

func (l *List) Help() {
	fmt.Fprintln(l.Out, Usage)
}

// resolve parses todo number and checks that such todo exists now. label
// is how the number is shown back to the user.
func (l *List) resolve(arg string) (n int, label string, ok bool, err error) {
	n, err = strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		l.Logger.Debug("not a number", "arg", arg, "err", err)
		return 0, arg, false, nil
	}

	count, err := l.Todos.Count()
	if err != nil {
		return 0, "", false, err
	}

	l.Logger.Debug("resolving todo", "n", n, "pending", count)
	return n, strconv.Itoa(n), n >= 1 && n <= count, nil
}
