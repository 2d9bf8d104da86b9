// Package export renders todo lists as markdown task list or HTML page.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"
	gm "github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Entry struct {
	Text string
	Done bool
	// Date of completion, empty for pending todos.
	Date string
}

// ParseDone parses done list line of form "x 2022-12-31 text". Lines not
// in that form are kept whole as text.
func ParseDone(line string) Entry {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 || parts[0] != "x" {
		return Entry{Text: strings.TrimPrefix(line, "x "), Done: true}
	}

	if _, err := time.Parse("2006-01-02", parts[1]); err != nil {
		return Entry{Text: strings.TrimPrefix(line, "x "), Done: true}
	}

	return Entry{Text: parts[2], Done: true, Date: parts[1]}
}

// Entries joins pending todos, in file order, with done entries.
func Entries(pending, done []string) []Entry {
	return append(
		lo.Map(pending, func(text string, _ int) Entry { return Entry{Text: text} }),
		lo.Map(done, func(line string, _ int) Entry { return ParseDone(line) })...,
	)
}

func (e Entry) markdown() string {
	switch {
	case !e.Done:
		return "- [ ] " + e.Text
	case e.Date == "":
		return "- [x] " + e.Text
	default:
		return fmt.Sprintf("- [x] %s (%s)", e.Text, e.Date)
	}
}

func Markdown(w io.Writer, entries []Entry) error {
	var buf bytes.Buffer
	buf.WriteString("# Todo\n\n")
	for _, entry := range entries {
		buf.WriteString(entry.markdown())
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// HTML renders entries through goldmark with task list checkboxes.
func HTML(w io.Writer, entries []Entry) error {
	var source bytes.Buffer
	if err := Markdown(&source, entries); err != nil {
		return err
	}

	md := gm.New(gm.WithExtensions(extension.TaskList))
	if err := md.Convert(source.Bytes(), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	return nil
}
