// Package store keeps an ordered list of strings in a plain text file,
// one entry per line.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

var ErrLineOutOfRange = errors.New("line number out of range")

// Store is a line-oriented text file.
type Store struct {
	Path   string
	Logger *log.Logger
}

func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Store{
		Path:   path,
		Logger: logger,
	}
}

// Ensure creates empty file if it does not exist yet.
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.Path, err)
	}

	s.Logger.Debug("creating list file", "path", s.Path)
	if err := os.WriteFile(s.Path, nil, 0o644); err != nil {
		return fmt.Errorf("create %s: %w", s.Path, err)
	}

	return nil
}

// ReadLines returns non-empty lines of the file in file order.
func (s *Store) ReadLines() ([]string, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	lines := lo.Filter(strings.Split(string(content), "\n"), func(line string, _ int) bool {
		return line != ""
	})
	s.Logger.Debug("read list", "path", s.Path, "lines", len(lines))
	return lines, nil
}

func (s *Store) Count() (int, error) {
	lines, err := s.ReadLines()
	if err != nil {
		return 0, err
	}

	return len(lines), nil
}

// AppendLine appends text and a newline to existing file. A file left
// without trailing newline by DeleteLine gets a separator first.
func (s *Store) AppendLine(text string) error {
	file, err := os.OpenFile(s.Path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer file.Close()

	needsSeparator, err := missingTrailingNewline(file)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", s.Path, err)
	}

	var buf bytes.Buffer
	if needsSeparator {
		buf.WriteByte('\n')
	}
	buf.WriteString(text)
	buf.WriteByte('\n')

	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("append to %s: %w", s.Path, err)
	}

	s.Logger.Debug("appended line", "path", s.Path, "separator", needsSeparator)
	return file.Close()
}

// DeleteLine removes line number n (1-based) and returns its text. The
// rest is written back joined by newlines, without a trailing one.
func (s *Store) DeleteLine(n int) (string, error) {
	lines, err := s.ReadLines()
	if err != nil {
		return "", err
	}

	if n < 1 || n > len(lines) {
		return "", fmt.Errorf("delete line %d of %d in %s: %w", n, len(lines), s.Path, ErrLineOutOfRange)
	}

	removed := lines[n-1]
	rest := append(lines[:n-1:n-1], lines[n:]...)
	if err := os.WriteFile(s.Path, []byte(strings.Join(rest, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", s.Path, err)
	}

	s.Logger.Debug("deleted line", "path", s.Path, "n", n, "lines", len(rest))
	return removed, nil
}

func missingTrailingNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}

	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}

	return last[0] != '\n', nil
}
