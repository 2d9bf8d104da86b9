// Package config resolves where todo lists live.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v2"
)

const (
	DefaultTodoFile = "todo.txt"
	DefaultDoneFile = "done.txt"
)

type Config struct {
	TodoFile string `ini:"todo_file" yaml:"todo_file"`
	DoneFile string `ini:"done_file" yaml:"done_file"`
	Debug    bool   `ini:"debug" yaml:"debug"`
}

// Default config keeps both lists in working directory.
func Default() Config {
	return Config{
		TodoFile: DefaultTodoFile,
		DoneFile: DefaultDoneFile,
	}
}

// Load reads config file over defaults. Format is picked by extension:
// .ini or .yaml/.yml. Relative list paths are resolved against directory
// of the config file.
func Load(filename string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fromFile Config
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".ini":
		file, err := ini.Load(content)
		if err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", filename, err)
		}

		if err := file.Section(ini.DefaultSection).MapTo(&fromFile); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(bytes.NewReader(content)).Decode(&fromFile); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse config %s: %w", filename, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q, config=%q", ext, filename)
	}

	dir := filepath.Dir(filename)
	if fromFile.TodoFile != "" {
		cfg.TodoFile = resolve(dir, fromFile.TodoFile)
	}
	if fromFile.DoneFile != "" {
		cfg.DoneFile = resolve(dir, fromFile.DoneFile)
	}
	cfg.Debug = fromFile.Debug

	return cfg, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}
