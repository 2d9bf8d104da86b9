package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	assert.Equal(t, log.WarnLevel, New(&bytes.Buffer{}, false).GetLevel())
	assert.Equal(t, log.DebugLevel, New(&bytes.Buffer{}, true).GetLevel())
}

func TestNew_DebugHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("read list", "path", "todo.txt")
	assert.Empty(t, buf.String())

	logger.Warn("odd file", "path", "todo.txt")
	assert.Contains(t, buf.String(), "odd file")
	assert.Contains(t, buf.String(), "path=todo.txt")
}
