package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDone(t *testing.T) {
	for line, expected := range map[string]Entry{
		"x 2022-12-31 Buy milk":      {Text: "Buy milk", Done: true, Date: "2022-12-31"},
		"x 2022-12-31 Pay two bills": {Text: "Pay two bills", Done: true, Date: "2022-12-31"},
		"x yesterday Buy milk":       {Text: "yesterday Buy milk", Done: true},
		"handwritten":                {Text: "handwritten", Done: true},
	} {
		assert.Equal(t, expected, ParseDone(line), line)
	}
}

func TestEntries(t *testing.T) {
	entries := Entries([]string{"a", "b"}, []string{"x 2022-12-31 c"})

	assert.Equal(t, []Entry{
		{Text: "a"},
		{Text: "b"},
		{Text: "c", Done: true, Date: "2022-12-31"},
	}, entries)
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, Entries(
		[]string{"Pay bills"},
		[]string{"x 2022-12-31 Buy milk", "odd line"},
	)))

	assert.Equal(t, strings.Join([]string{
		"# Todo",
		"",
		"- [ ] Pay bills",
		"- [x] Buy milk (2022-12-31)",
		"- [x] odd line",
		"",
	}, "\n"), buf.String())
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Entries(
		[]string{"Pay bills"},
		[]string{"x 2022-12-31 Buy milk"},
	)))

	html := buf.String()
	assert.Contains(t, html, "<h1>Todo</h1>")
	assert.Contains(t, html, "<ul>")
	assert.Equal(t, 2, strings.Count(html, `type="checkbox"`))
	assert.Equal(t, 1, strings.Count(html, `checked=""`))
	assert.Contains(t, html, "Pay bills")
	assert.Contains(t, html, "Buy milk (2022-12-31)")
}
