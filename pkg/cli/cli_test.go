package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(out *bytes.Buffer) *Context {
	return &Context{Logger: zerolog.Nop(), Out: out}
}

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Fixture file should be writable")
	return path
}

// TestCollectWordsFromText verifies plain text parsing: one word per
// line, blank lines and surrounding whitespace ignored.
func TestCollectWordsFromText(t *testing.T) {
	file := writeTempFile(t, "words.txt", "Hello\n\n  Hell  \nHam\n")

	words, err := collectWords([]string{"first"}, []string{file})
	require.NoError(t, err, "Text word list should parse")
	assert.Equal(t, []string{"first", "Hello", "Hell", "Ham"}, words, "Arguments should come first, then file words in order")
}

// TestCollectWordsFromJson verifies JSON array parsing.
func TestCollectWordsFromJson(t *testing.T) {
	file := writeTempFile(t, "words.json", `["Hello", "Hell", "Ham"]`)

	words, err := collectWords(nil, []string{file})
	require.NoError(t, err, "JSON word list should parse")
	assert.Equal(t, []string{"Hello", "Hell", "Ham"}, words, "JSON words should keep array order")
}

// TestCollectWordsBadJson verifies malformed input surfaces as an error
// naming the file.
func TestCollectWordsBadJson(t *testing.T) {
	file := writeTempFile(t, "words.json", `{"not": "an array"}`)

	_, err := collectWords(nil, []string{file})
	assert.ErrorContains(t, err, "words.json", "Parse errors should name the offending file")
}

// TestRenderCmd verifies the end to end render output for a small word
// list.
func TestRenderCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &RenderCmd{
		Words:          []string{"Hi"},
		EntryPrefix:    "├── ",
		FinalPrefix:    "└── ",
		TerminalSuffix: "**",
		AlignmentWidth: 4,
	}

	require.NoError(t, cmd.Run(testContext(&out)), "Render should succeed")
	expected := "Root\n" +
		"└── H\n" +
		"    └── i**\n"
	assert.Equal(t, expected, out.String(), "Render should print the diagram and a final newline")
}

// TestRenderCmdDelete verifies --delete unmarks words without removing
// their nodes from the diagram.
func TestRenderCmdDelete(t *testing.T) {
	var out bytes.Buffer
	cmd := &RenderCmd{
		Words:          []string{"Hi"},
		Delete:         []string{"Hi"},
		EntryPrefix:    "├── ",
		FinalPrefix:    "└── ",
		TerminalSuffix: "**",
		AlignmentWidth: 4,
	}

	require.NoError(t, cmd.Run(testContext(&out)), "Render should succeed")
	expected := "Root\n" +
		"└── H\n" +
		"    └── i\n"
	assert.Equal(t, expected, out.String(), "Deleted word should render without the terminal mark")
}

// TestFindCmd verifies membership reporting and the non-zero exit path.
func TestFindCmd(t *testing.T) {
	file := writeTempFile(t, "words.txt", "Hello\nHell\n")

	var out bytes.Buffer
	cmd := &FindCmd{
		Queries: []string{"Hell", "He"},
		Files:   []string{file},
	}

	err := cmd.Run(testContext(&out))
	assert.ErrorContains(t, err, "1 of 2", "Missing queries should fail the command")
	assert.Contains(t, out.String(), "Hell: found", "Present words should be reported found")
	assert.Contains(t, out.String(), "He: not found", "Absent words should be reported not found")
}

// TestFindCmdAllPresent verifies the happy path returns no error.
func TestFindCmdAllPresent(t *testing.T) {
	var out bytes.Buffer
	cmd := &FindCmd{
		Queries: []string{"Hello", ""},
		Words:   []string{"Hello"},
	}

	assert.NoError(t, cmd.Run(testContext(&out)), "All-present queries should succeed; the empty word is always present")
}
