package cli

import (
	"io"

	"github.com/khalid-nowaf/trieview/pkg/trie"
	"github.com/rs/zerolog"
)

// CLI is the top level command layout.
var CLI struct {
	Render RenderCmd `cmd:"" default:"withargs" help:"Render word lists as a tree diagram"`
	Find   FindCmd   `cmd:"" help:"Check whether words are present in a word list"`
}

// Context carries the shared state commands run against.
type Context struct {
	Logger zerolog.Logger
	Out    io.Writer
}

// buildTrie loads words from direct arguments and word list files into a
// fresh string trie.
func buildTrie(ctx *Context, words []string, files []string) (*trie.StringTrie, error) {
	all, err := collectWords(words, files)
	if err != nil {
		return nil, err
	}
	ctx.Logger.Info().Int("words", len(all)).Int("files", len(files)).Msg("building trie")

	tr := trie.NewStrings()
	for _, word := range all {
		tr.InsertString(word)
	}
	return tr, nil
}
