package cli

import (
	"fmt"

	"github.com/khalid-nowaf/trieview/pkg/trie"
)

// RenderCmd builds a trie from word lists and prints it as a tree
// diagram.
type RenderCmd struct {
	Words          []string `arg:"" optional:"" help:"Words to insert into the trie"`
	Files          []string `short:"f" type:"existingfile" help:"Word list files, plain text (one word per line) or a JSON array of strings"`
	Delete         []string `short:"d" help:"Words to unmark after insertion (nodes are kept)"`
	EntryPrefix    string   `help:"Prefix glyph for a sibling that is not the last at its level" default:"├── "`
	FinalPrefix    string   `help:"Prefix glyph for the last sibling at its level" default:"└── "`
	TerminalSuffix string   `help:"Marker appended to nodes where a word ends" default:"**"`
	AlignmentWidth int      `help:"Indentation added per depth level" default:"4"`
}

// Run executes the render command.
func (cmd *RenderCmd) Run(ctx *Context) error {
	tr, err := buildTrie(ctx, cmd.Words, cmd.Files)
	if err != nil {
		return err
	}
	for _, word := range cmd.Delete {
		tr.DeleteString(word)
		ctx.Logger.Debug().Str("word", word).Msg("unmarked word")
	}

	diagram := tr.Prettify(
		trie.WithEntryPrefix[rune](cmd.EntryPrefix),
		trie.WithFinalPrefix[rune](cmd.FinalPrefix),
		trie.WithTerminalSuffix[rune](cmd.TerminalSuffix),
		trie.WithAlignmentWidth[rune](cmd.AlignmentWidth),
	)
	_, err = fmt.Fprintln(ctx.Out, diagram)
	return err
}
