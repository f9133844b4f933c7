package cli

import "fmt"

// FindCmd loads word lists into a trie and reports whether each query is
// present.
type FindCmd struct {
	Queries []string `arg:"" help:"Words to look up"`
	Words   []string `short:"w" help:"Words to insert before looking up"`
	Files   []string `short:"f" type:"existingfile" help:"Word list files, plain text (one word per line) or a JSON array of strings"`
}

// Run executes the find command. It fails if any query is absent, so the
// exit code doubles as a membership check in scripts.
func (cmd *FindCmd) Run(ctx *Context) error {
	tr, err := buildTrie(ctx, cmd.Words, cmd.Files)
	if err != nil {
		return err
	}

	missing := 0
	for _, query := range cmd.Queries {
		if tr.FindString(query) {
			fmt.Fprintf(ctx.Out, "%s: found\n", query)
		} else {
			fmt.Fprintf(ctx.Out, "%s: not found\n", query)
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d words not found", missing, len(cmd.Queries))
	}
	return nil
}
