package trie

import "fmt"

// RenderConfig controls how Prettify draws the tree.
type RenderConfig[E comparable] struct {
	EntryPrefix    string         // glyph for a sibling that is not the last at its level
	FinalPrefix    string         // glyph for the last sibling at its level
	TerminalSuffix string         // appended to a line iff the node is terminal
	AlignmentWidth int            // padding runes added per depth level
	Label          func(E) string // element to text conversion
}

// RenderOption mutates a RenderConfig before rendering.
type RenderOption[E comparable] func(*RenderConfig[E])

func defaultRenderConfig[E comparable]() RenderConfig[E] {
	return RenderConfig[E]{
		EntryPrefix:    "├── ",
		FinalPrefix:    "└── ",
		TerminalSuffix: "**",
		AlignmentWidth: 4,
		Label:          func(element E) string { return fmt.Sprint(element) },
	}
}

// WithEntryPrefix sets the glyph drawn before a sibling that is not the
// last child at its level.
func WithEntryPrefix[E comparable](prefix string) RenderOption[E] {
	return func(c *RenderConfig[E]) {
		c.EntryPrefix = prefix
	}
}

// WithFinalPrefix sets the glyph drawn before the last child at its
// level. Last is by insertion order, not by any sorting.
func WithFinalPrefix[E comparable](prefix string) RenderOption[E] {
	return func(c *RenderConfig[E]) {
		c.FinalPrefix = prefix
	}
}

// WithTerminalSuffix sets the marker appended to terminal nodes.
func WithTerminalSuffix[E comparable](suffix string) RenderOption[E] {
	return func(c *RenderConfig[E]) {
		c.TerminalSuffix = suffix
	}
}

// WithAlignmentWidth sets how many padding runes each depth level adds.
func WithAlignmentWidth[E comparable](width int) RenderOption[E] {
	return func(c *RenderConfig[E]) {
		c.AlignmentWidth = width
	}
}

// WithLabel sets the element to text conversion used for node lines.
func WithLabel[E comparable](label func(E) string) RenderOption[E] {
	return func(c *RenderConfig[E]) {
		if label != nil {
			c.Label = label
		}
	}
}
