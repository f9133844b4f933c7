package trie

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prettify renders every node of the trie, terminal or not, as a
// multi-line tree diagram. The root's label is always the first line,
// with no prefix; an empty trie renders as exactly that label. Siblings
// appear in insertion order, and the prefix glyph of each line is
// right-justified in a field that widens by AlignmentWidth runes per
// depth level. Trailing whitespace is trimmed from the very end.
//
// Prettify is read-only and deterministic for a given configuration and
// insert history.
func (t *Trie[E]) Prettify(opts ...RenderOption[E]) string {
	config := defaultRenderConfig[E]()
	for _, opt := range opts {
		opt(&config)
	}

	var out strings.Builder
	out.WriteString(t.root.Label())
	out.WriteByte('\n')

	last := lastChild(t.root)
	for _, child := range t.root.order {
		renderNode(&out, child, &config, 0, child == last)
	}
	return strings.TrimRightFunc(out.String(), unicode.IsSpace)
}

// renderNode writes one line for node and recurses into its children in
// insertion order. finalEntry picks the glyph; the last child is decided
// by position in the order slice, so it holds by node identity.
func renderNode[E comparable](out *strings.Builder, node *Node[E], config *RenderConfig[E], depth int, finalEntry bool) {
	prefix := config.EntryPrefix
	if finalEntry {
		prefix = config.FinalPrefix
	}
	width := utf8.RuneCountInString(prefix) + config.AlignmentWidth*depth
	out.WriteString(rightJustify(prefix, width))
	out.WriteString(config.Label(node.data))
	if node.terminal {
		out.WriteString(config.TerminalSuffix)
	}
	out.WriteByte('\n')

	last := lastChild(node)
	for _, child := range node.order {
		renderNode(out, child, config, depth+1, child == last)
	}
}

func lastChild[E comparable](n *Node[E]) *Node[E] {
	if len(n.order) == 0 {
		return nil
	}
	return n.order[len(n.order)-1]
}

// rightJustify pads s with leading spaces up to width runes. A string
// already at or past width is returned unchanged.
func rightJustify(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
