package trie

// Trie is a generic prefix tree over sequences of comparable elements.
// The zero value is not usable; construct with New.
type Trie[E comparable] struct {
	root *Node[E]
}

// New creates an empty Trie: a root sentinel with no children. The empty
// sequence is considered present from the start.
func New[E comparable]() *Trie[E] {
	return &Trie[E]{root: newRoot[E]()}
}

// Root returns the root sentinel node.
func (t *Trie[E]) Root() *Node[E] {
	return t.root
}

// traverse walks from the root consuming seq one element at a time. With
// createMissing, absent children are created and linked along the way and
// the reached node is always non-nil. Without it, a missing child aborts
// the walk and nil is returned. An empty (or nil) seq reaches the root.
//
// This is the single kernel shared by Insert, Delete and Find; only the
// createMissing path mutates the structure.
func (t *Trie[E]) traverse(seq []E, createMissing bool) *Node[E] {
	current := t.root
	for _, element := range seq {
		next := current.Child(element)
		if next == nil {
			if !createMissing {
				return nil
			}
			next = current.childOrAdd(element)
		}
		current = next
	}
	return current
}

// Insert marks seq as present, creating nodes as needed. Inserting the
// empty sequence is a no-op: the root is always terminal and no nodes
// are created.
func (t *Trie[E]) Insert(seq []E) {
	t.traverse(seq, true).setTerminal(true)
}

// Delete clears the terminal mark of seq. Deleting a sequence that was
// never inserted is a silent no-op, and no nodes are removed either way.
// The empty sequence cannot be deleted; the root stays terminal.
func (t *Trie[E]) Delete(seq []E) {
	if node := t.traverse(seq, false); node != nil {
		node.setTerminal(false)
	}
}

// Find reports whether seq was inserted and not deleted since. The empty
// sequence is always found. Find never mutates the structure.
func (t *Trie[E]) Find(seq []E) bool {
	node := t.traverse(seq, false)
	return node != nil && node.IsTerminal()
}

// StringTrie wraps a rune-element Trie with string-typed helpers for the
// common case of a word trie.
type StringTrie struct {
	*Trie[rune]
}

// NewStrings creates an empty StringTrie.
func NewStrings() *StringTrie {
	return &StringTrie{New[rune]()}
}

func (t *StringTrie) InsertString(word string) {
	t.Insert([]rune(word))
}

func (t *StringTrie) DeleteString(word string) {
	t.Delete([]rune(word))
}

func (t *StringTrie) FindString(word string) bool {
	return t.Find([]rune(word))
}

// Prettify renders the trie with elements drawn as characters rather than
// code point numbers. Options are applied after the rune label, so they
// may still override it.
func (t *StringTrie) Prettify(opts ...RenderOption[rune]) string {
	base := []RenderOption[rune]{WithLabel(func(r rune) string { return string(r) })}
	return t.Trie.Prettify(append(base, opts...)...)
}
