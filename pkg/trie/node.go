package trie

import "fmt"

// RootLabel is the text the root sentinel renders as. The root is not an
// element of any sequence and has no payload of its own.
const RootLabel = "Root"

// Node is a single node in a Trie. It holds one element of a sequence, a
// terminal flag marking that an inserted sequence ends here, and its
// children keyed by the next element. Children iterate in insertion order:
// the order slice drives iteration and the index gives O(1) lookup.
type Node[E comparable] struct {
	data     E
	terminal bool
	root     bool
	index    map[E]*Node[E]
	order    []*Node[E]
}

func newNode[E comparable](data E) *Node[E] {
	return &Node[E]{data: data}
}

// newRoot creates the root sentinel. The root is permanently terminal:
// the empty sequence is always present.
func newRoot[E comparable]() *Node[E] {
	return &Node[E]{root: true, terminal: true}
}

// Data returns the element stored at this node. For the root it is the
// zero value of E; use Label when rendering.
func (n *Node[E]) Data() E {
	return n.data
}

// IsTerminal reports whether an inserted sequence ends exactly at this
// node. Always true for the root.
func (n *Node[E]) IsTerminal() bool {
	return n.terminal
}

// IsRoot reports whether this node is the root sentinel.
func (n *Node[E]) IsRoot() bool {
	return n.root
}

// IsLeaf reports whether the node has no children.
func (n *Node[E]) IsLeaf() bool {
	return len(n.order) == 0
}

// Child returns the child keyed by element, or nil if there is none.
func (n *Node[E]) Child(element E) *Node[E] {
	return n.index[element]
}

// Children returns the children in insertion order. The returned slice is
// the node's own; callers must not modify it.
func (n *Node[E]) Children() []*Node[E] {
	return n.order
}

// Label returns the node's element as text, or RootLabel for the root.
func (n *Node[E]) Label() string {
	if n.root {
		return RootLabel
	}
	return fmt.Sprint(n.data)
}

// childOrAdd returns the child keyed by element, creating and linking a
// new non-terminal child if none exists yet.
func (n *Node[E]) childOrAdd(element E) *Node[E] {
	if child := n.index[element]; child != nil {
		return child
	}
	child := newNode(element)
	if n.index == nil {
		n.index = map[E]*Node[E]{}
	}
	n.index[element] = child
	n.order = append(n.order, child)
	return child
}

// setTerminal flips the terminal flag. The root's flag is fixed true and
// cannot be cleared.
func (n *Node[E]) setTerminal(terminal bool) {
	if n.root && !terminal {
		return
	}
	n.terminal = terminal
}
