// ## Overview
// Package trie implements a generic trie (prefix tree) keyed by sequences
// of comparable elements. Sequences sharing a prefix share the nodes that
// spell it out; a terminal flag on a node marks that an inserted sequence
// ends exactly there. Insertion, deletion and find are O(k) where k is the
// length of the sequence. Deletion only clears the terminal flag: nodes
// are never removed, so the tree only ever grows.
//
// ## Example usage:
//
//	words := trie.New[rune]()
//	words.Insert([]rune("Hello"))
//	words.Insert([]rune("Hell"))
//
//	fmt.Println(words.Find([]rune("Hell")))  // Output: true
//	fmt.Println(words.Find([]rune("He")))    // Output: false (only a prefix)
//
//	words.Delete([]rune("Hell"))
//	fmt.Println(words.Find([]rune("Hell")))  // Output: false
//
//	// Prettify draws the whole structure as a tree diagram
//	fmt.Println(words.Prettify())
//
// Children of a node iterate in insertion order, and Prettify reproduces
// that order, so the diagram is deterministic for a given insert history.
//
// A Trie is safe for single-threaded use only; callers needing concurrent
// access must add their own synchronization around the whole structure.
package trie
