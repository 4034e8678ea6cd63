package trie

import (
	"runtime"
	"sync/atomic"
)

// node represents a node in the trie
type node struct {
	// value is the character on the edge leading to this node.
	// Empty only for the root.
	value string

	// terminating marks if the path from the root to this node is a stored word
	terminating bool

	// children maps the next character to the child node
	children map[string]*node

	// parent is used only to walk upward when pruning. It does not own the node.
	parent *node
}

// newNode creates a new trie node below parent
func newNode(value string, parent *node) *node {
	return &node{
		value:    value,
		children: make(map[string]*node),
		parent:   parent,
	}
}

// add creates a child for ch unless one exists and returns it
func (n *node) add(ch string) *node {
	if child, ok := n.children[ch]; ok {
		return child
	}
	child := newNode(ch, n)
	n.children[ch] = child
	return child
}

// isLeaf reports whether the node has no children
func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// tree is the node graph shared between clones of a Trie.
type tree struct {
	root *node

	// refs counts the Trie values currently sharing root
	refs atomic.Int32
}

func newTree() *tree {
	tr := &tree{root: newNode("", nil)}
	tr.refs.Store(1)
	return tr
}

// Trie represents a set of lower-cased words stored as a character trie.
// The zero value is an empty trie ready to use.
//
// A Trie must not be copied by value; use Clone, which is O(1) and defers
// the actual copy until one side is modified.
type Trie struct {
	tree  *tree
	count int

	// release drops the reference on tree once the Trie is collected
	release runtime.Cleanup
}

// New creates a new empty trie
func New() *Trie {
	t := &Trie{}
	t.own(newTree())
	return t
}

// NewFromWords creates a trie holding every word in words. Duplicates
// (after lower-casing) collapse into one entry.
func NewFromWords(words []string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Clone returns a trie with the same words that shares storage with t
// until either of them is modified.
func (t *Trie) Clone() *Trie {
	t.lazyInit()
	t.tree.refs.Add(1)
	c := &Trie{count: t.count}
	c.own(t.tree)
	return c
}

// Len returns the number of words in the trie
func (t *Trie) Len() int {
	return t.count
}

// IsEmpty reports whether the trie holds no words
func (t *Trie) IsEmpty() bool {
	return t.count == 0
}

// copyNodesIfShared gives t a private tree before a mutation. A shared tree
// is materialised into its word list and rebuilt by reinsertion.
func (t *Trie) copyNodesIfShared() {
	t.lazyInit()
	if t.tree.refs.Load() <= 1 {
		return
	}
	words := t.Words()
	shared := t.tree

	t.own(newTree())
	t.count = 0
	for _, w := range words {
		t.insert(w)
	}
	shared.refs.Add(-1)
}

func (t *Trie) lazyInit() {
	if t.tree == nil {
		t.own(newTree())
	}
}

// own points t at tr. The reference t holds on tr is dropped when t is
// garbage collected; callers release a previously owned tree themselves.
func (t *Trie) own(tr *tree) {
	t.release.Stop()
	t.tree = tr
	t.release = runtime.AddCleanup(t, releaseTree, tr)
}

func releaseTree(tr *tree) {
	tr.refs.Add(-1)
}
