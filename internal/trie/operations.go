package trie

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold lower-cases a word the way it is stored in the trie
func fold(word string) string {
	return cases.Lower(language.Und).String(word)
}

// eachCharacter calls f for every extended grapheme cluster in s, in order.
// It stops early when f returns false.
func eachCharacter(s string, f func(ch string) bool) {
	state := -1
	var ch string
	for len(s) > 0 {
		ch, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if !f(ch) {
			return
		}
	}
}

// Insert adds a word to the trie. Empty words are ignored and inserting a
// word that is already present changes nothing.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	t.copyNodesIfShared()
	t.insert(fold(word))
}

// insert adds an already lower-cased word
func (t *Trie) insert(word string) {
	n := t.tree.root
	eachCharacter(word, func(ch string) bool {
		n = n.add(ch)
		return true
	})
	if n.terminating {
		return
	}
	n.terminating = true
	t.count++
}

// Remove deletes a word from the trie. Empty or absent words are ignored.
func (t *Trie) Remove(word string) {
	if word == "" {
		return
	}
	word = fold(word)
	if t.findTerminalNode(word) == nil {
		return
	}
	t.copyNodesIfShared()

	n := t.findTerminalNode(word)
	n.terminating = false
	t.count--

	// Walk up detaching dead leaves. Stop at the first ancestor that is a
	// word itself, still leads to other words, or is the root.
	for n.parent != nil && n.isLeaf() && !n.terminating {
		parent := n.parent
		delete(parent.children, n.value)
		n = parent
	}
}

// Contains reports whether word is stored in the trie.
func (t *Trie) Contains(word string) bool {
	return t.contains(word, false)
}

// ContainsPrefix reports whether some stored word starts with prefix.
//
// The empty prefix reports false even though FindWords("") returns every
// word; callers wanting "is anything stored" should use IsEmpty.
func (t *Trie) ContainsPrefix(prefix string) bool {
	return t.contains(prefix, true)
}

func (t *Trie) contains(word string, matchPrefix bool) bool {
	if word == "" {
		return false
	}
	n := t.findLastNode(fold(word))
	if n == nil {
		return false
	}
	return matchPrefix || n.terminating
}

// findLastNode returns the node reached by walking word from the root, or
// nil if some transition is missing. It doesn't check if the node is
// terminating.
func (t *Trie) findLastNode(word string) *node {
	if t.tree == nil {
		return nil
	}
	n := t.tree.root
	eachCharacter(word, func(ch string) bool {
		n = n.children[ch]
		return n != nil
	})
	return n
}

// findTerminalNode is findLastNode restricted to stored words
func (t *Trie) findTerminalNode(word string) *node {
	n := t.findLastNode(word)
	if n == nil || !n.terminating {
		return nil
	}
	return n
}

// Words returns all words in the trie, unsorted.
func (t *Trie) Words() []string {
	return t.FindWords("")
}

// FindWords returns all words in the trie starting with prefix, unsorted.
// The prefix is lower-cased first; an empty prefix matches every word.
func (t *Trie) FindWords(prefix string) []string {
	words := make([]string, 0)
	t.Walk(prefix, func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// WalkFunc is the type of the function called for each word visited by Walk.
// If the function returns false, the walk stops.
type WalkFunc func(word string) bool

// Walk calls f for every word starting with prefix. The prefix itself is
// visited first when it is a stored word; the order of the remaining words
// is unspecified.
func (t *Trie) Walk(prefix string, f WalkFunc) {
	prefix = fold(prefix)
	start := t.findLastNode(prefix)
	if start == nil {
		return
	}

	type frame struct {
		n    *node
		word string
	}
	stack := []frame{{n: start, word: prefix}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.n.terminating && !f(top.word) {
			return
		}
		for ch, child := range top.n.children {
			stack = append(stack, frame{n: child, word: top.word + ch})
		}
	}
}
