package trie

// Equal reports whether t and other hold the same set of words. The shape of
// the underlying trees and the order of insertion do not matter.
func (t *Trie) Equal(other *Trie) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.count != other.count {
		return false
	}
	if t.tree == other.tree {
		return true
	}

	words := make(map[string]struct{}, t.count)
	for _, w := range t.Words() {
		words[w] = struct{}{}
	}
	equal := true
	other.Walk("", func(w string) bool {
		_, equal = words[w]
		return equal
	})
	return equal
}
