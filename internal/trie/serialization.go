package trie

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serialization format:
// A trie is encoded as the flat list of its words and decoded by inserting
// every word of such a list. The order of the encoded words is unspecified.
//   - JSON: an array of strings
//   - YAML: a sequence of strings
//   - text: one word per line, blank lines ignored on read

var (
	_ json.Marshaler   = (*Trie)(nil)
	_ json.Unmarshaler = (*Trie)(nil)
	_ yaml.Marshaler   = (*Trie)(nil)
	_ yaml.Unmarshaler = (*Trie)(nil)
	_ io.WriterTo      = (*Trie)(nil)
	_ io.ReaderFrom    = (*Trie)(nil)
)

// MarshalJSON encodes the trie as a JSON array of its words
func (t *Trie) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Words())
}

// UnmarshalJSON replaces the contents of the trie with the words of a JSON
// array of strings
func (t *Trie) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return err
	}
	t.replace(words)
	return nil
}

// MarshalYAML encodes the trie as a YAML sequence of its words
func (t *Trie) MarshalYAML() (interface{}, error) {
	return t.Words(), nil
}

// UnmarshalYAML replaces the contents of the trie with the words of a YAML
// sequence of strings
func (t *Trie) UnmarshalYAML(value *yaml.Node) error {
	var words []string
	if err := value.Decode(&words); err != nil {
		return err
	}
	t.replace(words)
	return nil
}

// ErrUnencodable is returned by WriteTo for a word the line format cannot
// carry: one containing a line break or starting or ending with whitespace.
var ErrUnencodable = errors.New("word cannot be encoded as a line")

// WriteTo writes one word per line to w. Nothing is written if some word
// would not read back unchanged.
func (t *Trie) WriteTo(w io.Writer) (int64, error) {
	var bad string
	t.Walk("", func(word string) bool {
		if strings.ContainsRune(word, '\n') || strings.TrimSpace(word) != word {
			bad = word
			return false
		}
		return true
	})
	if bad != "" {
		return 0, fmt.Errorf("%w: %q", ErrUnencodable, bad)
	}

	bw := bufio.NewWriter(w)
	var written int64
	var err error
	t.Walk("", func(word string) bool {
		var n int
		n, err = bw.WriteString(word + "\n")
		written += int64(n)
		return err == nil
	})
	if err != nil {
		return written, fmt.Errorf("failed to write word: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush words: %w", err)
	}
	return written, nil
}

// ReadFrom inserts every non-blank line of r into the trie. Surrounding
// whitespace is trimmed from each line. Lines have no length limit.
func (t *Trie) ReadFrom(r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	var read int64
	for {
		line, err := br.ReadString('\n')
		read += int64(len(line))
		if word := strings.TrimSpace(line); word != "" {
			t.Insert(word)
		}
		if err == io.EOF {
			return read, nil
		}
		if err != nil {
			return read, fmt.Errorf("failed to read words: %w", err)
		}
	}
}

// replace swaps the contents of t for a fresh trie built from words
func (t *Trie) replace(words []string) {
	old := t.tree
	t.own(newTree())
	t.count = 0
	if old != nil {
		old.refs.Add(-1)
	}
	for _, w := range words {
		t.Insert(w)
	}
}
