package wordlist

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/wordtrie/internal/trie"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadFormats(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{
			name:    "text",
			file:    "words.txt",
			content: "Apple\n\nbanana\napple\n",
			want:    []string{"apple", "banana"},
		},
		{
			name:    "json",
			file:    "words.json",
			content: `["Cherry", "date", "cherry"]`,
			want:    []string{"cherry", "date"},
		},
		{
			name:    "yaml",
			file:    "words.yaml",
			content: "- elder\n- Fig\n",
			want:    []string{"elder", "fig"},
		},
		{
			name:    "empty yaml",
			file:    "empty.yml",
			content: "",
			want:    []string{},
		},
	}

	loader := NewLoader(0, zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			got, err := loader.Load(context.Background(), path)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got.Words())
		})
	}
}

func TestLoader_LoadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "cut\ncute\n")
	b := writeFile(t, dir, "b.json", `["CUTE", "cutie"]`)

	var logs bytes.Buffer
	loader := NewLoader(10*bytesize.KB, zerolog.New(&logs))
	got, err := loader.Load(context.Background(), a, b)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Len())
	assert.ElementsMatch(t, []string{"cut", "cute", "cutie"}, got.Words())
	assert.Contains(t, logs.String(), "Loaded word lists")
}

func TestLoader_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	big := writeFile(t, dir, "big.txt", strings.Repeat("word\n", 400))
	unknown := writeFile(t, dir, "words.csv", "a,b")
	badJSON := writeFile(t, dir, "bad.json", `{"a": 1}`)

	loader := NewLoader(1*bytesize.KB, zerolog.Nop())
	ctx := context.Background()

	_, err := loader.Load(ctx, big)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = loader.Load(ctx, unknown)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = loader.Load(ctx, badJSON)
	assert.Error(t, err)

	_, err = loader.Load(ctx, filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_LoadRejectsTrailingData(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(0, zerolog.Nop())
	ctx := context.Background()

	for name, content := range map[string]string{
		"garbage.json":   `["a"] garbage`,
		"two.json":       `["a"] ["b"]`,
		"bracket.json":   `["a"]]`,
		"documents.yaml": "- a\n---\n- b\n",
	} {
		_, err := loader.Load(ctx, writeFile(t, dir, name, content))
		assert.ErrorIs(t, err, ErrTrailingData, name)
	}

	got, err := loader.Load(ctx, writeFile(t, dir, "spaced.json", "[\"a\"]\n\n  "))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Words())
}

func TestLoader_LoadLongLine(t *testing.T) {
	long := strings.Repeat("x", 100*1024)
	path := writeFile(t, t.TempDir(), "long.txt", "short\n"+long+"\n")

	got, err := NewLoader(0, zerolog.Nop()).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.True(t, got.Contains(long))
}

func TestLoader_LoadCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(0, zerolog.Nop()).Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncode_RoundTrip(t *testing.T) {
	words := trie.NewFromWords([]string{"one", "two", "three", "😬😎"})
	loader := NewLoader(0, zerolog.Nop())

	for _, format := range []Format{FormatText, FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, words, format))

			got, err := loader.LoadReader(context.Background(), &buf, format)
			require.NoError(t, err)
			assert.True(t, words.Equal(got))
		})
	}

	assert.ErrorIs(t, Encode(&bytes.Buffer{}, words, Format("xml")), ErrUnknownFormat)
}

func TestEncode_TextRejectsUnencodableWords(t *testing.T) {
	words := trie.NewFromWords([]string{"a\nb", " padded "})
	loader := NewLoader(0, zerolog.Nop())

	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, words, FormatText), trie.ErrUnencodable)
	assert.Zero(t, buf.Len())

	for _, format := range []Format{FormatJSON, FormatYAML} {
		buf.Reset()
		require.NoError(t, Encode(&buf, words, format))
		got, err := loader.LoadReader(context.Background(), &buf, format)
		require.NoError(t, err)
		assert.True(t, words.Equal(got), format)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")
	words := trie.NewFromWords([]string{"alpha", "beta"})

	require.NoError(t, Save(path, words, FormatYAML))

	got, err := NewLoader(0, zerolog.Nop()).Load(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, words.Equal(got))
}
