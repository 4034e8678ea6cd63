// Package wordlist reads and writes word lists in the formats a trie can be
// serialized to.
package wordlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/kumarlokesh/wordtrie/internal/trie"
)

// Loader loads word list files into a trie
type Loader struct {
	// MaxFileSize rejects larger files. Zero means no limit.
	MaxFileSize bytesize.ByteSize

	Logger zerolog.Logger
}

// NewLoader creates a loader with the given size limit and logger
func NewLoader(maxFileSize bytesize.ByteSize, logger zerolog.Logger) *Loader {
	return &Loader{
		MaxFileSize: maxFileSize,
		Logger:      logger,
	}
}

// Load reads every file in paths and merges their words into one trie.
// The format of each file is picked from its extension.
func (l *Loader) Load(ctx context.Context, paths ...string) (*trie.Trie, error) {
	merged := trie.New()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		words, err := l.loadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		before := merged.Len()
		words.Walk("", func(word string) bool {
			merged.Insert(word)
			return true
		})
		l.Logger.Debug().
			Str("path", path).
			Int("words", words.Len()).
			Int("new", merged.Len()-before).
			Msg("Merged word list")
	}

	l.Logger.Info().Int("files", len(paths)).Int("words", merged.Len()).Msg("Loaded word lists")
	return merged, nil
}

func (l *Loader) loadFile(ctx context.Context, path string) (*trie.Trie, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat word list: %w", err)
	}
	size := bytesize.New(float64(fi.Size()))
	if l.MaxFileSize > 0 && size > l.MaxFileSize {
		return nil, fmt.Errorf("%s is %s, limit %s: %w", path, size, l.MaxFileSize, ErrFileTooLarge)
	}

	l.Logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Stringer("size", size).
		Msg("Reading word list")

	t, err := l.LoadReader(ctx, file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadReader decodes a single word list from r
func (l *Loader) LoadReader(ctx context.Context, r io.Reader, format Format) (*trie.Trie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := trie.New()
	switch format {
	case FormatText:
		if _, err := t.ReadFrom(r); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(t); err != nil {
			return nil, fmt.Errorf("failed to decode JSON word list: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("JSON word list: %w", ErrTrailingData)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(t); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode YAML word list: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("YAML word list: %w", ErrTrailingData)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return t, nil
}

// Encode writes the words of t to w in the given format
func Encode(w io.Writer, t *trie.Trie, format Format) error {
	switch format {
	case FormatText:
		if _, err := t.WriteTo(w); err != nil {
			return err
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to encode JSON word list: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to encode YAML word list: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML word list: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// Save writes the words of t to the file at path, replacing it
func Save(path string, t *trie.Trie, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create word list: %w", err)
	}
	if err := Encode(file, t, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
