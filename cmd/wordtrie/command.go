package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/kumarlokesh/wordtrie/internal/config"
	"github.com/kumarlokesh/wordtrie/internal/logging"
	"github.com/kumarlokesh/wordtrie/internal/trie"
	"github.com/kumarlokesh/wordtrie/internal/wordlist"
)

// session is what every subcommand starts from: the resolved configuration,
// a logger and the merged word lists.
type session struct {
	cfg    *config.Config
	logger zerolog.Logger
	words  *trie.Trie
	stdout io.Writer
}

// Command builds the wordtrie command tree
func Command(stdout, stderr io.Writer) *cli.Command {
	withSession := func(run func(ctx context.Context, cmd *cli.Command, s *session) error) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(ctx, cmd, stdout, stderr)
			if err != nil {
				return err
			}
			return run(ctx, cmd, s)
		}
	}

	return &cli.Command{
		Name:      "wordtrie",
		Usage:     "inspect word lists through a case-insensitive trie",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     "path to config file",
				TakesFile: true,
			},
			&cli.StringSliceFlag{
				Name:      "words",
				Aliases:   []string{"w"},
				Usage:     "word list file (.txt, .json, .yaml); may be repeated",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "count",
				Usage:  "print the number of distinct words",
				Action: withSession(runCount),
			},
			{
				Name:      "contains",
				Usage:     "report whether each word is stored",
				ArgsUsage: "<word>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "prefix",
						Usage: "match words that are only a prefix of a stored word",
					},
				},
				Action: withSession(runContains),
			},
			{
				Name:      "find",
				Usage:     "print the stored words starting with a prefix",
				ArgsUsage: "[prefix]",
				Action:    withSession(runFind),
			},
			{
				Name:   "words",
				Usage:  "print every stored word",
				Action: withSession(runWords),
			},
			{
				Name:  "export",
				Usage: "write the merged word lists in one format",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format (text, json, yaml); defaults to output.format",
					},
					&cli.StringFlag{
						Name:      "output",
						Aliases:   []string{"o"},
						Usage:     "output file; defaults to stdout",
						TakesFile: true,
					},
				},
				Action: withSession(runExport),
			},
			{
				Name:      "remove",
				Usage:     "remove words and write the remaining word list",
				ArgsUsage: "<word>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format (text, json, yaml); defaults to output.format",
					},
					&cli.StringFlag{
						Name:      "output",
						Aliases:   []string{"o"},
						Usage:     "output file; defaults to stdout",
						TakesFile: true,
					},
				},
				Action: withSession(runRemove),
			},
		},
	}
}

func newSession(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) (*session, error) {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if paths := cmd.StringSlice("words"); len(paths) > 0 {
		cfg.WordList.Paths = paths
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	maxSize, err := cfg.WordList.MaxFileSizeBytes()
	if err != nil {
		return nil, err
	}
	words, err := wordlist.NewLoader(maxSize, logger).Load(ctx, cfg.WordList.Paths...)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		words:  words,
		stdout: stdout,
	}, nil
}

func (s *session) printSorted(words []string) {
	slices.Sort(words)
	for _, w := range words {
		fmt.Fprintln(s.stdout, w)
	}
}

// write encodes t to --output, or to stdout when no file is given
func (s *session) write(cmd *cli.Command, t *trie.Trie) error {
	name := cmd.String("format")
	if name == "" {
		name = s.cfg.Output.Format
	}
	format, err := wordlist.ParseFormat(name)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := wordlist.Save(path, t, format); err != nil {
			return err
		}
		s.logger.Info().Str("path", path).Str("format", string(format)).Int("words", t.Len()).Msg("Wrote word list")
		return nil
	}
	return wordlist.Encode(s.stdout, t, format)
}

func runCount(_ context.Context, _ *cli.Command, s *session) error {
	fmt.Fprintln(s.stdout, s.words.Len())
	return nil
}

func runContains(_ context.Context, cmd *cli.Command, s *session) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("contains: at least one word is required")
	}
	prefix := cmd.Bool("prefix")
	for _, w := range cmd.Args().Slice() {
		var found bool
		if prefix {
			found = s.words.ContainsPrefix(w)
		} else {
			found = s.words.Contains(w)
		}
		fmt.Fprintf(s.stdout, "%s\t%t\n", w, found)
	}
	return nil
}

func runFind(_ context.Context, cmd *cli.Command, s *session) error {
	s.printSorted(s.words.FindWords(cmd.Args().First()))
	return nil
}

func runWords(_ context.Context, _ *cli.Command, s *session) error {
	s.printSorted(s.words.Words())
	return nil
}

func runExport(_ context.Context, cmd *cli.Command, s *session) error {
	return s.write(cmd, s.words)
}

func runRemove(_ context.Context, cmd *cli.Command, s *session) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("remove: at least one word is required")
	}

	edited := s.words.Clone()
	for _, w := range cmd.Args().Slice() {
		edited.Remove(w)
	}
	s.logger.Info().
		Int("before", s.words.Len()).
		Int("after", edited.Len()).
		Msg("Removed words")

	return s.write(cmd, edited)
}
