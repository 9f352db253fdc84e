package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/anagramkit/cmd/anagramctl/logger"
	"github.com/joshuapare/anagramkit/codec"
)

var (
	groupMinSize int
	groupWorkers int
	groupFormat  string
)

func init() {
	cmd := newGroupCmd()
	addHasherFlags(cmd)
	cmd.Flags().IntVar(&groupMinSize, "min-size", 0, "Hide groups with fewer members (default from config)")
	cmd.Flags().IntVar(&groupWorkers, "workers", 0, "Parallel workers (default from config, 0 means GOMAXPROCS)")
	cmd.Flags().StringVar(&groupFormat, "format", "text", "Output format: text, json or cbor")
	rootCmd.AddCommand(cmd)
}

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group <corpus> [words-file]",
		Short: "Group words into anagram classes",
		Long: `The group command hashes every word and prints the anagram groups in
first-seen order. Without a words file the corpus itself is grouped.

Example:
  anagramctl group words.txt
  anagramctl group words.txt --min-size 3
  anagramctl group words.txt other.txt --format cbor > groups.cbor
  anagramctl group --table words.table other.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(cmd.Context(), args)
		},
	}
	return cmd
}

func runGroup(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	format := strings.ToLower(groupFormat)
	if jsonOut {
		format = "json"
	}
	switch format {
	case "", "text", "json", "cbor":
	default:
		return fmt.Errorf("unknown format %q (want text, json or cbor)", groupFormat)
	}

	const usage = "anagramctl group <corpus> [words-file]"
	src, err := openSource(args, usage)
	if err != nil {
		return err
	}

	words := src.words
	switch len(src.rest) {
	case 0:
		if words == nil {
			return fmt.Errorf("a words file is required with --table\nUsage: anagramctl group --table <table> <words-file>")
		}
	case 1:
		words, err = loadWords(src.rest[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments\nUsage: %s", usage)
	}

	workers := cfg.Group.Workers
	if groupWorkers != 0 {
		workers = groupWorkers
	}
	minSize := cfg.Group.MinSize
	if groupMinSize != 0 {
		minSize = groupMinSize
	}

	start := time.Now()
	groups, err := src.hasher.GroupParallel(ctx, words, workers)
	if err != nil {
		return err
	}
	logger.Debug("grouped", "words", groups.Words(), "groups", groups.Len(), "elapsed", time.Since(start))

	records := codec.GroupRecords(groups)
	kept := records[:0]
	for _, r := range records {
		if len(r.Words) >= minSize {
			kept = append(kept, r)
		}
	}

	switch format {
	case "json":
		return printJSON(kept)
	case "cbor":
		data, err := codec.Marshal(kept)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	for _, r := range kept {
		printInfo("%s\n", strings.Join(r.Words, " "))
	}
	printVerbose("%d groups, %d words\n", groups.Len(), groups.Words())
	return nil
}
