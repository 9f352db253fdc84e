package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/anagramkit/alloc"
	"github.com/joshuapare/anagramkit/cmd/anagramctl/logger"
	"github.com/joshuapare/anagramkit/codec"
	"github.com/joshuapare/anagramkit/corpus"
	"github.com/joshuapare/anagramkit/packhash"
)

// Hasher flags shared by table, hash, check and group. A zero register
// width defers to the config file; --extend and --checked override it only
// when given explicitly.
var (
	registerWidth int
	extend        bool
	checked       bool
	quickHash     bool
	tablePath     string

	extendSet  bool
	checkedSet bool
)

func addAllocFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&registerWidth, "register-width", 0, "Register width in bits, 1-64 (default from config)")
	cmd.Flags().BoolVar(&extend, "extend", false, "Spill into extra registers instead of failing when fields exceed one register")
}

func addHasherFlags(cmd *cobra.Command) {
	addAllocFlags(cmd)
	cmd.Flags().BoolVar(&checked, "checked", false, "Reject words whose letter counts exceed the corpus maxima")
	cmd.Flags().StringVar(&tablePath, "table", "", "Use a table saved by 'table --save' instead of a corpus")
}

func addQuickFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&quickHash, "quick", false, "Use the corpus-free hasher (3 bits per letter)")
}

// markChanged records which boolean hasher flags were set on the command line.
func markChanged(cmd *cobra.Command) {
	extendSet = cmd.Flags().Changed("extend")
	checkedSet = cmd.Flags().Changed("checked")
}

func allocOptions() alloc.Options {
	opts := cfg.AllocOptions()
	if registerWidth != 0 {
		opts.RegisterWidth = registerWidth
	}
	if extendSet {
		opts.Overflow = alloc.Reject
		if extend {
			opts.Overflow = alloc.Extend
		}
	}
	return opts
}

func hasherOptions() packhash.Options {
	opts := cfg.HasherOptions()
	opts.Alloc = allocOptions()
	if checkedSet {
		opts.Mode = packhash.Unchecked
		if checked {
			opts.Mode = packhash.Checked
		}
	}
	opts.Logger = logger.L
	return opts
}

func corpusOptions() corpus.Options {
	opts := cfg.CorpusOptions()
	opts.Logger = logger.L
	return opts
}

func loadWords(path string) ([]string, error) {
	printVerbose("Loading corpus: %s\n", path)
	return corpus.Load(path, corpusOptions())
}

// source is a hasher plus whatever positional arguments it did not consume.
type source struct {
	hasher *packhash.Hasher
	words  []string // corpus words; nil with --quick or --table
	rest   []string
}

// openSource builds the hasher from --quick, --table, or the corpus named
// by args[0].
func openSource(args []string, usage string) (*source, error) {
	switch {
	case quickHash && checked:
		return nil, fmt.Errorf("--quick cannot be combined with --checked: the corpus-free hasher has no recorded maxima")

	case quickHash:
		return &source{hasher: packhash.Quick(), rest: args}, nil

	case tablePath != "":
		data, err := os.ReadFile(tablePath)
		if err != nil {
			return nil, fmt.Errorf("reading table: %w", err)
		}
		table, err := codec.UnmarshalTable(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tablePath, err)
		}
		h, err := packhash.FromTable(table, hasherOptions().Mode)
		if err != nil {
			return nil, err
		}
		logger.Debug("table restored", "path", tablePath, "total_bits", table.TotalBits())
		return &source{hasher: h, rest: args}, nil
	}

	if err := checkMinArgs(args, 1, usage); err != nil {
		return nil, err
	}
	words, err := loadWords(args[0])
	if err != nil {
		return nil, err
	}
	start := time.Now()
	h, err := packhash.New(words, hasherOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}
	logger.Debug("hasher built", "words", len(words), "elapsed", time.Since(start))
	return &source{hasher: h, words: words, rest: args[1:]}, nil
}
