package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/anagramkit/alloc"
	"github.com/joshuapare/anagramkit/codec"
	"github.com/joshuapare/anagramkit/internal/letters"
)

var (
	tableSave string
	tableAll  bool
)

func init() {
	cmd := newTableCmd()
	addAllocFlags(cmd)
	cmd.Flags().StringVar(&tableSave, "save", "", "Write the table as CBOR to this file")
	cmd.Flags().BoolVar(&tableAll, "all", false, "Include letters that never occur in the corpus")
	rootCmd.AddCommand(cmd)
}

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <corpus>",
		Short: "Show the bit allocation for a corpus",
		Long: `The table command analyzes a corpus and prints, for each letter, the
largest number of times it occurs in one word, the bits reserved for it,
and where its field sits.

Example:
  anagramctl table words.txt
  anagramctl table words.txt.zst --register-width 32 --extend
  anagramctl table words.txt --save words.table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(args)
		},
	}
	return cmd
}

func runTable(args []string) error {
	if err := checkArgs(args, 1, "anagramctl table <corpus>"); err != nil {
		return err
	}
	words, err := loadWords(args[0])
	if err != nil {
		return err
	}
	table, err := alloc.AllocateWords(words, allocOptions())
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if tableSave != "" {
		data, err := codec.MarshalTable(table)
		if err != nil {
			return err
		}
		if err := os.WriteFile(tableSave, data, 0o644); err != nil {
			return fmt.Errorf("saving table: %w", err)
		}
		printVerbose("Saved table to %s (%d bytes)\n", tableSave, len(data))
	}

	if jsonOut {
		return printJSON(codec.NewTableRecord(table))
	}

	printInfo("%s\n", table)
	printInfo("%-6s %5s %5s %8s %6s\n", "letter", "max", "bits", "register", "offset")
	maxCounts := table.MaxCounts()
	for i := range letters.Size {
		if table.Width(i) == 0 && !tableAll {
			continue
		}
		printInfo("%-6c %5d %5d %8d %6d\n",
			letters.Letter(i), maxCounts[i], table.Width(i), table.RegisterOf(i), table.Offset(i))
	}
	return nil
}
