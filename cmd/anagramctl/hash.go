package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := newHashCmd()
	addHasherFlags(cmd)
	addQuickFlag(cmd)
	rootCmd.AddCommand(cmd)
}

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <corpus> <word>...",
		Short: "Print word fingerprints",
		Long: `The hash command prints the packed fingerprint of each word, using a
table sized from the corpus. With --quick or --table no corpus argument is
taken.

Example:
  anagramctl hash words.txt listen silent
  anagramctl hash --quick listen silent
  anagramctl hash --table words.table --checked zebra`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
	return cmd
}

type hashResult struct {
	Word        string   `json:"word"`
	Fingerprint string   `json:"fingerprint"`
	Registers   []uint64 `json:"registers"`
}

func runHash(args []string) error {
	const usage = "anagramctl hash <corpus> <word>..."
	src, err := openSource(args, usage)
	if err != nil {
		return err
	}
	if err := checkMinArgs(src.rest, 1, usage); err != nil {
		return err
	}

	results := make([]hashResult, 0, len(src.rest))
	for _, w := range src.rest {
		fp, err := src.hasher.Hash(w)
		if err != nil {
			return err
		}
		results = append(results, hashResult{Word: w, Fingerprint: fp.String(), Registers: fp.Registers()})
	}

	if jsonOut {
		return printJSON(results)
	}
	printVerbose("%s\n", src.hasher)
	for _, r := range results {
		printInfo("%s\t%s\n", r.Fingerprint, r.Word)
	}
	return nil
}
