package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := newCheckCmd()
	addHasherFlags(cmd)
	addQuickFlag(cmd)
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <corpus> <a> <b>",
		Short: "Report whether two words are anagrams",
		Long: `The check command compares the fingerprints of two words and prints
"anagrams" or "not anagrams". With --checked, a word whose letter counts
exceed the corpus maxima is an error instead of a possibly wrong answer.

Example:
  anagramctl check words.txt listen silent
  anagramctl check --quick Dormitory "dirty room"`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

func runCheck(args []string) error {
	const usage = "anagramctl check <corpus> <a> <b>"
	src, err := openSource(args, usage)
	if err != nil {
		return err
	}
	if err := checkArgs(src.rest, 2, usage); err != nil {
		return err
	}
	a, b := src.rest[0], src.rest[1]

	ok, err := src.hasher.AreAnagrams(a, b)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"a": a, "b": b, "anagrams": ok})
	}
	if ok {
		printInfo("anagrams\n")
	} else {
		printInfo("not anagrams\n")
	}
	return nil
}
