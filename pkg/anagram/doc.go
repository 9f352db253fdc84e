/*
Package anagram provides one-call helpers for anagram detection and
grouping on top of the packed fingerprint hasher.

# Quick Start

Compare two words without a corpus:

	ok := anagram.AreAnagrams("listen", "silent")

Group a word list:

	groups, err := anagram.Group([]string{"store", "rotes", "stare", "tears"}, nil)
	for fp, words := range groups.All() {
	    fmt.Println(fp, words)
	}

Group a word file, compressed or not:

	groups, err := anagram.GroupFile(ctx, "words.txt.zst", nil)

# Corpus-Built Hashers

The helpers size every letter's bit field from the words they are given,
so grouping never overflows. To hash other words against a fixed corpus,
build the hasher once and reuse it:

	h, err := anagram.NewHasherFromFile("words.txt", &anagram.Options{
	    Mode: packhash.Checked,
	})
	ok, err := h.AreAnagrams("Dormitory", "dirty room")

In checked mode a word with more occurrences of a letter than any corpus
word returns packhash.ErrOverflowDetected instead of a wrong answer.

# Defaults

A nil *Options lets tables spill into extra 64-bit registers
(alloc.Extend), hashes unchecked, and reads corpus files with automatic
compression detection.
*/
package anagram
