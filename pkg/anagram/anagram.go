package anagram

import (
	"context"
	"fmt"

	"github.com/joshuapare/anagramkit/corpus"
	"github.com/joshuapare/anagramkit/packhash"
)

// AreAnagrams reports whether a and b use the same letters, ignoring case
// and non-letters. It needs no corpus and is exact while no letter occurs
// more than seven times in either word.
func AreAnagrams(a, b string) bool {
	return packhash.QuickAnagrams(a, b)
}

// Group partitions words into anagram classes using a hasher sized for
// words themselves.
func Group(words []string, opts *Options) (*Groups, error) {
	opts = orDefault(opts)
	h, err := packhash.New(words, opts.hasherOptions())
	if err != nil {
		return nil, err
	}
	return h.GroupAnagrams(words)
}

// GroupFile loads the corpus at path and groups its words in parallel.
func GroupFile(ctx context.Context, path string, opts *Options) (*Groups, error) {
	opts = orDefault(opts)
	words, err := corpus.Load(path, opts.corpusOptions())
	if err != nil {
		return nil, err
	}
	h, err := packhash.New(words, opts.hasherOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h.GroupParallel(ctx, words, opts.Workers)
}

// NewHasherFromFile builds a hasher whose table is sized for the corpus at
// path.
func NewHasherFromFile(path string, opts *Options) (*Hasher, error) {
	opts = orDefault(opts)
	words, err := corpus.Load(path, opts.corpusOptions())
	if err != nil {
		return nil, err
	}
	h, err := packhash.New(words, opts.hasherOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}
