package anagram

import (
	"log/slog"

	"github.com/joshuapare/anagramkit/alloc"
	"github.com/joshuapare/anagramkit/corpus"
	"github.com/joshuapare/anagramkit/packhash"
)

// Options controls hasher construction and corpus loading.
type Options struct {
	// Alloc sizes the bit fields. The zero value rejects tables wider than
	// one register; DefaultOptions uses alloc.Extend.
	Alloc alloc.Options

	// Mode selects checked or unchecked hashing.
	Mode packhash.Mode

	// Corpus controls how files are read.
	Corpus corpus.Options

	// Workers bounds GroupFile's parallelism. Zero uses GOMAXPROCS.
	Workers int

	// Logger receives debug output. Nil is silent.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{Alloc: alloc.Options{Overflow: alloc.Extend}}
}

func (o *Options) hasherOptions() packhash.Options {
	return packhash.Options{Alloc: o.Alloc, Mode: o.Mode, Logger: o.Logger}
}

func (o *Options) corpusOptions() corpus.Options {
	c := o.Corpus
	if c.Logger == nil {
		c.Logger = o.Logger
	}
	return c
}

func orDefault(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	return opts
}

// Hasher is the packed fingerprint hasher (re-exported for convenience).
type Hasher = packhash.Hasher

// Fingerprint is a word's packed letter counts (re-exported for convenience).
type Fingerprint = packhash.Fingerprint

// Groups is an ordered anagram grouping (re-exported for convenience).
type Groups = packhash.Groups
