package alloc

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"

	"github.com/joshuapare/anagramkit/internal/letters"
)

// Allocate scans corpus once and builds a table sized to the largest
// per-word count of every letter.
func Allocate(corpus iter.Seq[string], opts Options) (*Table, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	var maxCounts letters.Counts
	for word := range corpus {
		maxCounts.Max(letters.Count(word))
	}
	return fromCounts(maxCounts, opts)
}

// AllocateWords is Allocate over a slice.
func AllocateWords(words []string, opts Options) (*Table, error) {
	return Allocate(slices.Values(words), opts)
}

// FromCounts builds a table from precomputed per-letter maxima.
func FromCounts(maxCounts letters.Counts, opts Options) (*Table, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return fromCounts(maxCounts, opts)
}

// Uniform builds a table that reserves the same number of bits for every
// letter, regardless of any corpus. Each letter may then occur up to
// 2^bits-1 times.
func Uniform(width int, opts Options) (*Table, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if width < 1 || width > opts.RegisterWidth || width > 63 {
		return nil, fmt.Errorf("%w: %d bits in a %d-bit register", ErrInvalidWidth, width, opts.RegisterWidth)
	}

	var maxCounts letters.Counts
	for i := range maxCounts {
		maxCounts[i] = int(uint64(1)<<width - 1)
	}
	return fromCounts(maxCounts, opts)
}

func fromCounts(maxCounts letters.Counts, opts Options) (*Table, error) {
	var widths [letters.Size]int
	total := 0
	for i, m := range maxCounts {
		if m < 0 {
			return nil, fmt.Errorf("%w: letter %q has count %d", ErrInvalidCount, letters.Letter(i), m)
		}
		widths[i] = bits.Len(uint(m))
		total += widths[i]
	}

	var l layout
	switch {
	case total <= opts.RegisterWidth:
		l = single(widths)
	case opts.Overflow == Reject:
		return nil, fmt.Errorf("%w: corpus requires %d bits, register holds %d", ErrCapacityExceeded, total, opts.RegisterWidth)
	default:
		var err error
		if l, err = pack(widths, opts.RegisterWidth); err != nil {
			return nil, err
		}
	}

	t := &Table{
		maxCounts: maxCounts,
		total:     total,
		regWidth:  opts.RegisterWidth,
		numRegs:   l.registers,
	}
	for i := range widths {
		t.widths[i] = uint8(widths[i])
		t.offsets[i] = uint8(l.offsets[i])
		t.regs[i] = uint8(l.regs[i])
	}
	return t, nil
}
