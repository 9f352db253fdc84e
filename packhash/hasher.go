package packhash

import (
	"fmt"
	"iter"
	"slices"

	"github.com/joshuapare/anagramkit/alloc"
	"github.com/joshuapare/anagramkit/internal/letters"
)

// Hasher turns words into fingerprints using one allocation table. It is
// immutable and safe for concurrent use.
type Hasher struct {
	table *alloc.Table
	mode  Mode
	regs  int

	reg [letters.Size]uint8
	off [letters.Size]uint8
	inc [letters.Size]uint64 // 1 << off, or 0 for letters without a field
	max letters.Counts
}

// New allocates a table from corpus and returns a hasher for it.
func New(corpus []string, opts Options) (*Hasher, error) {
	return NewSeq(slices.Values(corpus), opts)
}

// NewSeq is New over a sequence.
func NewSeq(corpus iter.Seq[string], opts Options) (*Hasher, error) {
	table, err := alloc.Allocate(corpus, opts.Alloc)
	if err != nil {
		return nil, fmt.Errorf("allocating bit widths: %w", err)
	}
	if opts.Logger != nil {
		opts.Logger.Debug("allocated bit widths",
			"total_bits", table.TotalBits(),
			"registers", table.Registers(),
			"register_width", table.RegisterWidth(),
			"max_counts", table.MaxCounts().String(),
			"mode", opts.Mode.String())
	}
	return FromTable(table, opts.Mode)
}

// FromTable returns a hasher for an existing table.
func FromTable(table *alloc.Table, mode Mode) (*Hasher, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	h := &Hasher{
		table: table,
		mode:  mode,
		regs:  table.Registers(),
		max:   table.MaxCounts(),
	}
	for i := range letters.Size {
		off := table.Offset(i)
		h.reg[i] = uint8(table.RegisterOf(i))
		h.off[i] = uint8(off)
		if table.Width(i) > 0 {
			h.inc[i] = 1 << off
		}
	}
	return h, nil
}

// Table returns the allocation table.
func (h *Hasher) Table() *alloc.Table { return h.table }

// Mode returns the hashing mode.
func (h *Hasher) Mode() Mode { return h.mode }

// BitWidths returns the per-letter field widths.
func (h *Hasher) BitWidths() [letters.Size]int { return h.table.BitWidths() }

// Offsets returns the per-letter field offsets.
func (h *Hasher) Offsets() [letters.Size]int { return h.table.Offsets() }

// TotalBits returns the sum of all field widths.
func (h *Hasher) TotalBits() int { return h.table.TotalBits() }

// Hash returns the fingerprint of word. Case is folded and bytes that are
// not ASCII letters are skipped, so "Sto-re" and "store" hash alike.
// Letters the table reserved no bits for add nothing.
//
// In Unchecked mode Hash never fails. In Checked mode it returns an error
// wrapping ErrOverflowDetected when word repeats a letter more often than
// the table allows.
func (h *Hasher) Hash(word string) (Fingerprint, error) {
	switch {
	case h.mode == Checked:
		return h.hashChecked(word)
	case h.regs == 1:
		return Fingerprint{lo: h.sum64(word)}, nil
	default:
		return h.hashWide(word), nil
	}
}

// AreAnagrams reports whether a and b have equal fingerprints.
func (h *Hasher) AreAnagrams(a, b string) (bool, error) {
	fa, err := h.Hash(a)
	if err != nil {
		return false, err
	}
	fb, err := h.Hash(b)
	if err != nil {
		return false, err
	}
	return fa == fb, nil
}

// String summarizes the hasher.
func (h *Hasher) String() string {
	return fmt.Sprintf("Hasher(total_bits=%d, registers=%d, mode=%s)", h.table.TotalBits(), h.regs, h.mode)
}

// sum64 is the single-register hot path.
func (h *Hasher) sum64(word string) uint64 {
	var acc uint64
	for i := 0; i < len(word); i++ {
		if l, ok := letters.Index(word[i]); ok {
			acc += h.inc[l]
		}
	}
	return acc
}

func (h *Hasher) hashWide(word string) Fingerprint {
	var acc [letters.Size]uint64
	for i := 0; i < len(word); i++ {
		if l, ok := letters.Index(word[i]); ok {
			acc[h.reg[l]] += h.inc[l]
		}
	}
	return FromRegisters(acc[:h.regs])
}

func (h *Hasher) hashChecked(word string) (Fingerprint, error) {
	counts := letters.Count(word)
	if l, over := h.table.Exceeds(counts); over {
		return Fingerprint{}, fmt.Errorf("%w: letter %q occurs %d times in %q, table allows %d",
			ErrOverflowDetected, letters.Letter(l), counts[l], word, h.max[l])
	}

	var acc [letters.Size]uint64
	for l, n := range counts {
		if n > 0 {
			acc[h.reg[l]] += uint64(n) << h.off[l]
		}
	}
	if h.regs == 1 {
		return Fingerprint{lo: acc[0]}, nil
	}
	return FromRegisters(acc[:h.regs]), nil
}
