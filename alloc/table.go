package alloc

import (
	"fmt"

	"github.com/joshuapare/anagramkit/internal/letters"
)

// Table is an immutable bit-width allocation: one counter field per letter,
// placed in one or more registers.
type Table struct {
	widths    [letters.Size]uint8
	offsets   [letters.Size]uint8
	regs      [letters.Size]uint8
	maxCounts letters.Counts
	total     int
	regWidth  int
	numRegs   int
}

// BitWidths returns the field width of each letter, in alphabetical order.
func (t *Table) BitWidths() [letters.Size]int {
	var out [letters.Size]int
	for i, w := range t.widths {
		out[i] = int(w)
	}
	return out
}

// Offsets returns the first bit of each letter's field within its register.
func (t *Table) Offsets() [letters.Size]int {
	var out [letters.Size]int
	for i, o := range t.offsets {
		out[i] = int(o)
	}
	return out
}

// RegisterIndexes returns the register each letter's field lives in.
func (t *Table) RegisterIndexes() [letters.Size]int {
	var out [letters.Size]int
	for i, r := range t.regs {
		out[i] = int(r)
	}
	return out
}

// MaxCounts returns the largest per-word count of each letter the table was
// sized for.
func (t *Table) MaxCounts() letters.Counts { return t.maxCounts }

// TotalBits returns the sum of all field widths.
func (t *Table) TotalBits() int { return t.total }

// RegisterWidth returns the usable bits per register.
func (t *Table) RegisterWidth() int { return t.regWidth }

// Registers returns the number of registers a fingerprint occupies.
func (t *Table) Registers() int { return t.numRegs }

// Width returns the field width of letter i.
func (t *Table) Width(i int) int { return int(t.widths[i]) }

// Offset returns the field offset of letter i.
func (t *Table) Offset(i int) int { return int(t.offsets[i]) }

// RegisterOf returns the register that holds letter i.
func (t *Table) RegisterOf(i int) int { return int(t.regs[i]) }

// Capacity returns the largest count letter i's field can hold.
func (t *Table) Capacity(i int) uint64 {
	w := t.widths[i]
	if w >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<w - 1
}

// Exceeds reports the first letter whose count in c is above the table's
// recorded maximum.
func (t *Table) Exceeds(c letters.Counts) (letter int, exceeded bool) {
	for i, n := range c {
		if n > t.maxCounts[i] {
			return i, true
		}
	}
	return 0, false
}

// String summarizes the table.
func (t *Table) String() string {
	return fmt.Sprintf("Table(total_bits=%d, registers=%d, register_width=%d)", t.total, t.numRegs, t.regWidth)
}
