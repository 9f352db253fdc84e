package alloc

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/joshuapare/anagramkit/internal/letters"
)

// Snapshot is the plain-data form of a Table, used to move a table between
// processes without re-reading its corpus.
type Snapshot struct {
	RegisterWidth int
	MaxCounts     [letters.Size]int
	Widths        [letters.Size]int
	Offsets       [letters.Size]int
	Registers     [letters.Size]int
}

// Snapshot returns the plain-data form of t.
func (t *Table) Snapshot() Snapshot {
	return Snapshot{
		RegisterWidth: t.regWidth,
		MaxCounts:     t.maxCounts,
		Widths:        t.BitWidths(),
		Offsets:       t.Offsets(),
		Registers:     t.RegisterIndexes(),
	}
}

// Restore rebuilds a Table from s after checking that every width matches
// its count and that no two fields overlap or leave their register.
func Restore(s Snapshot) (*Table, error) {
	if s.RegisterWidth < 1 || s.RegisterWidth > MaxRegisterWidth {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidRegisterWidth, s.RegisterWidth, MaxRegisterWidth)
	}

	t := &Table{maxCounts: s.MaxCounts, regWidth: s.RegisterWidth}
	numRegs := 1
	for i := range letters.Size {
		m, w, off, r := s.MaxCounts[i], s.Widths[i], s.Offsets[i], s.Registers[i]
		if m < 0 {
			return nil, fmt.Errorf("%w: letter %q has count %d", ErrInvalidCount, letters.Letter(i), m)
		}
		if w != bits.Len(uint(m)) {
			return nil, fmt.Errorf("%w: letter %q has width %d for count %d", ErrInvalidLayout, letters.Letter(i), w, m)
		}
		if r < 0 || r >= letters.Size || off < 0 || off+w > s.RegisterWidth {
			return nil, fmt.Errorf("%w: letter %q field [%d,%d) in register %d", ErrInvalidLayout, letters.Letter(i), off, off+w, r)
		}
		if w == 0 && r != 0 {
			return nil, fmt.Errorf("%w: letter %q has no field but is placed in register %d", ErrInvalidLayout, letters.Letter(i), r)
		}
		numRegs = max(numRegs, r+1)
		t.total += w
		t.widths[i] = uint8(w)
		t.offsets[i] = uint8(off)
		t.regs[i] = uint8(r)
	}
	t.numRegs = numRegs

	var used [letters.Size]bool
	for i := range letters.Size {
		if t.widths[i] > 0 {
			used[t.regs[i]] = true
		}
	}
	for r := 1; r < numRegs; r++ {
		if !used[r] {
			return nil, fmt.Errorf("%w: register %d holds no field", ErrInvalidLayout, r)
		}
	}

	if err := checkOverlap(t); err != nil {
		return nil, err
	}
	return t, nil
}

// checkOverlap rejects fields that share bits within a register.
func checkOverlap(t *Table) error {
	type field struct{ letter, lo, hi int }
	perReg := make([][]field, t.numRegs)
	for i := range letters.Size {
		if t.widths[i] == 0 {
			continue
		}
		lo := int(t.offsets[i])
		perReg[t.regs[i]] = append(perReg[t.regs[i]], field{i, lo, lo + int(t.widths[i])})
	}
	for r, fields := range perReg {
		slices.SortFunc(fields, func(a, b field) int { return a.lo - b.lo })
		for k := 1; k < len(fields); k++ {
			if fields[k].lo < fields[k-1].hi {
				return fmt.Errorf("%w: letters %q and %q overlap in register %d",
					ErrInvalidLayout, letters.Letter(fields[k-1].letter), letters.Letter(fields[k].letter), r)
			}
		}
	}
	return nil
}
