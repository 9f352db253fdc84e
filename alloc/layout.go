package alloc

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/joshuapare/anagramkit/internal/letters"
)

// layout places letter fields into registers.
type layout struct {
	offsets   [letters.Size]int
	regs      [letters.Size]int
	registers int
}

// single lays every field out in register 0 as an alphabetical prefix sum.
func single(widths [letters.Size]int) layout {
	l := layout{registers: 1}
	offset := 0
	for i, w := range widths {
		l.offsets[i] = offset
		offset += w
	}
	return l
}

// pack spreads fields over as many registers as needed using first-fit
// decreasing: widest letters are placed first, ties in alphabetical order,
// each into the first register with room left. Offsets inside a register
// are the alphabetical prefix sum of the letters it received. Zero-width
// letters stay in register 0.
func pack(widths [letters.Size]int, regWidth int) (layout, error) {
	order := make([]int, 0, letters.Size)
	for i, w := range widths {
		if w > regWidth {
			return layout{}, fmt.Errorf("%w: letter %q needs %d bits, register holds %d",
				ErrCapacityExceeded, letters.Letter(i), w, regWidth)
		}
		if w > 0 {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(widths[b], widths[a])
	})

	var l layout
	free := []int{regWidth}
	for _, i := range order {
		r := slices.IndexFunc(free, func(f int) bool { return f >= widths[i] })
		if r < 0 {
			free = append(free, regWidth)
			r = len(free) - 1
		}
		free[r] -= widths[i]
		l.regs[i] = r
	}
	l.registers = len(free)

	next := make([]int, l.registers)
	for i, w := range widths {
		r := l.regs[i]
		l.offsets[i] = next[r]
		next[r] += w
	}
	return l, nil
}
