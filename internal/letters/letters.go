// Package letters maps bytes onto the 26-letter Latin alphabet that
// fingerprints are built from.
//
// Only ASCII letters count. Upper case folds onto lower case inline and
// every other byte is skipped, including the bytes of multi-byte UTF-8
// sequences, which never fall in the ASCII range.
package letters

import (
	"strconv"
	"strings"
)

// Size is the number of letters in the alphabet.
const Size = 26

// none marks bytes that are not letters.
const none = 0xFF

// index maps every byte to its letter index, or none.
var index = func() [256]uint8 {
	var t [256]uint8
	for i := range t {
		t[i] = none
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = uint8(c - 'a')
		t[c-'a'+'A'] = uint8(c - 'a')
	}
	return t
}()

// Index returns the letter index of c, folding case, and whether c is a
// letter at all.
func Index(c byte) (int, bool) {
	i := index[c]
	return int(i), i != none
}

// Letter returns the lower case letter at index i.
func Letter(i int) byte {
	return 'a' + byte(i)
}

// Counts holds per-letter occurrence counts in alphabetical order.
type Counts [Size]int

// Count returns the per-letter counts of word.
func Count(word string) Counts {
	var c Counts
	for i := 0; i < len(word); i++ {
		if x := index[word[i]]; x != none {
			c[x]++
		}
	}
	return c
}

// Len returns the number of letters in word.
func Len(word string) int {
	n := 0
	for i := 0; i < len(word); i++ {
		if index[word[i]] != none {
			n++
		}
	}
	return n
}

// Max raises every entry of c to at least the matching entry of o.
func (c *Counts) Max(o Counts) {
	for i, n := range o {
		if n > c[i] {
			c[i] = n
		}
	}
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// String renders the non-zero counts as "a:1 e:2".
func (c Counts) String() string {
	var b strings.Builder
	for i, n := range c {
		if n == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(Letter(i))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
