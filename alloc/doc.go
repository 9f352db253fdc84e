// Package alloc derives bit-width allocation tables for packed anagram
// fingerprints.
//
// # Overview
//
// A fingerprint packs one counter per letter into a fixed-width register.
// Each counter needs just enough bits to hold the largest number of times
// its letter occurs in a single word. Allocate scans a corpus once, records
// those per-word maxima, and lays the counters out side by side:
//
//	table, err := alloc.AllocateWords([]string{"store", "rotes", "tares"}, alloc.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(table.TotalBits()) // 6
//
// # Widths and Offsets
//
// For a letter whose maximum per-word count is m, the width is the number of
// bits needed to represent 0..m:
//
//	width = 0            if m == 0
//	width = bits.Len(m)  otherwise (ceil(log2(m+1)), at least 1)
//
// Offsets are the alphabetical prefix sum of the widths, so letter 'a' starts
// at bit 0 and each following letter starts where the previous one ends.
// Letters that never occur get width 0 and share their offset with the next
// letter.
//
// # Register Width and Overflow
//
// Options.RegisterWidth bounds the total (default 64). When the corpus needs
// more bits, Options.Overflow decides:
//
//   - Reject (default): Allocate fails with ErrCapacityExceeded.
//   - Extend: letters are bin-packed (first fit, widest first) across as
//     many registers as needed. No field crosses a register boundary, and
//     inside each register offsets are again alphabetical prefix sums.
//
// A single letter wider than a register cannot be placed either way.
//
// # Validity
//
// A Table is only valid for words whose per-letter counts do not exceed the
// maxima it was built from. Hashing a word with more repetitions than the
// corpus showed lets a counter carry into its neighbour. MaxCounts exposes
// the recorded maxima so callers can validate inputs; see packhash.Checked.
//
// # Empty Corpus
//
// Allocating from an empty corpus (or one without letters) is valid and
// yields a table where every width is 0. Every word then hashes to 0.
//
// # Thread Safety
//
// A Table is immutable after construction and safe for concurrent use.
// Accessors return copies.
package alloc
