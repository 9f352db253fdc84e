// Package packhash computes packed anagram fingerprints.
//
// A Hasher holds an allocation table (see package alloc) and turns each word
// into a Fingerprint by adding 1<<offset for every letter it contains.
// Because addition commutes, letter order does not matter: two words are
// anagrams exactly when their fingerprints are equal, and comparing two
// fingerprints is a single integer compare for single-register tables.
//
//	h, err := packhash.New([]string{"store", "rotes", "stare", "tears"}, packhash.Options{})
//	if err != nil {
//	    return err
//	}
//	same, _ := h.AreAnagrams("Store", "ROTES") // true
//
// # Checked and Unchecked Hashing
//
// The table only has room for as many repetitions of a letter as its corpus
// showed. Unchecked (the default) skips that check and lets an oversized
// count carry into the next field, producing a fingerprint that may equal
// another word's. Checked counts letters first and fails with
// ErrOverflowDetected instead.
//
// # Grouping
//
// GroupAnagrams partitions words into anagram classes, preserving the order
// groups were first seen and the order of words inside each group.
// GroupParallel does the same work across goroutines and produces an
// identical result.
//
// # Corpus-Free Hashing
//
// QuickHash and QuickAnagrams use a fixed table with 3 bits per letter
// spread over two registers. They need no corpus but only handle up to
// seven occurrences of each letter.
package packhash
