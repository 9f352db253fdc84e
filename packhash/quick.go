package packhash

import "github.com/joshuapare/anagramkit/alloc"

// quickWidth is the field width of the corpus-free hasher, enough for seven
// occurrences of every letter.
const quickWidth = 3

// quick is built from a fixed layout, not from any corpus: 26 fields of
// 3 bits, 78 bits over two registers.
var quick = func() *Hasher {
	table, err := alloc.Uniform(quickWidth, alloc.Options{Overflow: alloc.Extend})
	if err != nil {
		panic("packhash: quick table: " + err.Error())
	}
	h, err := FromTable(table, Unchecked)
	if err != nil {
		panic("packhash: quick hasher: " + err.Error())
	}
	return h
}()

// Quick returns the shared corpus-free hasher. It reserves 3 bits for every
// letter, so words with up to seven occurrences of each letter hash
// correctly without analyzing a corpus first.
func Quick() *Hasher { return quick }

// QuickHash returns the corpus-free fingerprint of word.
func QuickHash(word string) Fingerprint {
	return quick.hashWide(word)
}

// QuickAnagrams reports whether a and b are anagrams using the corpus-free
// hasher.
func QuickAnagrams(a, b string) bool {
	return QuickHash(a) == QuickHash(b)
}
