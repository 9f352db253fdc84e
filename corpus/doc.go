// Package corpus loads word lists for building allocation tables.
//
// A corpus file is a sequence of whitespace-separated words. Files may be
// zstd or LZ4 (frame format) compressed; with the Auto setting the loader
// picks by extension (.zst, .zstd, .lz4) and falls back to sniffing magic
// bytes. Plain files are memory-mapped.
//
// Word lists in legacy single-byte encodings (Windows-1252, ISO-8859-1,
// ISO-8859-15) are decoded to UTF-8 before splitting. Only ASCII letters
// count toward fingerprints, so accented letters are kept in the returned
// words but ignored when hashing.
package corpus
