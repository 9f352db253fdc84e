// Package codec moves allocation tables and grouping results between
// processes.
//
// Encoding uses CBOR with Core Deterministic Encoding (RFC 8949 §4.2), so
// the same table always produces the same bytes. Record types carry `json`
// tags; fxamacker/cbor reads them as a fallback, so the CLI's --json output
// and the CBOR wire form share field names.
//
// A table shipped with MarshalTable rebuilds an identical hasher on the
// other side without re-reading the corpus:
//
//	data, err := codec.MarshalTable(h.Table())
//	...
//	table, err := codec.UnmarshalTable(data)
//	h2, err := packhash.FromTable(table, packhash.Checked)
//
// Decoded tables are validated (widths match counts, fields stay inside
// their registers and do not overlap) and rejected with ErrInvalidTable
// otherwise. Fingerprints are written as their raw register values.
package codec
