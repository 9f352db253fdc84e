package codec

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/joshuapare/anagramkit/alloc"
	"github.com/joshuapare/anagramkit/internal/letters"
	"github.com/joshuapare/anagramkit/packhash"
)

// formatVersion is written into every table record.
const formatVersion = 1

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder returns a deterministic CBOR stream encoder writing to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a CBOR stream decoder reading from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// TableRecord is the wire form of an allocation table. Slices are in
// alphabetical letter order.
type TableRecord struct {
	Version       int   `json:"version"`
	RegisterWidth int   `json:"register_width"`
	TotalBits     int   `json:"total_bits"`
	MaxCounts     []int `json:"max_counts"`
	Widths        []int `json:"widths"`
	Offsets       []int `json:"offsets"`
	Registers     []int `json:"registers"`
}

// NewTableRecord captures t.
func NewTableRecord(t *alloc.Table) TableRecord {
	s := t.Snapshot()
	return TableRecord{
		Version:       formatVersion,
		RegisterWidth: s.RegisterWidth,
		TotalBits:     t.TotalBits(),
		MaxCounts:     s.MaxCounts[:],
		Widths:        s.Widths[:],
		Offsets:       s.Offsets[:],
		Registers:     s.Registers[:],
	}
}

// Table rebuilds the allocation table described by r.
func (r TableRecord) Table() (*alloc.Table, error) {
	if r.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	var s alloc.Snapshot
	s.RegisterWidth = r.RegisterWidth
	for name, src := range map[string]struct {
		in  []int
		out *[letters.Size]int
	}{
		"max_counts": {r.MaxCounts, &s.MaxCounts},
		"widths":     {r.Widths, &s.Widths},
		"offsets":    {r.Offsets, &s.Offsets},
		"registers":  {r.Registers, &s.Registers},
	} {
		if len(src.in) != letters.Size {
			return nil, fmt.Errorf("%w: %s has %d entries, want %d", ErrInvalidTable, name, len(src.in), letters.Size)
		}
		copy(src.out[:], src.in)
	}

	t, err := alloc.Restore(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	if t.TotalBits() != r.TotalBits {
		return nil, fmt.Errorf("%w: total_bits is %d, fields sum to %d", ErrInvalidTable, r.TotalBits, t.TotalBits())
	}
	return t, nil
}

// MarshalTable encodes t as CBOR.
func MarshalTable(t *alloc.Table) ([]byte, error) {
	return Marshal(NewTableRecord(t))
}

// UnmarshalTable decodes and validates a table encoded by MarshalTable.
func UnmarshalTable(data []byte) (*alloc.Table, error) {
	var r TableRecord
	if err := Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding table: %w", err)
	}
	return r.Table()
}

// GroupRecord is the wire form of one anagram group. Fingerprint holds the
// raw registers, least significant first.
type GroupRecord struct {
	Fingerprint []uint64 `json:"fingerprint"`
	Words       []string `json:"words"`
}

// GroupRecords lists g's groups in creation order.
func GroupRecords(g *packhash.Groups) []GroupRecord {
	out := make([]GroupRecord, 0, g.Len())
	for fp, words := range g.All() {
		out = append(out, GroupRecord{Fingerprint: fp.Registers(), Words: words})
	}
	return out
}

// MarshalGroups encodes g as a CBOR array of group records.
func MarshalGroups(g *packhash.Groups) ([]byte, error) {
	return Marshal(GroupRecords(g))
}

// UnmarshalGroups decodes groups encoded by MarshalGroups.
func UnmarshalGroups(data []byte) (*packhash.Groups, error) {
	var records []GroupRecord
	if err := Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding groups: %w", err)
	}
	g := packhash.NewGroups()
	for i, r := range records {
		if len(r.Fingerprint) == 0 {
			return nil, fmt.Errorf("%w: group %d has no registers", ErrInvalidGroups, i)
		}
		fp := packhash.FromRegisters(r.Fingerprint)
		for _, w := range r.Words {
			g.Add(fp, w)
		}
	}
	return g, nil
}
