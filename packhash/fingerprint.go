package packhash

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Fingerprint is the packed letter-count value of a word. Two words hashed
// with the same table are anagrams exactly when their fingerprints are equal.
//
// Fingerprint is comparable and can be used as a map key. Under a
// single-register table it holds one uint64 and equality is a single
// integer compare plus an empty-string compare. Wider tables carry their
// extra registers packed into ext.
type Fingerprint struct {
	lo  uint64
	ext string // registers 1..n-1, little-endian, 8 bytes each
}

// FromUint64 returns a single-register fingerprint.
func FromUint64(v uint64) Fingerprint {
	return Fingerprint{lo: v}
}

// FromRegisters returns a fingerprint holding regs in order. Register 0 is
// the least significant.
func FromRegisters(regs []uint64) Fingerprint {
	if len(regs) == 0 {
		return Fingerprint{}
	}
	f := Fingerprint{lo: regs[0]}
	if len(regs) > 1 {
		buf := make([]byte, 0, 8*(len(regs)-1))
		for _, r := range regs[1:] {
			buf = binary.LittleEndian.AppendUint64(buf, r)
		}
		f.ext = string(buf)
	}
	return f
}

// Uint64 returns register 0, the whole value for single-register tables.
func (f Fingerprint) Uint64() uint64 { return f.lo }

// Len returns the number of registers.
func (f Fingerprint) Len() int { return 1 + len(f.ext)/8 }

// Register returns register i.
func (f Fingerprint) Register(i int) uint64 {
	if i == 0 {
		return f.lo
	}
	return binary.LittleEndian.Uint64([]byte(f.ext[8*(i-1) : 8*i]))
}

// Registers returns all registers, least significant first.
func (f Fingerprint) Registers() []uint64 {
	out := make([]uint64, f.Len())
	for i := range out {
		out[i] = f.Register(i)
	}
	return out
}

// String renders the fingerprint as hex, most significant register first.
func (f Fingerprint) String() string {
	n := f.Len()
	var b strings.Builder
	fmt.Fprintf(&b, "%#x", f.Register(n-1))
	for i := n - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%016x", f.Register(i))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler so fingerprints can key
// JSON objects.
func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
