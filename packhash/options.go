package packhash

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshuapare/anagramkit/alloc"
)

// Mode selects between the fast unchecked hash and the bounds-checked one.
type Mode uint8

const (
	// Unchecked adds one per letter without looking at counts. A word with
	// more repetitions than the table was sized for silently carries into
	// the neighbouring field.
	Unchecked Mode = iota

	// Checked counts letters first and fails with ErrOverflowDetected when
	// any count is above the table's recorded maximum.
	Checked
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode parses "checked" or "unchecked". The empty string selects
// Unchecked.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unchecked":
		return Unchecked, nil
	case "checked":
		return Checked, nil
	default:
		return Unchecked, fmt.Errorf("packhash: unknown mode %q", s)
	}
}

// Options controls hasher construction.
type Options struct {
	// Alloc configures the register layout. The zero value is a single
	// 64-bit register that rejects overflow.
	Alloc alloc.Options

	// Mode selects checked or unchecked hashing. Default: Unchecked.
	Mode Mode

	// Logger receives an allocation summary at debug level. Nil disables logging.
	Logger *slog.Logger
}
