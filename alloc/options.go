package alloc

import (
	"fmt"
	"strings"
)

const (
	// DefaultRegisterWidth is the register size used when Options leaves it unset.
	DefaultRegisterWidth = 64

	// MaxRegisterWidth is the widest supported register.
	MaxRegisterWidth = 64
)

// Overflow selects what happens when a corpus needs more bits than one
// register holds.
type Overflow uint8

const (
	// Reject fails allocation with ErrCapacityExceeded.
	Reject Overflow = iota
	// Extend spreads the fields across several registers.
	Extend
)

// String returns the configuration name of o.
func (o Overflow) String() string {
	switch o {
	case Reject:
		return "reject"
	case Extend:
		return "extend"
	default:
		return fmt.Sprintf("overflow(%d)", uint8(o))
	}
}

// ParseOverflow parses "reject" or "extend" (case-insensitive). The empty
// string selects Reject.
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return Reject, nil
	case "extend":
		return Extend, nil
	default:
		return Reject, fmt.Errorf("alloc: unknown overflow strategy %q", s)
	}
}

// Options controls table construction.
type Options struct {
	// RegisterWidth is the number of usable bits per register, 1..64.
	// Zero selects DefaultRegisterWidth.
	RegisterWidth int

	// Overflow decides what happens when the corpus needs more than
	// RegisterWidth bits. Default: Reject.
	Overflow Overflow
}

// DefaultOptions returns a single 64-bit register that rejects overflow.
func DefaultOptions() Options {
	return Options{RegisterWidth: DefaultRegisterWidth, Overflow: Reject}
}

// normalize fills defaults and validates o.
func (o Options) normalize() (Options, error) {
	if o.RegisterWidth == 0 {
		o.RegisterWidth = DefaultRegisterWidth
	}
	if o.RegisterWidth < 1 || o.RegisterWidth > MaxRegisterWidth {
		return o, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidRegisterWidth, o.RegisterWidth, MaxRegisterWidth)
	}
	if o.Overflow != Reject && o.Overflow != Extend {
		return o, fmt.Errorf("alloc: unknown overflow strategy %d", uint8(o.Overflow))
	}
	return o, nil
}
