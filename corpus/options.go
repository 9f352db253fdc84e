package corpus

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Compression selects how a corpus file is decompressed.
type Compression int

const (
	// Auto picks by file extension, then by magic bytes.
	Auto Compression = iota
	// None reads the file as-is.
	None
	// Zstd decodes a zstd stream.
	Zstd
	// LZ4 decodes an LZ4 frame.
	LZ4
)

func (c Compression) String() string {
	switch c {
	case Auto:
		return "auto"
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// ParseCompression parses a compression name. The empty string is Auto.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return Auto, nil
	case "none":
		return None, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// Options controls how a corpus is read.
type Options struct {
	// Encoding names the text encoding. Empty or "utf-8" reads the bytes
	// as they are; single-byte encodings are decoded to UTF-8 first.
	Encoding string

	Compression Compression

	// MinLength drops words with fewer letters. Zero keeps every token.
	MinLength int

	// Logger receives debug output. Nil is silent.
	Logger *slog.Logger
}

var encodings = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"latin9":       charmap.ISO8859_15,
}

// lookupEncoding returns nil for UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", "utf8", "ascii":
		return nil, nil
	}
	if e, ok := encodings[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

// CheckEncoding reports whether name is an encoding the loader can decode.
func CheckEncoding(name string) error {
	_, err := lookupEncoding(name)
	return err
}
