package corpus

import "errors"

var (
	// ErrUnsupportedEncoding indicates a character encoding the loader cannot decode.
	ErrUnsupportedEncoding = errors.New("corpus: unsupported encoding")

	// ErrUnknownCompression indicates an unrecognized compression name.
	ErrUnknownCompression = errors.New("corpus: unknown compression")
)
