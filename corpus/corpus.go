package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/text/transform"

	"github.com/joshuapare/anagramkit/internal/letters"
	"github.com/joshuapare/anagramkit/internal/mmfile"
)

// maxToken bounds a single whitespace-separated token.
const maxToken = 1 << 20

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("corpus: zstd decoder initialization failed: " + err.Error())
	}
}

// Load reads the whitespace-separated words of the file at path.
func Load(path string, opts Options) ([]string, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer unmap()

	comp := opts.Compression
	if comp == Auto {
		comp = detect(path, data)
	}

	var r io.Reader
	switch comp {
	case None:
		r = bytes.NewReader(data)
	case Zstd:
		plain, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress %s: %w", path, err)
		}
		r = bytes.NewReader(plain)
	case LZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, comp)
	}

	words, err := Read(r, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if opts.Logger != nil {
		opts.Logger.Debug("loaded corpus",
			"path", path, "compression", comp.String(), "bytes", len(data), "words", len(words))
	}
	return words, nil
}

// Read returns the whitespace-separated words of r.
func Read(r io.Reader, opts Options) ([]string, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		w := sc.Text()
		if opts.MinLength > 0 && letters.Len(w) < opts.MinLength {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func detect(path string, data []byte) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	}
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	}
	return None
}
