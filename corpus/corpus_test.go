package corpus

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "store rotes\ttores\n\nstare  rates\r\ntears\n"

var sampleWords = []string{"store", "rotes", "tores", "stare", "rates", "tears"}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func zstdBytes(t *testing.T, plain string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(plain), nil)
}

func lz4Bytes(t *testing.T, plain string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write([]byte(plain))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRead(t *testing.T) {
	words, err := Read(strings.NewReader(sample), Options{})
	require.NoError(t, err)
	assert.Equal(t, sampleWords, words)
}

func TestRead_Empty(t *testing.T) {
	words, err := Read(strings.NewReader(" \n\t "), Options{})
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestRead_MinLength(t *testing.T) {
	words, err := Read(strings.NewReader("a ab abc a-b-c 123 abcd"), Options{MinLength: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "a-b-c", "abcd"}, words)
}

func TestRead_Encodings(t *testing.T) {
	latin := []byte("caf\xe9 na\xefve")
	for _, name := range []string{"latin1", "ISO-8859-1", "windows-1252", "cp1252", "iso-8859-15"} {
		t.Run(name, func(t *testing.T) {
			words, err := Read(bytes.NewReader(latin), Options{Encoding: name})
			require.NoError(t, err)
			assert.Equal(t, []string{"café", "naïve"}, words)
		})
	}

	words, err := Read(strings.NewReader("café"), Options{Encoding: "utf-8"})
	require.NoError(t, err)
	assert.Equal(t, []string{"café"}, words)
}

func TestRead_UnsupportedEncoding(t *testing.T) {
	_, err := Read(strings.NewReader("x"), Options{Encoding: "ebcdic"})
	require.ErrorIs(t, err, ErrUnsupportedEncoding)
	require.ErrorIs(t, CheckEncoding("koi8"), ErrUnsupportedEncoding)
	require.NoError(t, CheckEncoding("Latin1"))
}

func TestRead_LongToken(t *testing.T) {
	long := strings.Repeat("a", 200_000)
	words, err := Read(strings.NewReader("x "+long+" y"), Options{})
	require.NoError(t, err)
	require.Len(t, words, 3)
	assert.Len(t, words[1], len(long))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		opts Options
	}{
		{"plain", "words.txt", []byte(sample), Options{}},
		{"zstd by extension", "words.txt.zst", zstdBytes(t, sample), Options{}},
		{"zstd by magic", "words.bin", zstdBytes(t, sample), Options{}},
		{"lz4 by extension", "words.lz4", lz4Bytes(t, sample), Options{}},
		{"lz4 by magic", "words.dat", lz4Bytes(t, sample), Options{}},
		{"forced zstd", "words.txt", zstdBytes(t, sample), Options{Compression: Zstd}},
		{"forced none", "words.zst", []byte(sample), Options{Compression: None}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.data)
			words, err := Load(path, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, sampleWords, words)
		})
	}
}

func TestLoad_EncodedAndCompressed(t *testing.T) {
	path := writeFile(t, "words.zst", zstdBytes(t, "caf\xe9 d\xe9j\xe0"))
	words, err := Load(path, Options{Encoding: "latin1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"café", "déjà"}, words)
}

func TestLoad_EmptyFile(t *testing.T) {
	words, err := Load(writeFile(t, "empty.txt", nil), Options{})
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.zst", []byte("not zstd at all")), Options{})
	require.Error(t, err)

	_, err = Load(writeFile(t, "w.txt", []byte(sample)), Options{Compression: Compression(42)})
	require.ErrorIs(t, err, ErrUnknownCompression)
}

func TestLoad_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := Load(writeFile(t, "w.txt", []byte(sample)), Options{Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "loaded corpus")
	assert.Contains(t, buf.String(), "words=6")
}

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]Compression{"": Auto, "auto": Auto, "none": None, "ZSTD": Zstd, "zst": Zstd, "lz4": LZ4} {
		got, err := ParseCompression(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
		if in != "" && in != "zst" && in != "ZSTD" {
			assert.Equal(t, in, got.String())
		}
	}
	_, err := ParseCompression("brotli")
	require.ErrorIs(t, err, ErrUnknownCompression)
}
