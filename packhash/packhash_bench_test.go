package packhash

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/joshuapare/anagramkit/alloc"
)

// Benchmark_Hash measures the single-register fast path.
func Benchmark_Hash(b *testing.B) {
	h, err := New(sampleCorpus, Options{})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = h.Hash("listen")
	}
}

// Benchmark_Hash_Checked measures hashing with count validation.
func Benchmark_Hash_Checked(b *testing.B) {
	h, err := New(sampleCorpus, Options{Mode: Checked})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = h.Hash("listen")
	}
}

// Benchmark_QuickHash measures the two-register corpus-free hasher.
func Benchmark_QuickHash(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		_ = QuickHash("listen")
	}
}

func Benchmark_GroupAnagrams(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	words := randomWords(rng, 100_000, 8)
	h, err := New(words, Options{Alloc: alloc.Options{Overflow: alloc.Extend}})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = h.GroupAnagrams(words)
	}
}

func Benchmark_GroupParallel(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	words := randomWords(rng, 100_000, 8)
	h, err := New(words, Options{Alloc: alloc.Options{Overflow: alloc.Extend}})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = h.GroupParallel(ctx, words, 0)
	}
}
