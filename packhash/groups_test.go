package packhash

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/anagramkit/alloc"
	"github.com/joshuapare/anagramkit/internal/letters"
)

// extend lets random corpora spill into extra registers.
var extend = alloc.Options{Overflow: alloc.Extend}

func TestGroupAnagrams_Sample(t *testing.T) {
	h := newHasher(t, sampleCorpus, Options{})
	groups, err := h.GroupAnagrams(sampleCorpus)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"store", "rotes", "tores", "stroe"}, groups.Get(mustHash(t, h, "store")))
	assert.ElementsMatch(t, []string{"listen", "silent", "enlist"}, groups.Get(mustHash(t, h, "listen")))
	assert.Equal(t, []string{"dog"}, groups.Get(mustHash(t, h, "dog")))
	assert.Equal(t, len(sampleCorpus), groups.Words())
	assert.Equal(t, 8, groups.Len())
}

func TestGroupAnagrams_Order(t *testing.T) {
	h := newHasher(t, sampleCorpus, Options{})
	words := []string{"tac", "dog", "act", "rotes", "cat", "store"}
	groups, err := h.GroupAnagrams(words)
	require.NoError(t, err)

	keys := groups.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, []string{"tac", "act", "cat"}, groups.Get(keys[0]))
	assert.Equal(t, []string{"dog"}, groups.Get(keys[1]))
	assert.Equal(t, []string{"rotes", "store"}, groups.Get(keys[2]))

	var visited [][]string
	for _, members := range groups.All() {
		visited = append(visited, members)
	}
	assert.Equal(t, [][]string{{"tac", "act", "cat"}, {"dog"}, {"rotes", "store"}}, visited)
}

func TestGroupAnagrams_Duplicates(t *testing.T) {
	h := newHasher(t, []string{"dog"}, Options{})
	groups, err := h.GroupAnagrams([]string{"dog", "dog", "god"})
	require.NoError(t, err)
	require.Equal(t, 1, groups.Len())
	assert.Equal(t, []string{"dog", "dog", "god"}, groups.Get(groups.Keys()[0]))
}

func TestGroupAnagrams_Empty(t *testing.T) {
	h := newHasher(t, sampleCorpus, Options{})
	groups, err := h.GroupAnagrams(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, groups.Len())
	assert.Empty(t, groups.Map())
}

func TestGroupAnagrams_CheckedOverflow(t *testing.T) {
	h := newHasher(t, []string{"ab"}, Options{Mode: Checked})
	_, err := h.GroupAnagrams([]string{"ab", "ba", "aab"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflowDetected))
	assert.Contains(t, err.Error(), `grouping "aab"`)
}

// TestGroupAnagrams_Partition checks every pair inside a group shares a
// letter multiset and no two groups do.
func TestGroupAnagrams_Partition(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 23))
	base := randomWords(rng, 150, 6)
	words := append([]string{}, base...)
	for _, w := range base[:50] {
		b := []byte(w)
		rng.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
		words = append(words, string(b))
	}

	h := newHasher(t, words, Options{Alloc: extend, Mode: Checked})
	groups, err := h.GroupAnagrams(words)
	require.NoError(t, err)
	assert.Equal(t, len(words), groups.Words())

	classes := make(map[letters.Counts]bool)
	for _, members := range groups.All() {
		first := letters.Count(members[0])
		for _, w := range members[1:] {
			require.Equal(t, first, letters.Count(w), "%q and %q share a group", members[0], w)
		}
		require.False(t, classes[first], "two groups for %v", first)
		classes[first] = true
	}
}

func TestGroups_Merge(t *testing.T) {
	a, b := NewGroups(), NewGroups()
	a.Add(FromUint64(1), "x")
	a.Add(FromUint64(2), "y")
	b.Add(FromUint64(3), "z")
	b.Add(FromUint64(1), "x2")

	a.Merge(b)
	assert.Equal(t, []Fingerprint{FromUint64(1), FromUint64(2), FromUint64(3)}, a.Keys())
	assert.Equal(t, []string{"x", "x2"}, a.Get(FromUint64(1)))
	assert.Equal(t, 4, a.Words())
}

func TestGroups_AccessorsCopy(t *testing.T) {
	g := NewGroups()
	g.Add(FromUint64(1), "a")
	g.Get(FromUint64(1))[0] = "mutated"
	g.Keys()[0] = FromUint64(9)
	g.Map()[FromUint64(1)][0] = "mutated"
	for _, words := range g.All() {
		words[0] = "mutated"
	}
	assert.Equal(t, []string{"a"}, g.Get(FromUint64(1)))
	assert.Equal(t, []Fingerprint{FromUint64(1)}, g.Keys())
	assert.Nil(t, g.Get(FromUint64(2)))
}

func TestGroupParallel_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 37))
	words := randomWords(rng, 40000, 5)
	h := newHasher(t, words, Options{Alloc: extend})

	want, err := h.GroupAnagrams(words)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 8} {
		got, err := h.GroupParallel(context.Background(), words, workers)
		require.NoError(t, err)
		require.Equal(t, want.Keys(), got.Keys(), "workers=%d", workers)
		for _, fp := range want.Keys() {
			require.Equal(t, want.Get(fp), got.Get(fp), "workers=%d", workers)
		}
	}
}

func TestGroupParallel_Cancelled(t *testing.T) {
	rng := rand.New(rand.NewPCG(41, 43))
	words := randomWords(rng, 20000, 5)
	h := newHasher(t, words, Options{Alloc: extend})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.GroupParallel(ctx, words, 4)
	require.ErrorIs(t, err, context.Canceled)

	_, err = h.GroupParallel(ctx, words[:10], 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGroupParallel_CheckedOverflow(t *testing.T) {
	rng := rand.New(rand.NewPCG(47, 53))
	words := randomWords(rng, 20000, 5)
	h := newHasher(t, words, Options{Alloc: extend, Mode: Checked})

	words = append(words, "qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq")
	_, err := h.GroupParallel(context.Background(), words, 4)
	require.ErrorIs(t, err, ErrOverflowDetected)
}
