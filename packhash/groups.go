package packhash

import (
	"fmt"
	"iter"
	"slices"
)

// Groups partitions words into anagram classes keyed by fingerprint. Groups
// keep their creation order and each group keeps its words in the order
// they were added.
//
// Groups is not safe for concurrent mutation.
type Groups struct {
	order   []Fingerprint
	members map[Fingerprint][]string
	words   int
}

// NewGroups returns an empty Groups.
func NewGroups() *Groups {
	return &Groups{members: make(map[Fingerprint][]string)}
}

// Add appends word to the group for fp, creating the group if needed.
func (g *Groups) Add(fp Fingerprint, word string) {
	list, ok := g.members[fp]
	if !ok {
		g.order = append(g.order, fp)
	}
	g.members[fp] = append(list, word)
	g.words++
}

// Merge appends every group of o to g. Groups new to g are created after
// g's existing groups in o's creation order, and words keep their relative
// order.
func (g *Groups) Merge(o *Groups) {
	for _, fp := range o.order {
		list, ok := g.members[fp]
		if !ok {
			g.order = append(g.order, fp)
		}
		g.members[fp] = append(list, o.members[fp]...)
	}
	g.words += o.words
}

// Len returns the number of groups.
func (g *Groups) Len() int { return len(g.order) }

// Words returns the number of words across all groups.
func (g *Groups) Words() int { return g.words }

// Keys returns the fingerprints in group creation order.
func (g *Groups) Keys() []Fingerprint { return slices.Clone(g.order) }

// Get returns the words of the group for fp, or nil.
func (g *Groups) Get(fp Fingerprint) []string { return slices.Clone(g.members[fp]) }

// All iterates groups in creation order. Each yielded slice is a copy.
func (g *Groups) All() iter.Seq2[Fingerprint, []string] {
	return func(yield func(Fingerprint, []string) bool) {
		for _, fp := range g.order {
			if !yield(fp, slices.Clone(g.members[fp])) {
				return
			}
		}
	}
}

// Map returns the groups as a plain map.
func (g *Groups) Map() map[Fingerprint][]string {
	out := make(map[Fingerprint][]string, len(g.members))
	for fp, words := range g.members {
		out[fp] = slices.Clone(words)
	}
	return out
}

// GroupAnagrams hashes each word and groups it with its anagrams.
func (h *Hasher) GroupAnagrams(words []string) (*Groups, error) {
	return h.GroupSeq(slices.Values(words))
}

// GroupSeq is GroupAnagrams over a sequence. In Checked mode the first word
// that overflows its table aborts grouping.
func (h *Hasher) GroupSeq(words iter.Seq[string]) (*Groups, error) {
	g := NewGroups()
	for w := range words {
		if err := h.groupInto(g, w); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (h *Hasher) groupInto(g *Groups, word string) error {
	fp, err := h.Hash(word)
	if err != nil {
		return fmt.Errorf("grouping %q: %w", word, err)
	}
	g.Add(fp, word)
	return nil
}
