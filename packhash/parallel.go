package packhash

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// minBatch is the smallest batch worth handing to its own goroutine.
	minBatch = 4096

	// cancelCheckInterval is how many words a worker hashes between
	// context checks.
	cancelCheckInterval = 1024
)

// GroupParallel groups words like GroupAnagrams, spreading the hashing over
// up to workers goroutines (GOMAXPROCS when workers <= 0).
//
// Words are split into contiguous batches. Each batch is grouped locally and
// the local results are merged in batch order, so the result is identical
// to GroupAnagrams, including group and word order.
func (h *Hasher) GroupParallel(ctx context.Context, words []string, workers int) (*Groups, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, (len(words)+minBatch-1)/minBatch)
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return h.GroupAnagrams(words)
	}

	size := (len(words) + workers - 1) / workers
	parts := make([]*Groups, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range parts {
		lo := min(i*size, len(words))
		hi := min(lo+size, len(words))
		eg.Go(func() error {
			local := NewGroups()
			for j, w := range words[lo:hi] {
				if j%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := h.groupInto(local, w); err != nil {
					return err
				}
			}
			parts[i] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := NewGroups()
	for _, p := range parts {
		merged.Merge(p)
	}
	return merged, nil
}
