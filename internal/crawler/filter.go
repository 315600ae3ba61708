package crawler

import (
	"context"
	"log"
	"sync"

	"lexiquiz/internal/worker"
)

// FilterStats aggregates the outcome of one filter pass.
type FilterStats struct {
	Checked int
	Kept    int
	Skipped int
}

// Filter keeps only the synsets that carry at least one neighbor in every
// relation category, so downstream question generation never runs out of
// material. Per-line checks are independent and run on a bounded worker
// pool; results are collected in completion order, which is fine because
// each kept identifier is independently valid.
type Filter struct {
	fetcher *Fetcher
	workers int
}

// NewFilter creates a filter running checks on the given number of workers.
func NewFilter(fetcher *Fetcher, workers int) *Filter {
	if workers <= 0 {
		workers = 10
	}
	return &Filter{
		fetcher: fetcher,
		workers: workers,
	}
}

// Run checks every identifier and returns the ones with a complete
// relation profile. Empty identifiers are skipped with a diagnostic.
func (f *Filter) Run(ctx context.Context, ids []string) ([]string, FilterStats) {
	stats := FilterStats{}

	pool := worker.NewPool(f.workers, len(ids)+1)
	pool.Start(ctx)

	var mu sync.Mutex
	kept := []string{}

	for i, id := range ids {
		if id == "" {
			log.Printf("[Filter] Line %d: skipped empty identifier", i+1)
			stats.Skipped++
			continue
		}
		stats.Checked++
		id := id
		if err := pool.Submit(func(ctx context.Context) {
			if f.fetcher.HasAllRelations(ctx, id) {
				mu.Lock()
				kept = append(kept, id)
				mu.Unlock()
			}
		}); err != nil {
			log.Printf("[Filter] Could not submit %s: %v", id, err)
		}
	}

	pool.Close()
	stats.Kept = len(kept)
	return kept, stats
}
