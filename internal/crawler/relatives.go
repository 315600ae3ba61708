package crawler

import (
	"context"
	"log"
	"sync/atomic"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/model"
	"lexiquiz/internal/service"
)

// Relative is one discovered neighbor of a synset.
type Relative struct {
	ID       string
	Lemma    string
	Relation string
}

// Fetcher resolves the four relation categories for a synset against the
// graph service, with memoized synset and lemma lookups. A single fetch
// failure yields zero discoveries for that sub-query and is counted, never
// raised. Safe for concurrent use (the filter's worker pool shares one).
type Fetcher struct {
	source  service.GraphSource
	memo    *cache.Memo
	refLang string

	synsetFailures atomic.Int64
	edgeFailures   atomic.Int64
}

// NewFetcher creates a fetcher resolving lemmas in the given reference language.
func NewFetcher(source service.GraphSource, memo *cache.Memo, refLang string) *Fetcher {
	return &Fetcher{
		source:  source,
		memo:    memo,
		refLang: refLang,
	}
}

// Lemma resolves the reference-language lemma of a synset, memoized per run.
func (f *Fetcher) Lemma(ctx context.Context, id string) (string, error) {
	if lemma, ok := f.memo.Lemma(id); ok {
		return lemma, nil
	}
	synset, err := f.source.Synset(ctx, id)
	if err != nil {
		return "", err
	}
	lemma := synset.MainLemma(f.refLang)
	f.memo.PutLemma(id, lemma)
	return lemma, nil
}

// fetchRelated collects up to max neighbors across the given pointer kinds,
// jointly capped. Targets without a reference-language lemma are dropped.
func (f *Fetcher) fetchRelated(ctx context.Context, id string, kinds []model.RelationKind, relation string, max int) []Relative {
	items := []Relative{}
	for _, kind := range kinds {
		if len(items) >= max {
			break
		}
		edges, err := f.source.Edges(ctx, id, kind)
		if err != nil {
			log.Printf("[Crawler] Error fetching %s for %s: %v", relation, id, err)
			f.countEdgeFailure()
			continue
		}
		for _, edge := range edges {
			if len(items) >= max {
				break
			}
			lemma, err := f.Lemma(ctx, edge.Target)
			if err != nil {
				log.Printf("[Crawler] Could not resolve %s target %s: %v", relation, edge.Target, err)
				f.countSynsetFailure()
				continue
			}
			if lemma == model.NoLemma {
				continue
			}
			items = append(items, Relative{ID: edge.Target, Lemma: lemma, Relation: relation})
		}
	}
	return items
}

// Hypernyms fetches up to max broader-term neighbors.
func (f *Fetcher) Hypernyms(ctx context.Context, id string, max int) []Relative {
	return f.fetchRelated(ctx, id, []model.RelationKind{model.KindHypernym}, "hypernym", max)
}

// Hyponyms fetches up to max narrower-term neighbors.
func (f *Fetcher) Hyponyms(ctx context.Context, id string, max int) []Relative {
	return f.fetchRelated(ctx, id, []model.RelationKind{model.KindHyponym}, "hyponym", max)
}

// Meronyms fetches up to max part-of neighbors, aggregating the part,
// member and substance sub-pointers under one joint cap.
func (f *Fetcher) Meronyms(ctx context.Context, id string, max int) []Relative {
	return f.fetchRelated(ctx, id, model.MeronymKinds, "meronym", max)
}

// Cohyponyms derives up to max sibling terms: for each hypernym of the
// synset, the hypernym's hyponyms excluding the synset itself.
func (f *Fetcher) Cohyponyms(ctx context.Context, id string, max int) []Relative {
	items := []Relative{}
	hyperEdges, err := f.source.Edges(ctx, id, model.KindHypernym)
	if err != nil {
		log.Printf("[Crawler] Error fetching cohyponyms for %s: %v", id, err)
		f.countEdgeFailure()
		return items
	}
	for _, hyperEdge := range hyperEdges {
		if len(items) >= max {
			break
		}
		hypoEdges, err := f.source.Edges(ctx, hyperEdge.Target, model.KindHyponym)
		if err != nil {
			log.Printf("[Crawler] Error fetching hyponyms of %s: %v", hyperEdge.Target, err)
			f.countEdgeFailure()
			continue
		}
		for _, hypoEdge := range hypoEdges {
			if len(items) >= max {
				break
			}
			if hypoEdge.Target == id {
				continue
			}
			lemma, err := f.Lemma(ctx, hypoEdge.Target)
			if err != nil {
				f.countSynsetFailure()
				continue
			}
			if lemma == model.NoLemma {
				continue
			}
			items = append(items, Relative{ID: hypoEdge.Target, Lemma: lemma, Relation: "cohyponym"})
		}
	}
	return items
}

// HasAllRelations reports whether a synset has at least one hypernym, one
// hyponym, one meronym and one cohyponym.
func (f *Fetcher) HasAllRelations(ctx context.Context, id string) bool {
	if len(f.Hypernyms(ctx, id, 1)) == 0 {
		return false
	}
	if len(f.Hyponyms(ctx, id, 1)) == 0 {
		return false
	}
	if len(f.Meronyms(ctx, id, 1)) == 0 {
		return false
	}
	return len(f.Cohyponyms(ctx, id, 1)) > 0
}

// Failures returns the per-run counts of failed synset and edge lookups.
func (f *Fetcher) Failures() (synsets, edges int64) {
	return f.synsetFailures.Load(), f.edgeFailures.Load()
}

// countSynsetFailure records one failed synset lookup.
func (f *Fetcher) countSynsetFailure() {
	f.synsetFailures.Add(1)
}

// countEdgeFailure records one failed edge lookup.
func (f *Fetcher) countEdgeFailure() {
	f.edgeFailures.Add(1)
}
