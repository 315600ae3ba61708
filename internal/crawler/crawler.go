package crawler

import (
	"context"
	"log"
	"strings"
)

// Observer receives discovery events during a crawl. Reporting is for
// observability only; it has no effect on the crawl result.
type Observer interface {
	SynsetDiscovered(id, lemma string, depth int)
	RelationSeen(relation, fromID, toID, lemma string)
}

type logObserver struct{}

func (logObserver) SynsetDiscovered(id, lemma string, depth int) {
	log.Printf("[+] Discovered synset %s -> %s (depth %d)", id, lemma, depth)
}

func (logObserver) RelationSeen(relation, fromID, toID, lemma string) {
	log.Printf("    [->] %s: %s -> %s (%s)", strings.ToUpper(relation), fromID, toID, lemma)
}

// Stats aggregates the outcome of one crawl.
type Stats struct {
	Discovered     int
	SynsetFailures int64
	EdgeFailures   int64
}

// Crawler performs a bounded breadth-first traversal over the relation
// graph: hypernyms, hyponyms, meronyms and cohyponyms of every
// non-terminal node, up to MaxDepth levels and MaxItems neighbors per
// relation category.
type Crawler struct {
	fetcher  *Fetcher
	maxDepth int
	maxItems int
	observer Observer
}

// New creates a crawler. maxDepth bounds the traversal depth; maxItems
// bounds the fan-out retained per relation category per node.
func New(fetcher *Fetcher, maxDepth, maxItems int) *Crawler {
	return &Crawler{
		fetcher:  fetcher,
		maxDepth: maxDepth,
		maxItems: maxItems,
		observer: logObserver{},
	}
}

// SetObserver replaces the default log observer.
func (c *Crawler) SetObserver(o Observer) {
	if o != nil {
		c.observer = o
	}
}

type queueItem struct {
	id    string
	depth int
}

// Crawl traverses the graph from the given seeds and returns every
// discovered synset identifier mapped to its reference-language lemma
// (NoLemma when untranslated). A synset that fails to fetch contributes
// nothing; the traversal continues with the remaining queue.
func (c *Crawler) Crawl(ctx context.Context, seeds []string) (map[string]string, Stats) {
	visited := make(map[string]string)
	for _, seed := range seeds {
		c.traverse(ctx, seed, visited)
	}

	stats := Stats{Discovered: len(visited)}
	stats.SynsetFailures, stats.EdgeFailures = c.fetcher.Failures()
	return visited, stats
}

func (c *Crawler) traverse(ctx context.Context, seed string, visited map[string]string) {
	queue := []queueItem{{id: seed, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if _, ok := visited[current.id]; ok {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		lemma, err := c.fetcher.Lemma(ctx, current.id)
		if err != nil {
			log.Printf("[Crawler] Could not retrieve synset %s: %v", current.id, err)
			c.fetcher.countSynsetFailure()
			continue
		}

		visited[current.id] = lemma
		c.observer.SynsetDiscovered(current.id, lemma, current.depth)

		if current.depth >= c.maxDepth {
			continue
		}

		var relations []Relative
		relations = append(relations, c.fetcher.Hypernyms(ctx, current.id, c.maxItems)...)
		relations = append(relations, c.fetcher.Hyponyms(ctx, current.id, c.maxItems)...)
		relations = append(relations, c.fetcher.Meronyms(ctx, current.id, c.maxItems)...)
		relations = append(relations, c.fetcher.Cohyponyms(ctx, current.id, c.maxItems)...)

		for _, rel := range relations {
			c.observer.RelationSeen(rel.Relation, current.id, rel.ID, rel.Lemma)
			if _, ok := visited[rel.ID]; !ok {
				queue = append(queue, queueItem{id: rel.ID, depth: current.depth + 1})
			}
		}
	}
}
