package main

import (
	"context"
	"flag"
	"log"

	"lexiquiz/config"
	"lexiquiz/internal/app"
	"lexiquiz/internal/crawler"
	"lexiquiz/internal/dataset"
)

func main() {
	input := flag.String("input", "seeds.txt", "newline-delimited seed synset identifiers")
	output := flag.String("output", "crawled.tsv", "output file (id<TAB>lemma per line)")
	depth := flag.Int("depth", -1, "max traversal depth (overrides CRAWL_MAX_DEPTH)")
	items := flag.Int("max", -1, "max neighbors per relation category (overrides CRAWL_MAX_ITEMS)")
	flag.Parse()

	cfg := config.Load()
	if *depth >= 0 {
		cfg.MaxDepth = *depth
	}
	if *items >= 0 {
		cfg.MaxItems = *items
	}

	seeds, err := dataset.ReadSeedIDs(*input)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d seed identifiers from %s", len(seeds), *input)

	a := app.New(cfg)
	defer a.Close()

	c := crawler.New(a.Fetcher, cfg.MaxDepth, cfg.MaxItems)
	visited, stats := c.Crawl(context.Background(), seeds)

	log.Printf("Crawl finished: %d synsets discovered (%d synset failures, %d edge failures)",
		stats.Discovered, stats.SynsetFailures, stats.EdgeFailures)

	if err := dataset.WriteIDLemmas(*output, visited); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d synsets to %s", len(visited), *output)
}
