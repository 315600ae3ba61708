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
	input := flag.String("input", "crawled.tsv", "identifier file to filter")
	output := flag.String("output", "filtered.txt", "output file of kept identifiers")
	workers := flag.Int("workers", -1, "concurrent relation checks (overrides FILTER_WORKERS)")
	flag.Parse()

	cfg := config.Load()
	if *workers > 0 {
		cfg.FilterWorkers = *workers
	}

	ids, err := dataset.ReadSeedIDs(*input)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d identifiers from %s", len(ids), *input)

	a := app.New(cfg)
	defer a.Close()

	filter := crawler.NewFilter(a.Fetcher, cfg.FilterWorkers)
	kept, stats := filter.Run(context.Background(), ids)

	log.Printf("Filter finished: %d checked, %d kept, %d skipped", stats.Checked, stats.Kept, stats.Skipped)

	if err := dataset.WriteIDs(*output, kept); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d identifiers to %s", len(kept), *output)
}
