package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lexiquiz/config"
	"lexiquiz/internal/app"
	"lexiquiz/internal/dataset"
	"lexiquiz/internal/enrich"
	"lexiquiz/internal/repository"
)

func main() {
	input := flag.String("input", "filtered.txt", "identifier file to enrich")
	output := flag.String("output", "pool.json", "output entry pool file")
	items := flag.Int("max", -1, "max neighbors per relation category (overrides CRAWL_MAX_ITEMS)")
	store := flag.Bool("store", false, "also upsert entries into MongoDB")
	flag.Parse()

	cfg := config.Load()
	if *items >= 0 {
		cfg.MaxItems = *items
	}

	ids, err := dataset.ReadSeedIDs(*input)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d identifiers from %s", len(ids), *input)

	a := app.New(cfg)
	defer a.Close()

	ctx := context.Background()
	enricher := enrich.New(a.Source, a.Fetcher, cfg.MaxItems)
	entries := enricher.Build(ctx, ids)
	log.Printf("Enriched %d of %d entries", len(entries), len(ids))

	if err := dataset.WriteJSON(*output, entries); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote entry pool to %s", *output)

	if *store {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB:", err)
		}

		entryRepo := repository.NewEntryRepo(mongoClient)
		if err := entryRepo.UpsertMany(ctx, entries); err != nil {
			log.Fatal("Failed to store entries:", err)
		}
		log.Printf("Upserted %d entries into MongoDB", len(entries))
	}
}
