package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lexiquiz/config"
	"lexiquiz/internal/dataset"
	"lexiquiz/internal/generator"
	"lexiquiz/internal/model"
	"lexiquiz/internal/repository"
)

var modes = map[string]generator.Mode{
	"en_to_high":     generator.ModeEnToHigh,
	"en_to_medium":   generator.ModeEnToMedium,
	"en_to_low":      generator.ModeEnToLow,
	"en_to_all":      generator.ModeEnToAll,
	"monolingual_en": generator.ModeMonolingualEN,
	"all":            generator.ModeAll,
}

func main() {
	input := flag.String("input", "pool.json", "enriched entry pool file")
	outDir := flag.String("outdir", "", "output directory (defaults to DATASET_DIR)")
	taskName := flag.String("task", "all", "task to generate: hypernymy, meronymy, gloss or all")
	modeName := flag.String("mode", "en_to_high", "language pair mode")
	target := flag.Int("target", 50, "target questions per language pair")
	choices := flag.Int("choices", 4, "options per question")
	seed := flag.Int64("seed", 0, "random seed (0 means time-based)")
	store := flag.Bool("store", false, "also record the batch in MongoDB")
	flag.Parse()

	cfg := config.Load()
	dir := *outDir
	if dir == "" {
		dir = cfg.DatasetDir
	}

	mode, ok := modes[*modeName]
	if !ok {
		log.Fatalf("Unknown mode %q", *modeName)
	}

	entries, err := dataset.ReadEntries(*input)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d entries from %s", len(entries), *input)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	g := generator.New(entries, generator.Options{
		NChoices: *choices,
		Seed:     *seed,
	})

	batches := make(map[string][]model.Question)
	switch *taskName {
	case "hypernymy":
		batches["hypernymy"] = g.GenerateTask(generator.TaskHypernymy, mode, *target)
	case "meronymy":
		batches["meronymy"] = g.GenerateTask(generator.TaskMeronymy, mode, *target)
	case "gloss":
		batches["gloss"] = g.GenerateGloss(mode, *target)
	case "all":
		batches["hypernymy"] = g.GenerateTask(generator.TaskHypernymy, mode, *target)
		batches["meronymy"] = g.GenerateTask(generator.TaskMeronymy, mode, *target)
		batches["gloss"] = g.GenerateGloss(mode, *target)
	default:
		log.Fatalf("Unknown task %q", *taskName)
	}

	var questionRepo repository.QuestionRepo
	ctx := context.Background()
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
		questionRepo = repository.NewQuestionRepo(mongoClient)
	}

	for task, questions := range batches {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", task, *modeName))
		if err := dataset.WriteJSON(path, questions); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %d %s questions to %s", len(questions), task, path)

		if questionRepo != nil {
			batch := &model.QuestionBatch{
				ID:        "batch_" + uuid.New().String()[:8],
				Task:      task,
				Mode:      *modeName,
				Count:     len(questions),
				CreatedAt: time.Now().UTC(),
			}
			if err := questionRepo.CreateBatch(ctx, batch, questions); err != nil {
				log.Fatal("Failed to store batch:", err)
			}
			log.Printf("Recorded batch %s (%d questions)", batch.ID, batch.Count)
		}
	}
}
