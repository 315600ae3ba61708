package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lexiquiz/internal/model"
)

type EntryRepo interface {
	// Pool persistence
	UpsertMany(ctx context.Context, entries []model.Entry) error
	GetBySynsetID(ctx context.Context, synsetID string) (*model.Entry, error)
	GetAll(ctx context.Context) ([]model.Entry, error)

	// Coverage queries
	GetWithTranslation(ctx context.Context, lang string) ([]model.Entry, error)
	Count(ctx context.Context) (int64, error)
}

type entryRepo struct {
	collection *mongo.Collection
}

func NewEntryRepo(client *mongo.Client) EntryRepo {
	db := client.Database("lexiquiz")
	return &entryRepo{
		collection: db.Collection("entries"),
	}
}

func (r *entryRepo) UpsertMany(ctx context.Context, entries []model.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	// Replace each entry keyed by synset id so reruns stay idempotent
	models := make([]mongo.WriteModel, 0, len(entries))
	for _, entry := range entries {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"synset_id": entry.SynsetID}).
			SetReplacement(entry).
			SetUpsert(true))
	}

	_, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

func (r *entryRepo) GetBySynsetID(ctx context.Context, synsetID string) (*model.Entry, error) {
	var entry model.Entry
	err := r.collection.FindOne(ctx, bson.M{"synset_id": synsetID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Entry not found
		}
		return nil, err
	}

	return &entry, nil
}

func (r *entryRepo) GetAll(ctx context.Context) ([]model.Entry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.Entry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepo) GetWithTranslation(ctx context.Context, lang string) ([]model.Entry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"translations." + lang: bson.M{"$exists": true},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.Entry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
