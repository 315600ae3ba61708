package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lexiquiz/internal/model"
)

type QuestionRepo interface {
	// Batch persistence
	CreateBatch(ctx context.Context, batch *model.QuestionBatch, questions []model.Question) error
	GetBatch(ctx context.Context, batchID string) (*model.QuestionBatch, error)
	GetBatches(ctx context.Context) ([]model.QuestionBatch, error)
	GetQuestions(ctx context.Context, batchID string) ([]model.Question, error)

	// Analysis Support Methods
	GetBatchStats(ctx context.Context, batchID string) (*model.BatchStats, error)
}

// storedQuestion attaches the owning batch to a question document.
type storedQuestion struct {
	BatchID  string         `bson:"batch_id"`
	Question model.Question `bson:"question"`
}

type questionRepo struct {
	batches   *mongo.Collection
	questions *mongo.Collection
}

func NewQuestionRepo(client *mongo.Client) QuestionRepo {
	db := client.Database("lexiquiz")
	return &questionRepo{
		batches:   db.Collection("batches"),
		questions: db.Collection("questions"),
	}
}

func (r *questionRepo) CreateBatch(ctx context.Context, batch *model.QuestionBatch, questions []model.Question) error {
	if _, err := r.batches.InsertOne(ctx, batch); err != nil {
		return err
	}
	if len(questions) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		docs = append(docs, storedQuestion{BatchID: batch.ID, Question: q})
	}

	_, err := r.questions.InsertMany(ctx, docs)
	return err
}

func (r *questionRepo) GetBatch(ctx context.Context, batchID string) (*model.QuestionBatch, error) {
	var batch model.QuestionBatch
	err := r.batches.FindOne(ctx, bson.M{"_id": batchID}).Decode(&batch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Batch not found
		}
		return nil, err
	}

	return &batch, nil
}

func (r *questionRepo) GetBatches(ctx context.Context) ([]model.QuestionBatch, error) {
	cursor, err := r.batches.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var batches []model.QuestionBatch
	if err = cursor.All(ctx, &batches); err != nil {
		return nil, err
	}

	return batches, nil
}

func (r *questionRepo) GetQuestions(ctx context.Context, batchID string) ([]model.Question, error) {
	cursor, err := r.questions.Find(ctx, bson.M{"batch_id": batchID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stored []storedQuestion
	if err = cursor.All(ctx, &stored); err != nil {
		return nil, err
	}

	questions := make([]model.Question, 0, len(stored))
	for _, s := range stored {
		questions = append(questions, s.Question)
	}
	return questions, nil
}

func (r *questionRepo) GetBatchStats(ctx context.Context, batchID string) (*model.BatchStats, error) {
	// Aggregate difficulty and language-pair counts server-side
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"batch_id": batchID}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"difficulty": "$question.metadata.difficulty",
				"pair": bson.M{"$concat": bson.A{
					"$question.metadata.from_lang", "_to_", "$question.metadata.to_lang",
				}},
			},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.questions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key struct {
			Difficulty int    `bson:"difficulty"`
			Pair       string `bson:"pair"`
		} `bson:"_id"`
		Count int `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &model.BatchStats{
		BatchID:      batchID,
		ByDifficulty: make(map[string]int),
		ByPair:       make(map[string]int),
	}
	for _, row := range rows {
		stats.Total += row.Count
		stats.ByDifficulty[fmt.Sprintf("diff%d", row.Key.Difficulty)] += row.Count
		stats.ByPair[row.Key.Pair] += row.Count
	}

	return stats, nil
}
