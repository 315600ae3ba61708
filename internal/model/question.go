package model

import "time"

// QuestionMetadata carries the provenance block attached to every question.
type QuestionMetadata struct {
	ResourcePair     string `json:"resource_pair" bson:"resource_pair"`
	PromptLang       string `json:"prompt_lang" bson:"prompt_lang"`
	FromLang         string `json:"from_lang" bson:"from_lang"`
	ToLang           string `json:"to_lang" bson:"to_lang"`
	Difficulty       int    `json:"difficulty" bson:"difficulty"`
	DistractorType   string `json:"distractor_type" bson:"distractor_type"`
	GenerationTime   string `json:"generation_time" bson:"generation_time"`
	SynsetID         string `json:"synset_id" bson:"synset_id"`
	MultilingualMode string `json:"multilingual_mode" bson:"multilingual_mode"`
}

// Question is a finalized multiple-choice record. Never mutated after creation.
type Question struct {
	ID          string           `json:"id" bson:"id"`
	Prompt      string           `json:"prompt" bson:"prompt"`
	Options     []string         `json:"options" bson:"options"`
	AnswerIndex int              `json:"answer_index" bson:"answer_index"`
	Metadata    QuestionMetadata `json:"metadata" bson:"metadata"`
}

// QuestionBatch groups the questions produced by one generation run.
type QuestionBatch struct {
	ID        string    `json:"id" bson:"_id"`
	Task      string    `json:"task" bson:"task"`
	Mode      string    `json:"mode" bson:"mode"`
	Count     int       `json:"count" bson:"count"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// BatchStats summarizes the question mix of one batch.
type BatchStats struct {
	BatchID      string         `json:"batchId"`
	Total        int            `json:"total"`
	ByDifficulty map[string]int `json:"byDifficulty"`
	ByPair       map[string]int `json:"byPair"`
}
