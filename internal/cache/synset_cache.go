package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"lexiquiz/internal/model"
)

// SynsetCache handles Redis operations for fetched synsets, so repeated
// pipeline runs against the rate-limited graph service can reuse lookups.
type SynsetCache interface {
	Get(ctx context.Context, id string) (*model.Synset, error)
	Set(ctx context.Context, synset *model.Synset) error
	Delete(ctx context.Context, id string) error
}

type synsetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSynsetCache creates a new synset cache.
func NewSynsetCache(client *redis.Client) SynsetCache {
	return &synsetCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *synsetCache) key(id string) string {
	return "synset:" + id
}

func (c *synsetCache) Get(ctx context.Context, id string) (*model.Synset, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var synset model.Synset
	if err := json.Unmarshal([]byte(data), &synset); err != nil {
		return nil, err
	}
	return &synset, nil
}

func (c *synsetCache) Set(ctx context.Context, synset *model.Synset) error {
	data, err := json.Marshal(synset)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(synset.ID), data, c.ttl).Err()
}

func (c *synsetCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
