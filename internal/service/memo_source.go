package service

import (
	"context"
	"log"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/model"
)

// MemoSource decorates a GraphSource with the per-run memo table and an
// optional Redis synset cache. Synset lookups are served memo-first, then
// Redis, then the remote service; edge lookups always go to the remote
// service (edges are never persisted).
type MemoSource struct {
	source GraphSource
	memo   *cache.Memo
	redis  cache.SynsetCache // may be nil
}

// NewMemoSource wraps a graph source with memoized synset lookups.
// redisCache may be nil when no Redis is configured.
func NewMemoSource(source GraphSource, memo *cache.Memo, redisCache cache.SynsetCache) *MemoSource {
	return &MemoSource{
		source: source,
		memo:   memo,
		redis:  redisCache,
	}
}

func (m *MemoSource) Synset(ctx context.Context, id string) (*model.Synset, error) {
	if s, ok := m.memo.Synset(id); ok {
		return s, nil
	}

	if m.redis != nil {
		s, err := m.redis.Get(ctx, id)
		if err != nil {
			// Cache trouble is not fatal; fall through to the remote service.
			log.Printf("[Memo Source] Redis lookup failed for %s: %v", id, err)
		} else if s != nil {
			m.memo.PutSynset(s)
			return s, nil
		}
	}

	s, err := m.source.Synset(ctx, id)
	if err != nil {
		return nil, err
	}
	m.memo.PutSynset(s)
	if m.redis != nil {
		if err := m.redis.Set(ctx, s); err != nil {
			log.Printf("[Memo Source] Redis store failed for %s: %v", id, err)
		}
	}
	return s, nil
}

func (m *MemoSource) Edges(ctx context.Context, id string, kind model.RelationKind) ([]model.Edge, error) {
	return m.source.Edges(ctx, id, kind)
}
