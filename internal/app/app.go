package app

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"lexiquiz/config"
	"lexiquiz/internal/cache"
	"lexiquiz/internal/crawler"
	"lexiquiz/internal/service"
)

// App wires the graph lookup chain shared by every command: the HTTP
// client, the per-run memo table, the optional Redis synset cache and the
// relation fetcher.
type App struct {
	Config  *config.Config
	Memo    *cache.Memo
	Source  service.GraphSource
	Fetcher *crawler.Fetcher

	redisClient *redis.Client
}

// New builds the lookup chain. Redis is attached only when REDIS_ADDR is
// set and reachable; otherwise lookups go memo-then-remote.
func New(cfg *config.Config) *App {
	client := service.NewGraphClient(cfg.GraphBaseURL, cfg.GraphAPIKey)
	memo := cache.NewMemo()

	var redisClient *redis.Client
	var synsetCache cache.SynsetCache
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			log.Printf("Warning: Redis unreachable at %s, continuing without cache: %v", cfg.RedisAddr, err)
			redisClient.Close()
			redisClient = nil
		} else {
			synsetCache = cache.NewSynsetCache(redisClient)
			log.Println("Connected to Redis")
		}
	}

	source := service.NewMemoSource(client, memo, synsetCache)

	return &App{
		Config:      cfg,
		Memo:        memo,
		Source:      source,
		Fetcher:     crawler.NewFetcher(source, memo, cfg.RefLang),
		redisClient: redisClient,
	}
}

// Close releases the Redis connection, if any.
func (a *App) Close() {
	if a.redisClient != nil {
		a.redisClient.Close()
	}
}
