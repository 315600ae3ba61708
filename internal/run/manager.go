package run

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"lexiquiz/internal/crawler"
	"lexiquiz/internal/enrich"
	"lexiquiz/internal/repository"
	"lexiquiz/internal/transport/ws"
)

// Status is the lifecycle state of a crawl run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run records one crawl-and-enrich execution launched over the API.
type Run struct {
	ID         string     `json:"id"`
	Seeds      []string   `json:"seeds"`
	MaxDepth   int        `json:"maxDepth"`
	MaxItems   int        `json:"maxItems"`
	Status     Status     `json:"status"`
	Discovered int        `json:"discovered"`
	Enriched   int        `json:"enriched"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Manager launches crawl runs in the background and tracks their state.
// Discovery events stream to WebSocket watchers; enriched entries land in
// the entry repository.
type Manager struct {
	fetcher  *crawler.Fetcher
	enricher *enrich.Enricher
	entries  repository.EntryRepo
	hub      *ws.Hub

	mu   sync.RWMutex
	runs map[string]*Run
}

// NewManager creates a run manager. entries may be nil when persistence is
// disabled.
func NewManager(fetcher *crawler.Fetcher, enricher *enrich.Enricher, entries repository.EntryRepo, hub *ws.Hub) *Manager {
	return &Manager{
		fetcher:  fetcher,
		enricher: enricher,
		entries:  entries,
		hub:      hub,
		runs:     make(map[string]*Run),
	}
}

// Launch starts a crawl in the background and returns a snapshot of its
// run record immediately.
func (m *Manager) Launch(seeds []string, maxDepth, maxItems int) Run {
	run := &Run{
		ID:        "run_" + uuid.New().String()[:8],
		Seeds:     seeds,
		MaxDepth:  maxDepth,
		MaxItems:  maxItems,
		Status:    StatusRunning,
		StartedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.runs[run.ID] = run
	m.mu.Unlock()

	go m.execute(run)
	return *run
}

// Get returns a snapshot of the run record. The background goroutine keeps
// mutating the tracked record, so callers only ever see copies.
func (m *Manager) Get(runID string) (Run, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.runs[runID]
	if !ok {
		return Run{}, false
	}
	return *r, true
}

// List returns a snapshot of every tracked run.
func (m *Manager) List() []Run {
	m.mu.RLock()
	defer m.mu.RUnlock()
	runs := make([]Run, 0, len(m.runs))
	for _, r := range m.runs {
		runs = append(runs, *r)
	}
	return runs
}

func (m *Manager) execute(run *Run) {
	ctx := context.Background()

	m.hub.BroadcastToRun(run.ID, ws.MsgCrawlStarted, map[string]interface{}{
		"runId": run.ID,
		"seeds": run.Seeds,
	})

	c := crawler.New(m.fetcher, run.MaxDepth, run.MaxItems)
	c.SetObserver(ws.NewCrawlNotifier(m.hub, run.ID))

	visited, stats := c.Crawl(ctx, run.Seeds)
	log.Printf("[Run %s] Crawl finished: %d synsets discovered (%d synset failures, %d edge failures)",
		run.ID, stats.Discovered, stats.SynsetFailures, stats.EdgeFailures)

	ids := make([]string, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	entries := m.enricher.Build(ctx, ids)

	if m.entries != nil {
		if err := m.entries.UpsertMany(ctx, entries); err != nil {
			log.Printf("[Run %s] Failed to persist entries: %v", run.ID, err)
			m.finish(run, stats.Discovered, len(entries), err.Error())
			m.hub.BroadcastToRun(run.ID, ws.MsgCrawlFailed, map[string]interface{}{
				"runId": run.ID,
				"error": err.Error(),
			})
			return
		}
	}

	m.finish(run, stats.Discovered, len(entries), "")
	m.hub.BroadcastToRun(run.ID, ws.MsgCrawlFinished, map[string]interface{}{
		"runId":      run.ID,
		"discovered": stats.Discovered,
		"enriched":   len(entries),
	})
}

func (m *Manager) finish(run *Run, discovered, enriched int, errMsg string) {
	now := time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	run.Discovered = discovered
	run.Enriched = enriched
	run.FinishedAt = &now
	if errMsg != "" {
		run.Status = StatusFailed
		run.Error = errMsg
	} else {
		run.Status = StatusCompleted
	}
}
