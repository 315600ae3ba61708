package run

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/crawler"
	"lexiquiz/internal/enrich"
	"lexiquiz/internal/model"
	"lexiquiz/internal/transport/ws"
)

// slowSource serves one synset per id with an artificial delay, keeping a
// launched run in flight long enough to observe it mid-execution.
type slowSource struct {
	delay time.Duration
}

func (s *slowSource) Synset(ctx context.Context, id string) (*model.Synset, error) {
	time.Sleep(s.delay)
	return &model.Synset{ID: id, Lemmas: map[string]string{"en": "dog"}}, nil
}

func (s *slowSource) Edges(ctx context.Context, id string, kind model.RelationKind) ([]model.Edge, error) {
	return nil, nil
}

func newTestManager(delay time.Duration) *Manager {
	src := &slowSource{delay: delay}
	fetcher := crawler.NewFetcher(src, cache.NewMemo(), "en")
	enricher := enrich.New(src, fetcher, 5)
	return NewManager(fetcher, enricher, nil, ws.NewHub())
}

func waitCompleted(t *testing.T, m *Manager, runID string) Run {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap, ok := m.Get(runID)
		require.True(t, ok)
		if snap.Status != StatusRunning {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("run never finished")
	return Run{}
}

func TestLaunchReturnsDetachedSnapshot(t *testing.T) {
	m := newTestManager(10 * time.Millisecond)

	launched := m.Launch([]string{"s1"}, 1, 5)
	assert.Equal(t, StatusRunning, launched.Status)
	assert.Nil(t, launched.FinishedAt)

	final := waitCompleted(t, m, launched.ID)
	assert.Equal(t, StatusCompleted, final.Status)
	assert.Equal(t, 1, final.Discovered)
	assert.Equal(t, 1, final.Enriched)
	require.NotNil(t, final.FinishedAt)

	// The record handed out at launch stays a point-in-time snapshot.
	assert.Equal(t, StatusRunning, launched.Status)
	assert.Nil(t, launched.FinishedAt)
}

func TestRunSnapshotsEncodeSafelyDuringRun(t *testing.T) {
	m := newTestManager(10 * time.Millisecond)

	launched := m.Launch([]string{"s1"}, 1, 5)

	// Encode snapshots concurrently with the background mutation in
	// finish; snapshots share no memory with the tracked record.
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.True(t, time.Now().Before(deadline), "run never finished")
		snap, ok := m.Get(launched.ID)
		require.True(t, ok)
		_, err := json.Marshal(snap)
		require.NoError(t, err)
		if snap.Status != StatusRunning {
			break
		}
	}

	list := m.List()
	require.Len(t, list, 1)
	_, err := json.Marshal(list)
	require.NoError(t, err)
}

func TestGetUnknownRun(t *testing.T) {
	m := newTestManager(0)

	_, ok := m.Get("run_missing")
	assert.False(t, ok)
}
