package cache

import (
	"sync"

	"lexiquiz/internal/model"
)

// Memo is an in-process memoization table scoped to one crawl or build
// invocation. Synset and lemma entries are write-once: a second Put for the
// same key keeps the first value. Safe for concurrent use by the filter's
// worker pool.
type Memo struct {
	mu      sync.RWMutex
	synsets map[string]*model.Synset
	lemmas  map[string]string
}

// NewMemo creates an empty memo table.
func NewMemo() *Memo {
	return &Memo{
		synsets: make(map[string]*model.Synset),
		lemmas:  make(map[string]string),
	}
}

// Synset returns the memoized synset for an identifier.
func (m *Memo) Synset(id string) (*model.Synset, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.synsets[id]
	return s, ok
}

// PutSynset memoizes a fetched synset. The first write wins.
func (m *Memo) PutSynset(s *model.Synset) {
	if s == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.synsets[s.ID]; !ok {
		m.synsets[s.ID] = s
	}
}

// Lemma returns the memoized reference-language lemma for an identifier.
func (m *Memo) Lemma(id string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lemma, ok := m.lemmas[id]
	return lemma, ok
}

// PutLemma memoizes a resolved lemma. The first write wins.
func (m *Memo) PutLemma(id, lemma string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lemmas[id]; !ok {
		m.lemmas[id] = lemma
	}
}

// Len returns the number of memoized synsets.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.synsets)
}
