package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/model"
)

func TestGraphClientSynset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/synsets/omw-00001-n", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{
			"id": "omw-00001-n",
			"senses": [
				{"language": "en", "lemma": "dog"},
				{"language": "en", "lemma": "domestic dog"},
				{"language": "de", "lemma": "Hund"}
			],
			"glosses": [{"language": "en", "gloss": "a canid", "source": "wn"}],
			"examples": [{"language": "en", "example": "the dog barked", "source": "wn"}]
		}`))
	}))
	defer srv.Close()

	client := NewGraphClient(srv.URL, "test-key")
	synset, err := client.Synset(context.Background(), "omw-00001-n")
	require.NoError(t, err)

	// first sense per language wins
	assert.Equal(t, "dog", synset.Lemmas["en"])
	assert.Equal(t, "Hund", synset.Lemmas["de"])
	require.Len(t, synset.Glosses, 1)
	assert.Equal(t, "a canid", synset.Glosses[0].Text)
	require.Len(t, synset.Examples, 1)
	assert.Equal(t, "the dog barked", synset.Examples[0].Text)
}

func TestGraphClientRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"data": [{"pointer": "hypernym", "target": "omw-00002-n"}]}`))
	}))
	defer srv.Close()

	client := NewGraphClient(srv.URL, "test-key")
	edges, err := client.Edges(context.Background(), "omw-00001-n", model.KindHypernym)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, edges, 1)
	assert.Equal(t, model.KindHypernym, edges[0].Kind)
	assert.Equal(t, "omw-00002-n", edges[0].Target)
}

func TestGraphClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewGraphClient(srv.URL, "test-key")
	_, err := client.Synset(context.Background(), "omw-00001-n")
	assert.ErrorContains(t, err, "graph API error 500")
}

func TestMemoSourceServesFromMemoFirst(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"id": "s1", "senses": [{"language": "en", "lemma": "dog"}]}`))
	}))
	defer srv.Close()

	client := NewGraphClient(srv.URL, "test-key")
	source := NewMemoSource(client, cache.NewMemo(), nil)

	for i := 0; i < 3; i++ {
		synset, err := source.Synset(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, "dog", synset.Lemmas["en"])
	}
	assert.Equal(t, int32(1), calls.Load())
}
