package enrich

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/crawler"
	"lexiquiz/internal/model"
)

type fakeSource struct {
	synsets map[string]*model.Synset
	edges   map[string]map[model.RelationKind][]model.Edge
}

func (f *fakeSource) Synset(ctx context.Context, id string) (*model.Synset, error) {
	s, ok := f.synsets[id]
	if !ok {
		return nil, fmt.Errorf("synset %s not found", id)
	}
	return s, nil
}

func (f *fakeSource) Edges(ctx context.Context, id string, kind model.RelationKind) ([]model.Edge, error) {
	return f.edges[id][kind], nil
}

func (f *fakeSource) addEdge(from string, kind model.RelationKind, to string) {
	if f.edges[from] == nil {
		f.edges[from] = make(map[model.RelationKind][]model.Edge)
	}
	f.edges[from][kind] = append(f.edges[from][kind], model.Edge{Kind: kind, Target: to})
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		synsets: make(map[string]*model.Synset),
		edges:   make(map[string]map[model.RelationKind][]model.Edge),
	}
}

func newEnricher(src *fakeSource) *Enricher {
	fetcher := crawler.NewFetcher(src, cache.NewMemo(), "en")
	return New(src, fetcher, 10)
}

func TestEntryTranslationsAndGloss(t *testing.T) {
	src := newFakeSource()
	src.synsets["s1"] = &model.Synset{
		ID: "s1",
		Lemmas: map[string]string{
			"en": "dog",
			"de": "Hund",
			"es": "perro",
			"xx": "ignored", // not a supported language
			"sw": "mbwa",
		},
		Glosses: []model.Gloss{
			{Text: "2020 revision", Language: "en", Source: "wn2020"},
			{Text: "a domesticated canid", Language: "en", Source: "wn"},
			{Text: "ein Haustier", Language: "de", Source: "wn"},
		},
		Examples: []model.Example{
			{Text: "the dog barked", Language: "en", Source: "wn"},
			{Text: "newer example", Language: "en", Source: "wn2020"},
		},
	}

	entry, err := newEnricher(src).Entry(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "dog", entry.LemmaEN)
	assert.Equal(t, "Hund", entry.Translations["de"].Lemma)
	assert.Equal(t, "German", entry.Translations["de"].LanguageName)
	assert.Equal(t, "mbwa", entry.Translations["sw"].Lemma)
	assert.NotContains(t, entry.Translations, "xx")

	// wn outranks wn2020, German glosses are not considered
	require.Contains(t, entry.Glossary, "en")
	assert.Equal(t, "a domesticated canid", entry.Glossary["en"].Text)

	require.Contains(t, entry.Examples, "en")
	require.Len(t, entry.Examples["en"], 1)
	assert.Equal(t, "the dog barked", entry.Examples["en"][0].Text)
}

func TestEntryDedupesRelativesByLemma(t *testing.T) {
	src := newFakeSource()
	src.synsets["s1"] = &model.Synset{ID: "s1", Lemmas: map[string]string{"en": "dog"}}
	src.synsets["h1"] = &model.Synset{ID: "h1", Lemmas: map[string]string{"en": "canine"}}
	src.synsets["h2"] = &model.Synset{ID: "h2", Lemmas: map[string]string{"en": "canine"}}
	src.addEdge("s1", model.KindHypernym, "h1")
	src.addEdge("s1", model.KindHypernym, "h2")

	entry, err := newEnricher(src).Entry(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, entry.Hypernyms, 1)
	assert.Equal(t, "h1", entry.Hypernyms[0].ID)
}

func TestBuildDropsFailedEntries(t *testing.T) {
	src := newFakeSource()
	src.synsets["s1"] = &model.Synset{ID: "s1", Lemmas: map[string]string{"en": "dog"}}

	entries := newEnricher(src).Build(context.Background(), []string{"s1", "ghost"})

	require.Len(t, entries, 1)
	assert.Equal(t, "s1", entries[0].SynsetID)
}
