package enrich

import (
	"context"
	"fmt"
	"log"
	"strings"

	"lexiquiz/internal/crawler"
	"lexiquiz/internal/model"
	"lexiquiz/internal/service"
)

// sourcePriority orders gloss/example provenance tags from most to least
// preferred.
var sourcePriority = []string{"wn", "wn2020"}

// Enricher turns filtered synset identifiers into pool entries carrying
// translations for every configured language, an English gloss and
// examples, and translated relation lists.
type Enricher struct {
	source   service.GraphSource
	fetcher  *crawler.Fetcher
	maxItems int
}

// New creates an enricher retaining up to maxItems neighbors per relation
// category.
func New(source service.GraphSource, fetcher *crawler.Fetcher, maxItems int) *Enricher {
	return &Enricher{
		source:   source,
		fetcher:  fetcher,
		maxItems: maxItems,
	}
}

// Entry builds the enriched pool record for one synset.
func (e *Enricher) Entry(ctx context.Context, id string) (*model.Entry, error) {
	synset, err := e.source.Synset(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve synset %s: %w", id, err)
	}

	entry := &model.Entry{
		SynsetID:     id,
		LemmaEN:      synset.MainLemma("en"),
		Translations: e.translations(synset),
		Glossary:     glossary(synset),
		Examples:     examples(synset),
	}

	entry.Hypernyms = e.enrichRelatives(ctx, dedupe(e.fetcher.Hypernyms(ctx, id, e.maxItems)))
	entry.Hyponyms = e.enrichRelatives(ctx, dedupe(e.fetcher.Hyponyms(ctx, id, e.maxItems)))
	entry.Meronyms = e.enrichRelatives(ctx, dedupe(e.fetcher.Meronyms(ctx, id, e.maxItems)))
	entry.Cohyponyms = e.enrichRelatives(ctx, dedupe(e.fetcher.Cohyponyms(ctx, id, e.maxItems)))

	return entry, nil
}

// Build enriches a list of identifiers. Failed entries are logged and
// dropped; the batch always completes.
func (e *Enricher) Build(ctx context.Context, ids []string) []model.Entry {
	entries := make([]model.Entry, 0, len(ids))
	for _, id := range ids {
		entry, err := e.Entry(ctx, id)
		if err != nil {
			log.Printf("[Enricher] %v", err)
			continue
		}
		entries = append(entries, *entry)
	}
	return entries
}

// translations maps every configured language with a lemma on the synset
// to its translation record.
func (e *Enricher) translations(synset *model.Synset) map[string]model.Translation {
	translations := make(map[string]model.Translation)
	for _, code := range model.AllLanguages() {
		lemma, ok := synset.Lemmas[code]
		if !ok || lemma == "" {
			continue
		}
		name, _, _ := model.LangInfo(code)
		translations[code] = model.Translation{
			Lemma:        lemma,
			LanguageName: name,
		}
	}
	return translations
}

// glossary picks the single English gloss with the most preferred source.
func glossary(synset *model.Synset) map[string]model.Gloss {
	var english []model.Gloss
	for _, g := range synset.Glosses {
		if strings.EqualFold(g.Language, "en") {
			english = append(english, g)
		}
	}
	if len(english) == 0 {
		return nil
	}

	bySource := make(map[string]model.Gloss, len(english))
	for _, g := range english {
		src := strings.ToLower(g.Source)
		if _, ok := bySource[src]; !ok {
			bySource[src] = g
		}
	}
	chosen := english[0]
	for _, preferred := range sourcePriority {
		if g, ok := bySource[preferred]; ok {
			chosen = g
			break
		}
	}
	return map[string]model.Gloss{"en": chosen}
}

// examples keeps the English examples of the most preferred source present.
func examples(synset *model.Synset) map[string][]model.Example {
	bySource := make(map[string][]model.Example)
	var firstSource string
	for _, ex := range synset.Examples {
		if !strings.EqualFold(ex.Language, "en") {
			continue
		}
		src := strings.ToLower(ex.Source)
		if firstSource == "" {
			firstSource = src
		}
		bySource[src] = append(bySource[src], ex)
	}
	if len(bySource) == 0 {
		return nil
	}

	chosen := bySource[firstSource]
	for _, preferred := range sourcePriority {
		if exs, ok := bySource[preferred]; ok {
			chosen = exs
			break
		}
	}
	return map[string][]model.Example{"en": chosen}
}

// enrichRelatives resolves the translation map for every related synset.
// A relative whose synset cannot be fetched is dropped with a diagnostic.
func (e *Enricher) enrichRelatives(ctx context.Context, relatives []crawler.Relative) []model.Relative {
	enriched := make([]model.Relative, 0, len(relatives))
	for _, rel := range relatives {
		synset, err := e.source.Synset(ctx, rel.ID)
		if err != nil {
			log.Printf("[Enricher] Failed to fetch translations for %s: %v", rel.ID, err)
			continue
		}
		enriched = append(enriched, model.Relative{
			ID:           rel.ID,
			Lemma:        rel.Lemma,
			Translations: e.translations(synset),
		})
	}
	return enriched
}

// dedupe removes relatives repeating an already-seen lemma.
func dedupe(relatives []crawler.Relative) []crawler.Relative {
	seen := make(map[string]bool, len(relatives))
	deduped := make([]crawler.Relative, 0, len(relatives))
	for _, rel := range relatives {
		if seen[rel.Lemma] {
			continue
		}
		seen[rel.Lemma] = true
		deduped = append(deduped, rel)
	}
	return deduped
}
