package model

// NoLemma is the placeholder for a synset with no lemma in the requested language.
const NoLemma = "N/A"

// RelationKind identifies a typed outgoing edge pointer on the graph service.
type RelationKind string

const (
	KindHypernym         RelationKind = "hypernym"
	KindHyponym          RelationKind = "hyponym"
	KindPartMeronym      RelationKind = "part_meronym"
	KindMemberMeronym    RelationKind = "member_meronym"
	KindSubstanceMeronym RelationKind = "substance_meronym"
	KindHolonym          RelationKind = "holonym"
	KindSimilar          RelationKind = "similar"
	KindAlsoSee          RelationKind = "also_see"
	KindDerivation       RelationKind = "derivation"
	KindOther            RelationKind = "other"
)

// MeronymKinds are the sub-pointers aggregated into the single "meronym"
// relation used by the crawler and the enricher.
var MeronymKinds = []RelationKind{KindPartMeronym, KindMemberMeronym, KindSubstanceMeronym}

// Gloss is a short definition with its provenance source tag (wn, wn2020, ...).
type Gloss struct {
	Text     string `json:"text" bson:"text"`
	Language string `json:"language" bson:"language"`
	Source   string `json:"source" bson:"source"`
}

// Example is an example sentence with its provenance source tag.
type Example struct {
	Text     string `json:"text" bson:"text"`
	Language string `json:"language" bson:"language"`
	Source   string `json:"source" bson:"source"`
}

// Synset is one lexical concept as returned by the graph service.
// Instances are treated as immutable once fetched; the memo cache owns them.
type Synset struct {
	ID       string            `json:"id" bson:"_id"`
	Lemmas   map[string]string `json:"lemmas" bson:"lemmas"` // language code -> lemma
	Glosses  []Gloss           `json:"glosses,omitempty" bson:"glosses,omitempty"`
	Examples []Example         `json:"examples,omitempty" bson:"examples,omitempty"`
}

// MainLemma returns the synset's lemma in the given language, or NoLemma.
func (s *Synset) MainLemma(lang string) string {
	if lemma, ok := s.Lemmas[lang]; ok && lemma != "" {
		return lemma
	}
	return NoLemma
}

// Edge is a directed, typed link to another synset. Edges are discovered on
// demand and never persisted beyond the crawl's in-memory view.
type Edge struct {
	Kind   RelationKind `json:"kind"`
	Target string       `json:"target"`
}
