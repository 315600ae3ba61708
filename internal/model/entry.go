package model

// Translation is a lemma for one language in an enriched pool entry.
type Translation struct {
	Lemma        string `json:"lemma" bson:"lemma"`
	LanguageName string `json:"language_name" bson:"language_name"`
}

// Relative references a semantically related synset together with its
// multilingual translations.
type Relative struct {
	ID           string                 `json:"id" bson:"id"`
	Lemma        string                 `json:"lemma" bson:"lemma"`
	Translations map[string]Translation `json:"translations,omitempty" bson:"translations,omitempty"`
}

// Entry is one enriched synset record of the node pool consumed by the
// question generator. The JSON field names are the canonical serialized
// form of the pool file.
type Entry struct {
	SynsetID     string                 `json:"synset_id" bson:"synset_id"`
	LemmaEN      string                 `json:"lemma_en" bson:"lemma_en"`
	Translations map[string]Translation `json:"translations" bson:"translations"`
	Glossary     map[string]Gloss       `json:"glossary,omitempty" bson:"glossary,omitempty"`
	Examples     map[string][]Example   `json:"examples,omitempty" bson:"examples,omitempty"`
	Hypernyms    []Relative             `json:"hypernyms" bson:"hypernyms"`
	Hyponyms     []Relative             `json:"hyponyms" bson:"hyponyms"`
	Meronyms     []Relative             `json:"meronyms" bson:"meronyms"`
	Cohyponyms   []Relative             `json:"cohyponyms" bson:"cohyponyms"`
}

// Relatives returns the relation list for a serialized field name
// ("hypernyms", "hyponyms", "meronyms" or "cohyponyms").
func (e *Entry) Relatives(field string) []Relative {
	switch field {
	case "hypernyms":
		return e.Hypernyms
	case "hyponyms":
		return e.Hyponyms
	case "meronyms":
		return e.Meronyms
	case "cohyponyms":
		return e.Cohyponyms
	}
	return nil
}
