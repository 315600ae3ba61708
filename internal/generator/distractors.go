package generator

import (
	"sort"
	"strings"

	"lexiquiz/internal/model"
)

type stringSet map[string]struct{}

func (s stringSet) add(v string)      { s[v] = struct{}{} }
func (s stringSet) remove(v string)   { delete(s, v) }
func (s stringSet) has(v string) bool { _, ok := s[v]; return ok }

func (s stringSet) clone() stringSet {
	out := make(stringSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

func (s stringSet) union(other stringSet) stringSet {
	out := s.clone()
	for v := range other {
		out[v] = struct{}{}
	}
	return out
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// poolFunc selects one candidate pool for an entry in a target language.
type poolFunc func(g *Generator, entry *model.Entry, lang string) stringSet

// strategy is the ordered fallback chain for one difficulty tier. Pools are
// unioned in order until enough candidates accumulate; any remaining gap is
// filled from the full lemma universe.
type strategy struct {
	name  string
	pools []poolFunc
}

// Tier 1 is the easiest (unrelated vocabulary), tier 5 the closest
// confusion set.
var strategies = map[int]strategy{
	1: {"cross_domain_random", []poolFunc{crossDomainPool(50)}},
	2: {"distant_hypernyms", []poolFunc{distantHypernymPool, crossDomainPool(20)}},
	3: {"direct_relations", []poolFunc{directRelationPool, distantHypernymPool}},
	4: {"cohyponyms", []poolFunc{cohyponymPool, sharedHypernymPool, directHypernymPool}},
	5: {"close_relations", []poolFunc{closeRelationPool, cohyponymPool}},
}

// distractors assembles nChoices-1 distinct wrong options for the given
// difficulty tier, never including the correct lemma.
func (g *Generator) distractors(correct string, allCandidates stringSet, lang string, entry *model.Entry, difficulty int) ([]string, string, error) {
	strat, ok := strategies[difficulty]
	if !ok {
		strat = strategies[1]
	}

	need := g.nChoices - 1
	available := stringSet{}
	var picked []string

	for _, pool := range strat.pools {
		available = available.union(pool(g, entry, lang))
		available.remove(correct)
		if len(available) >= need {
			picked = g.sample(available, need)
			break
		}
	}
	if picked == nil {
		picked = available.sorted()
	}

	chosen := stringSet{}
	for _, lemma := range picked {
		chosen.add(lemma)
	}
	chosen.remove(correct)

	// Top up from the full universe until the set is complete.
	for len(chosen) < need {
		remaining := allCandidates.clone()
		for lemma := range chosen {
			remaining.remove(lemma)
		}
		remaining.remove(correct)
		if len(remaining) == 0 {
			return nil, strat.name, errDistractorShortfall
		}
		chosen.add(g.sample(remaining, 1)[0])
	}

	return g.sample(chosen, need), strat.name, nil
}

// sample draws n distinct elements. Keys are sorted before shuffling so
// that a seeded generator is deterministic.
func (g *Generator) sample(set stringSet, n int) []string {
	keys := set.sorted()
	g.rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	if n > len(keys) {
		n = len(keys)
	}
	return keys[:n]
}

// crossDomainPool selects vocabulary with no semantic link to the entry,
// sampled down to sampleSize for diversity.
func crossDomainPool(sampleSize int) poolFunc {
	return func(g *Generator, entry *model.Entry, lang string) stringSet {
		excluded := g.exclusionSet(entry)

		var candidates []string
		for i := range g.data {
			other := &g.data[i]
			if excluded.has(other.SynsetID) {
				continue
			}
			if sharesVocabulary(entry, other, lang) {
				continue
			}
			if trans, ok := other.Translations[lang]; ok {
				candidates = append(candidates, trans.Lemma)
			}
		}

		pool := stringSet{}
		if len(candidates) > sampleSize {
			candidateSet := stringSet{}
			for _, lemma := range candidates {
				candidateSet.add(lemma)
			}
			for _, lemma := range g.sample(candidateSet, sampleSize) {
				pool.add(lemma)
			}
		} else {
			for _, lemma := range candidates {
				pool.add(lemma)
			}
		}
		return pool
	}
}

// distantHypernymPool selects grandparent concepts: hypernyms of the
// entry's hypernyms.
func distantHypernymPool(g *Generator, entry *model.Entry, lang string) stringSet {
	pool := stringSet{}
	for _, hyper := range entry.Hypernyms {
		grand, ok := g.synsetToEntry[hyper.ID]
		if !ok {
			continue
		}
		for _, gh := range grand.Hypernyms {
			if trans, ok := gh.Translations[lang]; ok {
				pool.add(trans.Lemma)
			}
		}
	}
	return pool
}

// directRelationPool selects the entry's direct hypernyms and hyponyms.
func directRelationPool(g *Generator, entry *model.Entry, lang string) stringSet {
	pool := stringSet{}
	for _, rel := range entry.Hypernyms {
		if trans, ok := rel.Translations[lang]; ok {
			pool.add(trans.Lemma)
		}
	}
	for _, rel := range entry.Hyponyms {
		if trans, ok := rel.Translations[lang]; ok {
			pool.add(trans.Lemma)
		}
	}
	return pool
}

// directHypernymPool selects only the direct hypernyms.
func directHypernymPool(g *Generator, entry *model.Entry, lang string) stringSet {
	pool := stringSet{}
	for _, rel := range entry.Hypernyms {
		if trans, ok := rel.Translations[lang]; ok {
			pool.add(trans.Lemma)
		}
	}
	return pool
}

// cohyponymPool selects the entry's sibling concepts.
func cohyponymPool(g *Generator, entry *model.Entry, lang string) stringSet {
	pool := stringSet{}
	for _, rel := range entry.Cohyponyms {
		if trans, ok := rel.Translations[lang]; ok {
			pool.add(trans.Lemma)
		}
	}
	return pool
}

// closeRelationPool selects meronyms plus vocabulary from synsets sharing
// a hypernym with the entry.
func closeRelationPool(g *Generator, entry *model.Entry, lang string) stringSet {
	pool := stringSet{}
	for _, rel := range entry.Meronyms {
		if trans, ok := rel.Translations[lang]; ok {
			pool.add(trans.Lemma)
		}
	}
	return pool.union(sharedHypernymPool(g, entry, lang))
}

// sharedHypernymPool selects other pool entries that share at least one
// direct hypernym with the entry.
func sharedHypernymPool(g *Generator, entry *model.Entry, lang string) stringSet {
	ourHypernyms := stringSet{}
	for _, rel := range entry.Hypernyms {
		if rel.ID != "" {
			ourHypernyms.add(rel.ID)
		}
	}

	pool := stringSet{}
	for i := range g.data {
		other := &g.data[i]
		if other.SynsetID == entry.SynsetID {
			continue
		}
		for _, otherHyper := range other.Hypernyms {
			if ourHypernyms.has(otherHyper.ID) {
				if trans, ok := other.Translations[lang]; ok {
					pool.add(trans.Lemma)
				}
				break
			}
		}
	}
	return pool
}

// exclusionSet collects every synset id semantically tied to the entry:
// itself, all direct relations, three levels of ancestors, two levels of
// descendants, and any synset sharing a direct hypernym.
func (g *Generator) exclusionSet(entry *model.Entry) stringSet {
	excluded := stringSet{}
	excluded.add(entry.SynsetID)

	for _, field := range []string{"hypernyms", "hyponyms", "meronyms", "cohyponyms"} {
		for _, rel := range entry.Relatives(field) {
			if rel.ID != "" {
				excluded.add(rel.ID)
			}
		}
	}

	g.addAncestors(entry, excluded, 3, 0)
	g.addDescendants(entry, excluded, 2, 0)

	ourHypernyms := stringSet{}
	for _, rel := range entry.Hypernyms {
		ourHypernyms.add(rel.ID)
	}
	for i := range g.data {
		other := &g.data[i]
		if other.SynsetID == entry.SynsetID {
			continue
		}
		for _, otherHyper := range other.Hypernyms {
			if ourHypernyms.has(otherHyper.ID) {
				excluded.add(other.SynsetID)
				break
			}
		}
	}

	return excluded
}

func (g *Generator) addAncestors(entry *model.Entry, excluded stringSet, maxDepth, depth int) {
	if depth >= maxDepth {
		return
	}
	for _, rel := range entry.Hypernyms {
		if rel.ID == "" || excluded.has(rel.ID) {
			continue
		}
		excluded.add(rel.ID)
		if parent, ok := g.synsetToEntry[rel.ID]; ok {
			g.addAncestors(parent, excluded, maxDepth, depth+1)
		}
	}
}

func (g *Generator) addDescendants(entry *model.Entry, excluded stringSet, maxDepth, depth int) {
	if depth >= maxDepth {
		return
	}
	for _, rel := range entry.Hyponyms {
		if rel.ID == "" || excluded.has(rel.ID) {
			continue
		}
		excluded.add(rel.ID)
		if child, ok := g.synsetToEntry[rel.ID]; ok {
			g.addDescendants(child, excluded, maxDepth, depth+1)
		}
	}
}

// sharesVocabulary screens out lemmas lexically entangled with the prompt
// concept: substring containment either way, or an identical three-letter
// prefix on longer lemmas.
func sharesVocabulary(target, candidate *model.Entry, lang string) bool {
	targetTrans, ok := target.Translations[lang]
	if !ok {
		return false
	}
	candidateTrans, ok := candidate.Translations[lang]
	if !ok {
		return false
	}

	targetLemma := strings.ToLower(targetTrans.Lemma)
	candidateLemma := strings.ToLower(candidateTrans.Lemma)

	if strings.Contains(candidateLemma, targetLemma) || strings.Contains(targetLemma, candidateLemma) {
		return true
	}

	targetRunes := []rune(targetLemma)
	candidateRunes := []rune(candidateLemma)
	if len(targetRunes) > 3 && len(candidateRunes) > 3 {
		if string(targetRunes[:3]) == string(candidateRunes[:3]) {
			return true
		}
	}
	return false
}
