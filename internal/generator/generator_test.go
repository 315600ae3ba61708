package generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiquiz/internal/model"
)

func trans(pairs ...string) map[string]model.Translation {
	m := make(map[string]model.Translation, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _, _ := model.LangInfo(pairs[i])
		m[pairs[i]] = model.Translation{Lemma: pairs[i+1], LanguageName: name}
	}
	return m
}

// germanPool builds n entries that each translate into English and German
// and share one German-translated hypernym.
func germanPool(n int) []model.Entry {
	entries := make([]model.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, model.Entry{
			SynsetID:     fmt.Sprintf("s%d", i),
			LemmaEN:      fmt.Sprintf("animal%d", i),
			Translations: trans("en", fmt.Sprintf("animal%d", i), "de", fmt.Sprintf("tier%d", i)),
			Hypernyms: []model.Relative{{
				ID:           "h0",
				Lemma:        "creature",
				Translations: trans("en", "creature", "de", "wesen"),
			}},
		})
	}
	return entries
}

func TestGenerateTaskQuestionShape(t *testing.T) {
	g := New(germanPool(12), Options{Seed: 7})

	questions := g.GenerateTask(TaskHypernymy, ModeEnToHigh, 5)
	require.NotEmpty(t, questions)

	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		require.GreaterOrEqual(t, q.AnswerIndex, 0)
		require.Less(t, q.AnswerIndex, len(q.Options))

		correct := q.Options[q.AnswerIndex]
		assert.Equal(t, "wesen", correct)
		for i, opt := range q.Options {
			if i != q.AnswerIndex {
				assert.NotEqual(t, correct, opt)
			}
		}

		assert.Equal(t, "en", q.Metadata.FromLang)
		assert.Equal(t, "de", q.Metadata.ToLang)
		assert.Equal(t, "high_resource_to_high_resource", q.Metadata.ResourcePair)
		assert.Equal(t, "en", q.Metadata.PromptLang)
		assert.Equal(t, string(ModeEnToHigh), q.Metadata.MultilingualMode)
	}
}

func TestGenerateTaskBalancesDifficulties(t *testing.T) {
	g := New(germanPool(30), Options{Seed: 11})

	questions := g.GenerateTask(TaskHypernymy, ModeEnToHigh, 7)
	require.LessOrEqual(t, len(questions), 7)

	counts := make(map[int]int)
	for _, q := range questions {
		counts[q.Metadata.Difficulty]++
	}

	// 7 over 5 tiers: the remainder goes to the lowest tiers
	for d := 1; d <= 5; d++ {
		assert.InDelta(t, 7.0/5.0, float64(counts[d]), 1.0, "difficulty %d", d)
	}
	assert.Equal(t, 2, counts[1])
	assert.Equal(t, 2, counts[2])
	assert.Equal(t, 1, counts[5])
}

func TestGenerateTaskNeverReusesPromptWords(t *testing.T) {
	g := New(germanPool(20), Options{Seed: 3})

	questions := g.GenerateTask(TaskHypernymy, ModeEnToHigh, 15)

	seen := make(map[string]bool)
	for _, q := range questions {
		key := q.Metadata.FromLang + "|" + q.Prompt
		assert.False(t, seen[key], "prompt reused: %s", q.Prompt)
		seen[key] = true
	}
}

func TestGenerateTaskSkipsUntranslatedRelations(t *testing.T) {
	entries := germanPool(8)
	// one entry whose only hypernym has no German translation
	entries = append(entries, model.Entry{
		SynsetID:     "orphan",
		LemmaEN:      "platypus",
		Translations: trans("en", "platypus", "de", "schnabeltier"),
		Hypernyms: []model.Relative{{
			ID:           "h9",
			Lemma:        "monotreme",
			Translations: trans("en", "monotreme"),
		}},
	})

	g := New(entries, Options{Seed: 5})
	questions := g.GenerateTask(TaskHypernymy, ModeEnToHigh, 50)

	for _, q := range questions {
		assert.NotEqual(t, "orphan", q.Metadata.SynsetID)
	}
}

func TestGenerateTaskDeterministicWithSeed(t *testing.T) {
	a := New(germanPool(15), Options{Seed: 42}).GenerateTask(TaskHypernymy, ModeEnToHigh, 6)
	b := New(germanPool(15), Options{Seed: 42}).GenerateTask(TaskHypernymy, ModeEnToHigh, 6)

	require.Equal(t, len(a), len(b))
	for i := range a {
		// generation_time differs between runs
		assert.Equal(t, a[i].Prompt, b[i].Prompt)
		assert.Equal(t, a[i].Options, b[i].Options)
		assert.Equal(t, a[i].AnswerIndex, b[i].AnswerIndex)
	}
}

func TestGenerateTaskQuestionIDs(t *testing.T) {
	g := New(germanPool(10), Options{Seed: 9})

	questions := g.GenerateTask(TaskMeronymy, ModeEnToHigh, 5)
	assert.Empty(t, questions, "no meronyms in pool")

	questions = g.GenerateTask(TaskHypernymy, ModeEnToHigh, 5)
	require.NotEmpty(t, questions)
	assert.Equal(t, fmt.Sprintf("hypernymy_0_en_to_de_diff%d", questions[0].Metadata.Difficulty), questions[0].ID)
}

func TestMonolingualMode(t *testing.T) {
	g := New(germanPool(12), Options{Seed: 2})

	questions := g.GenerateTask(TaskHypernymy, ModeMonolingualEN, 5)
	require.NotEmpty(t, questions)
	for _, q := range questions {
		assert.Equal(t, "en", q.Metadata.FromLang)
		assert.Equal(t, "en", q.Metadata.ToLang)
		assert.Equal(t, "creature", q.Options[q.AnswerIndex])
	}
}

func TestSplitPair(t *testing.T) {
	from, to := splitPair("en_to_de")
	assert.Equal(t, "en", from)
	assert.Equal(t, "de", to)

	from, to = splitPair("sw_to_zh")
	assert.Equal(t, "sw", from)
	assert.Equal(t, "zh", to)
}
