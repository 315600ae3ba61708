package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiquiz/internal/model"
)

func glossPool(n int) []model.Entry {
	entries := germanPool(n)
	for i := range entries {
		entries[i].Glossary = map[string]model.Gloss{
			"en": {Text: fmt.Sprintf("a kind of animal, number %d", i), Language: "en", Source: "wn"},
		}
	}
	return entries
}

func TestGenerateGlossCrossLingual(t *testing.T) {
	g := New(glossPool(12), Options{Seed: 4})

	questions := g.GenerateGloss(ModeEnToHigh, 6)
	require.NotEmpty(t, questions)

	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		assert.True(t, strings.HasPrefix(q.Prompt, "Definition (English):"), q.Prompt)
		assert.Contains(t, q.Prompt, "German")
		assert.Equal(t, "random", q.Metadata.DistractorType)
		assert.Equal(t, "de", q.Metadata.ToLang)
		assert.True(t, strings.HasPrefix(q.ID, "gloss_"))

		correct := q.Options[q.AnswerIndex]
		assert.True(t, strings.HasPrefix(correct, "tier") || correct == "wesen")
	}
}

func TestGenerateGlossMonolingualPrompt(t *testing.T) {
	g := New(glossPool(12), Options{Seed: 4})

	questions := g.GenerateGloss(ModeMonolingualEN, 3)
	require.NotEmpty(t, questions)
	for _, q := range questions {
		assert.True(t, strings.HasPrefix(q.Prompt, "Definition:"), q.Prompt)
		assert.Equal(t, "en", q.Metadata.ToLang)
	}
}

func TestGenerateGlossDifficultySplit(t *testing.T) {
	g := New(glossPool(20), Options{Seed: 8})

	questions := g.GenerateGloss(ModeEnToHigh, 6)

	counts := make(map[int]int)
	for _, q := range questions {
		counts[q.Metadata.Difficulty]++
	}
	for d := 1; d <= 3; d++ {
		assert.LessOrEqual(t, counts[d], 2, "difficulty %d", d)
	}
	assert.LessOrEqual(t, len(questions), 6)
}

func TestGenerateGlossSkipsEntriesWithoutGloss(t *testing.T) {
	entries := germanPool(8) // no glossaries at all
	g := New(entries, Options{Seed: 6})

	questions := g.GenerateGloss(ModeEnToHigh, 6)
	assert.Empty(t, questions)
}
