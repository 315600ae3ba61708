package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageInventory(t *testing.T) {
	assert.Len(t, Languages[TierHigh], 25)
	assert.Len(t, Languages[TierMedium], 15)
	assert.Len(t, Languages[TierLow], 10)

	all := AllLanguages()
	assert.Len(t, all, 50)

	seen := make(map[string]bool)
	for _, code := range all {
		assert.False(t, seen[code], "duplicate language code %s", code)
		seen[code] = true
	}
}

func TestLangInfo(t *testing.T) {
	name, tier, ok := LangInfo("en")
	require.True(t, ok)
	assert.Equal(t, "English", name)
	assert.Equal(t, TierHigh, tier)

	name, tier, ok = LangInfo("sw")
	require.True(t, ok)
	assert.Equal(t, "Swahili", name)
	assert.Equal(t, TierLow, tier)

	_, _, ok = LangInfo("xx")
	assert.False(t, ok)
}

func TestMainLemma(t *testing.T) {
	s := &Synset{ID: "s1", Lemmas: map[string]string{"en": "dog"}}
	assert.Equal(t, "dog", s.MainLemma("en"))
	assert.Equal(t, NoLemma, s.MainLemma("de"))

	empty := &Synset{ID: "s2", Lemmas: map[string]string{"en": ""}}
	assert.Equal(t, NoLemma, empty.MainLemma("en"))
}
