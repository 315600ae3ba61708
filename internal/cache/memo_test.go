package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lexiquiz/internal/model"
)

func TestMemoSynsetWriteOnce(t *testing.T) {
	memo := NewMemo()

	first := &model.Synset{ID: "s1", Lemmas: map[string]string{"en": "dog"}}
	second := &model.Synset{ID: "s1", Lemmas: map[string]string{"en": "cat"}}

	memo.PutSynset(first)
	memo.PutSynset(second)

	got, ok := memo.Synset("s1")
	assert.True(t, ok)
	assert.Equal(t, "dog", got.Lemmas["en"])
	assert.Equal(t, 1, memo.Len())
}

func TestMemoLemmaWriteOnce(t *testing.T) {
	memo := NewMemo()

	memo.PutLemma("s1", "dog")
	memo.PutLemma("s1", "cat")

	lemma, ok := memo.Lemma("s1")
	assert.True(t, ok)
	assert.Equal(t, "dog", lemma)

	_, ok = memo.Lemma("s2")
	assert.False(t, ok)
}

func TestMemoNilSynsetIgnored(t *testing.T) {
	memo := NewMemo()
	memo.PutSynset(nil)
	assert.Equal(t, 0, memo.Len())
}
