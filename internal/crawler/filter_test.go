package crawler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/model"
)

func TestFilterKeepsCompleteProfiles(t *testing.T) {
	src := starGraph()
	// lone has a hypernym but nothing else
	src.addSynset("lone", "island")
	src.addEdge("lone", model.KindHypernym, "n1")

	filter := NewFilter(NewFetcher(src, cache.NewMemo(), "en"), 4)
	kept, stats := filter.Run(context.Background(), []string{"root", "lone", "n2"})

	assert.Equal(t, []string{"root"}, kept)
	assert.Equal(t, 3, stats.Checked)
	assert.Equal(t, 1, stats.Kept)
	assert.Equal(t, 0, stats.Skipped)
}

func TestFilterSkipsEmptyIdentifiers(t *testing.T) {
	src := starGraph()
	filter := NewFilter(NewFetcher(src, cache.NewMemo(), "en"), 2)

	kept, stats := filter.Run(context.Background(), []string{"", "root", ""})

	assert.Equal(t, []string{"root"}, kept)
	assert.Equal(t, 1, stats.Checked)
	assert.Equal(t, 2, stats.Skipped)
}
