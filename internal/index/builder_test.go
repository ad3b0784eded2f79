package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderTwoDocIntersectionScenario(t *testing.T) {
	b := NewBuilder(false, 0)
	b.AddDocument(1, "http://a", "Title A", "osmanlı imparatorluğu tarih")
	b.AddDocument(2, "http://b", "Title B", "osmanlı devleti")

	terms := b.SortedTerms()
	byTerm := map[string][]uint32{}
	for _, e := range terms {
		byTerm[e.Term] = e.DocIDs
	}

	assert.Equal(t, []uint32{1, 2}, byTerm["osmanlı"])
	assert.Equal(t, []uint32{1}, byTerm["tarih"])
	_, hasDevlet := byTerm["devlet"]
	assert.False(t, hasDevlet)
	assert.Equal(t, []uint32{2}, byTerm["devleti"])
}

func TestBuilderStemmingEquivalenceScenario(t *testing.T) {
	stemmed := NewBuilder(true, 0)
	stemmed.AddDocument(1, "http://x", "T", "kitap")
	stemmed.AddDocument(2, "http://y", "T", "kitaplar")

	byTerm := map[string][]uint32{}
	for _, e := range stemmed.SortedTerms() {
		byTerm[e.Term] = e.DocIDs
	}
	assert.Equal(t, []uint32{1, 2}, byTerm["kitap"])

	unstemmed := NewBuilder(false, 0)
	unstemmed.AddDocument(1, "http://x", "T", "kitap")
	unstemmed.AddDocument(2, "http://y", "T", "kitaplar")

	byTermU := map[string][]uint32{}
	for _, e := range unstemmed.SortedTerms() {
		byTermU[e.Term] = e.DocIDs
	}
	assert.Equal(t, []uint32{1}, byTermU["kitap"])
	_, hasKitaplar := byTermU["kitaplar"]
	assert.True(t, hasKitaplar)
}

func TestBuilderTokenCountCoversContentAndTitle(t *testing.T) {
	b := NewBuilder(false, 0)
	b.AddDocument(1, "http://a", "kitap", "kitap ev")
	docs := b.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, uint32(3), docs[0].TokenCount)
}

func TestNewBuilderBucketHintFallback(t *testing.T) {
	b := NewBuilder(false, 0)
	assert.NotNil(t, b.postings.entries)

	negative := NewBuilder(false, -5)
	assert.NotNil(t, negative.postings.entries)
}

func TestBuilderTwoLetterTermsAccepted(t *testing.T) {
	b := NewBuilder(false, 0)
	b.AddDocument(1, "http://a", "", "bu ve ev kitap")

	byTerm := map[string][]uint32{}
	for _, e := range b.SortedTerms() {
		byTerm[e.Term] = e.DocIDs
	}
	for _, term := range []string{"bu", "ve", "ev", "kitap"} {
		_, ok := byTerm[term]
		assert.True(t, ok, "expected %q to be indexed", term)
	}
}
