package rag

import (
	"testing"

	"spendlens/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRetriever(t *testing.T, docs []models.KnowledgeDocument) *Retriever {
	t.Helper()
	return NewRetriever(NewStore(docs), zap.NewNop())
}

func TestRetrieveRanksByRelevance(t *testing.T) {
	r := newTestRetriever(t, DefaultKnowledgeBase())

	results := r.Retrieve("how can I reduce my food expenses with meal planning", 3)

	require.NotEmpty(t, results)
	assert.Equal(t, "Food", results[0].Category)
}

func TestRetrieveDeterministic(t *testing.T) {
	first := newTestRetriever(t, DefaultKnowledgeBase())
	second := newTestRetriever(t, DefaultKnowledgeBase())

	query := "how should I budget my savings"
	assert.Equal(t, first.Retrieve(query, 5), second.Retrieve(query, 5))
}

func TestRetrieveTopKPrefix(t *testing.T) {
	r := newTestRetriever(t, DefaultKnowledgeBase())
	query := "saving money on transport and bills"

	for k := 1; k < 7; k++ {
		smaller := r.Retrieve(query, k)
		larger := r.Retrieve(query, k+1)

		require.LessOrEqual(t, len(smaller), len(larger))
		assert.Equal(t, smaller, larger[:len(smaller)])
	}
}

func TestRetrieveFiltersNonPositiveSimilarity(t *testing.T) {
	r := newTestRetriever(t, DefaultKnowledgeBase())

	// No vocabulary overlap with the corpus at all.
	assert.Empty(t, r.Retrieve("zebra quantum astronaut", 5))
}

func TestRetrieveStableTieBreak(t *testing.T) {
	docs := []models.KnowledgeDocument{
		{Category: "First", Content: "apple banana"},
		{Category: "Second", Content: "apple banana"},
		{Category: "Third", Content: "cherry melon"},
	}
	r := newTestRetriever(t, docs)

	results := r.Retrieve("apple banana", 3)

	require.Len(t, results, 2)
	assert.Equal(t, "First", results[0].Category)
	assert.Equal(t, "Second", results[1].Category)
}

func TestRetrieveEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		docs  []models.KnowledgeDocument
		query string
		topK  int
	}{
		{
			name:  "empty corpus",
			docs:  nil,
			query: "food",
			topK:  3,
		},
		{
			name:  "empty query",
			docs:  DefaultKnowledgeBase(),
			query: "",
			topK:  3,
		},
		{
			name:  "stop words only query",
			docs:  DefaultKnowledgeBase(),
			query: "the and of",
			topK:  3,
		},
		{
			name:  "zero topK",
			docs:  DefaultKnowledgeBase(),
			query: "food",
			topK:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRetriever(t, tt.docs)
			assert.Empty(t, r.Retrieve(tt.query, tt.topK))
		})
	}
}

func TestRetrieveTopKLargerThanCorpus(t *testing.T) {
	r := newTestRetriever(t, DefaultKnowledgeBase())

	results := r.Retrieve("budget expenses savings food transport bills shopping", 50)
	assert.LessOrEqual(t, len(results), 7)
	assert.NotEmpty(t, results)
}
