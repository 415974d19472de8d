package rag

import (
	"testing"

	"spendlens/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKnowledgeBase(t *testing.T) {
	first := DefaultKnowledgeBase()
	second := DefaultKnowledgeBase()

	require.Equal(t, first, second)
	require.Len(t, first, 7)

	categories := make([]string, len(first))
	for i, doc := range first {
		categories[i] = doc.Category
		assert.NotEmpty(t, doc.Content)
	}
	assert.Contains(t, categories, GeneralCategory)
}

func TestAdviceForCategory(t *testing.T) {
	corpus := DefaultKnowledgeBase()
	byCategory := make(map[string]string, len(corpus))
	for _, doc := range corpus {
		byCategory[doc.Category] = doc.Content
	}
	store := NewStore(corpus)
	general := byCategory[GeneralCategory]

	tests := []struct {
		name     string
		category string
		expected string
	}{
		{
			name:     "exact match",
			category: "Food",
			expected: byCategory["Food"],
		},
		{
			name:     "case-insensitive match",
			category: "food",
			expected: byCategory["Food"],
		},
		{
			name:     "uppercase match",
			category: "TRANSPORT",
			expected: byCategory["Transport"],
		},
		{
			name:     "unknown category falls back to General",
			category: "Unknown",
			expected: general,
		},
		{
			name:     "no partial matching",
			category: "Foo",
			expected: general,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, store.AdviceForCategory(tt.category))
		})
	}
}

func TestAdviceForCategoryWithoutGeneral(t *testing.T) {
	store := NewStore([]models.KnowledgeDocument{
		{Category: "Food", Content: "cook at home"},
	})

	assert.Equal(t, NoAdviceAvailable, store.AdviceForCategory("Transport"))
}

func TestNewStoreCopiesInput(t *testing.T) {
	docs := []models.KnowledgeDocument{
		{Category: "Food", Content: "cook at home"},
	}
	store := NewStore(docs)

	docs[0].Content = "mutated"
	assert.Equal(t, "cook at home", store.AdviceForCategory("Food"))
}
