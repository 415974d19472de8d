// Package rag implements retrieval-augmented prompt building over a fixed
// financial-advice knowledge base: a TF-IDF retriever, an expense-context
// digest, and a prompt assembler for the downstream LLM client.
//
// Retrieval is exact-term bag-of-words matching, not semantic search:
// synonyms only match when they share surface tokens after stopword removal.
// That is a deliberate tradeoff for a tiny fixed corpus.
package rag

import (
	"strings"

	"spendlens/internal/models"
)

// GeneralCategory tags the fallback document used when no category matches.
const GeneralCategory = "General"

// NoAdviceAvailable is returned when neither the requested category nor the
// General fallback exists in the corpus.
const NoAdviceAvailable = "No specific advice available for this category."

// Store holds the canonical advice document list. It is immutable after
// construction and safe for any number of concurrent readers.
type Store struct {
	documents []models.KnowledgeDocument
}

// NewStore builds a store over the given documents. Passing
// DefaultKnowledgeBase() twice yields identical stores.
func NewStore(documents []models.KnowledgeDocument) *Store {
	docs := make([]models.KnowledgeDocument, len(documents))
	copy(docs, documents)
	return &Store{documents: docs}
}

// Documents returns the corpus in its canonical order.
func (s *Store) Documents() []models.KnowledgeDocument {
	return s.documents
}

// AdviceForCategory returns the advice content for a spending category.
// Matching is case-insensitive and exact; unknown categories fall back to
// the General document, then to NoAdviceAvailable. Never errors.
func (s *Store) AdviceForCategory(category string) string {
	for _, doc := range s.documents {
		if strings.EqualFold(doc.Category, category) {
			return doc.Content
		}
	}

	for _, doc := range s.documents {
		if doc.Category == GeneralCategory {
			return doc.Content
		}
	}

	return NoAdviceAvailable
}

// DefaultKnowledgeBase returns the compiled-in financial advice corpus.
func DefaultKnowledgeBase() []models.KnowledgeDocument {
	return []models.KnowledgeDocument{
		{
			Category: "Food",
			Content: "To reduce food expenses, consider meal planning, cooking at home more often, " +
				"buying in bulk, using grocery lists, and avoiding impulse purchases. " +
				"Track food waste and plan meals around sales and seasonal produce.",
		},
		{
			Category: "Transport",
			Content: "Save on transport by carpooling, using public transportation, combining trips, " +
				"maintaining your vehicle properly, and considering fuel-efficient routes. " +
				"Walk or bike for short distances when possible.",
		},
		{
			Category: "Bills",
			Content: "Optimize bills by reviewing subscriptions, negotiating rates, switching providers, " +
				"using energy-efficient appliances, and setting up automatic payments to avoid late fees. " +
				"Consider bundling services for discounts.",
		},
		{
			Category: "Shopping",
			Content: "Reduce shopping expenses by creating a budget, waiting 24 hours before non-essential purchases, " +
				"using coupons and cashback apps, buying quality items that last longer, " +
				"and distinguishing between wants and needs.",
		},
		{
			Category: GeneralCategory,
			Content: "Build an emergency fund with 3-6 months of expenses, follow the 50/30/20 rule " +
				"(50% needs, 30% wants, 20% savings), track all expenses, and review spending monthly. " +
				"Set specific financial goals and automate savings.",
		},
		{
			Category: "Savings",
			Content: "Maximize savings by automating transfers to savings accounts, taking advantage of " +
				"employer matching for retirement accounts, reducing high-interest debt first, " +
				"and using high-yield savings accounts. Start small if needed but be consistent.",
		},
		{
			Category: "Budget",
			Content: "Create an effective budget by tracking income and expenses, categorizing spending, " +
				"identifying areas to cut back, and reviewing regularly. Use budgeting apps or " +
				"spreadsheets to monitor progress and adjust as needed.",
		},
	}
}
