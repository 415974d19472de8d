package rag

import (
	"fmt"
	"strings"

	"spendlens/internal/models"
)

const promptInstruction = "Please provide a detailed, context-aware response based on the expense data and financial advice above."

// AssemblePrompt combines the expense digest, the topK retrieved advice
// documents, and the user's question into one prompt for the generation
// collaborator. The query is used as the retrieval key verbatim. When
// retrieval comes back empty the advice block is omitted entirely.
// The documents actually used are returned so callers can surface them
// as knowledge sources.
func (r *Retriever) AssemblePrompt(query, expenseContext string, topK int) (string, []models.KnowledgeDocument) {
	docs := r.Retrieve(query, topK)

	var builder strings.Builder
	fmt.Fprintf(&builder, "Expense Context: %s\n\n", expenseContext)

	if len(docs) > 0 {
		builder.WriteString("Relevant Financial Advice:\n")
		for i, doc := range docs {
			fmt.Fprintf(&builder, "%d. [%s] %s\n", i+1, doc.Category, doc.Content)
		}
	}

	fmt.Fprintf(&builder, "\nUser Question: %s\n", query)
	builder.WriteString(promptInstruction)

	return builder.String(), docs
}
