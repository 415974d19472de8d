package rag

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblePromptWithAdvice(t *testing.T) {
	r := newTestRetriever(t, DefaultKnowledgeBase())
	context := "Total spending: 100.00 PKR."

	prompt, docs := r.AssemblePrompt("How do I save on food and transport?", context, 2)

	require.Len(t, docs, 2)

	assert.True(t, strings.HasPrefix(prompt, "Expense Context: Total spending: 100.00 PKR.\n\n"))
	assert.Contains(t, prompt, "Relevant Financial Advice:\n")
	for i, doc := range docs {
		assert.Contains(t, prompt, fmt.Sprintf("%d. [%s] %s\n", i+1, doc.Category, doc.Content))
	}
	assert.Contains(t, prompt, "\nUser Question: How do I save on food and transport?\n")
	assert.True(t, strings.HasSuffix(prompt, promptInstruction))

	// Sections appear in order: context, advice, question.
	adviceIdx := strings.Index(prompt, "Relevant Financial Advice:")
	questionIdx := strings.Index(prompt, "User Question:")
	assert.Greater(t, adviceIdx, 0)
	assert.Greater(t, questionIdx, adviceIdx)
}

func TestAssemblePromptWithoutAdvice(t *testing.T) {
	r := newTestRetriever(t, DefaultKnowledgeBase())

	prompt, docs := r.AssemblePrompt("zebra quantum astronaut", NoExpenseData, 2)

	assert.Empty(t, docs)
	assert.NotContains(t, prompt, "Relevant Financial Advice")
	assert.Contains(t, prompt, "Expense Context: "+NoExpenseData+"\n\n")
	assert.Contains(t, prompt, "User Question: zebra quantum astronaut")
}

func TestAssemblePromptUsesVerbatimQuery(t *testing.T) {
	r := newTestRetriever(t, DefaultKnowledgeBase())

	query := "  How Do I SAVE?  "
	prompt, _ := r.AssemblePrompt(query, NoExpenseData, 2)

	assert.Contains(t, prompt, "User Question: "+query+"\n")
}
