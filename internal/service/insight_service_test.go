package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"spendlens/internal/models"
	"spendlens/internal/rag"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeGenerator) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	return f.reply, f.err
}

type fakeExpenseLister struct {
	expenses []models.Expense
	err      error
}

func (f *fakeExpenseLister) ListByUser(_ context.Context, _ uuid.UUID) ([]models.Expense, error) {
	return f.expenses, f.err
}

func newTestInsightService(gen *fakeGenerator, lister *fakeExpenseLister) *InsightService {
	logger := zap.NewNop()
	store := rag.NewStore(rag.DefaultKnowledgeBase())
	retriever := rag.NewRetriever(store, logger)
	return NewInsightService(gen, store, retriever, lister, 2, logger)
}

func TestAskGroundsPromptInExpensesAndAdvice(t *testing.T) {
	gen := &fakeGenerator{reply: "Cook at home more often."}
	lister := &fakeExpenseLister{expenses: []models.Expense{
		{Category: models.CategoryFood, Amount: 100},
	}}
	svc := newTestInsightService(gen, lister)

	resp, err := svc.Ask(context.Background(), uuid.New(), "How do I reduce my food expenses?")
	require.NoError(t, err)

	assert.Equal(t, "Cook at home more often.", resp.Answer)
	require.NotEmpty(t, resp.Sources)
	assert.Equal(t, "Food", resp.Sources[0].Category)

	assert.Equal(t, assistantSystemPrompt, gen.lastSystem)
	assert.Contains(t, gen.lastUser, "Expense Context: Total spending: 100.00 PKR.")
	assert.Contains(t, gen.lastUser, "Relevant Financial Advice:")
	assert.Contains(t, gen.lastUser, "User Question: How do I reduce my food expenses?")
}

func TestAskWithNoExpensesUsesSentinelContext(t *testing.T) {
	gen := &fakeGenerator{reply: "Start by tracking your spending."}
	svc := newTestInsightService(gen, &fakeExpenseLister{})

	resp, err := svc.Ask(context.Background(), uuid.New(), "Where should I start?")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Answer)
	assert.Contains(t, gen.lastUser, "Expense Context: "+rag.NoExpenseData)
}

func TestAskPropagatesGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream down")}
	svc := newTestInsightService(gen, &fakeExpenseLister{})

	_, err := svc.Ask(context.Background(), uuid.New(), "anything")
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	expenses := []models.Expense{
		{Date: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), Category: models.CategoryFood, Amount: 100, Description: "groceries"},
	}

	tests := []struct {
		name          string
		reply         string
		wantSummary   string
		wantRecommend string
	}{
		{
			name:          "valid JSON reply",
			reply:         `{"summary":"Mostly food.","recommendations":"Cook at home."}`,
			wantSummary:   "Mostly food.",
			wantRecommend: "Cook at home.",
		},
		{
			name:          "JSON wrapped in prose",
			reply:         "Here is the analysis:\n```json\n{\"summary\":\"Mostly food.\",\"recommendations\":\"Cook at home.\"}\n```",
			wantSummary:   "Mostly food.",
			wantRecommend: "Cook at home.",
		},
		{
			name:          "plain text degrades to raw summary",
			reply:         "You spend a lot on food.",
			wantSummary:   "You spend a lot on food.",
			wantRecommend: "",
		},
		{
			name:          "broken JSON degrades to raw summary",
			reply:         `{"summary": "unterminated`,
			wantSummary:   `{"summary": "unterminated`,
			wantRecommend: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{reply: tt.reply}
			svc := newTestInsightService(gen, &fakeExpenseLister{expenses: expenses})

			resp, err := svc.Analyze(context.Background(), uuid.New())
			require.NoError(t, err)

			assert.Equal(t, tt.wantSummary, resp.Summary)
			assert.Equal(t, tt.wantRecommend, resp.Recommendations)
			assert.Equal(t, analysisSystemPrompt, gen.lastSystem)
		})
	}
}

func TestAnalyzeWithoutExpenses(t *testing.T) {
	svc := newTestInsightService(&fakeGenerator{}, &fakeExpenseLister{})

	_, err := svc.Analyze(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoExpenses)
}

func TestAnalyzeSendsExpenseTableAsCSV(t *testing.T) {
	gen := &fakeGenerator{reply: `{"summary":"ok","recommendations":""}`}
	lister := &fakeExpenseLister{expenses: []models.Expense{
		{Date: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), Category: models.CategoryTransport, Amount: 42.5, Description: "bus pass"},
	}}
	svc := newTestInsightService(gen, lister)

	_, err := svc.Analyze(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gen.lastUser, "Date,Category,Amount,Description\n"))
	assert.Contains(t, gen.lastUser, "2025-11-03,Transport,42.50,bus pass")
}

func TestCategoryAdvice(t *testing.T) {
	svc := newTestInsightService(&fakeGenerator{}, &fakeExpenseLister{})

	resp := svc.CategoryAdvice("food")
	assert.Equal(t, "food", resp.Category)
	assert.Contains(t, resp.Advice, "meal planning")

	fallback := svc.CategoryAdvice("Cryptocurrency")
	assert.Contains(t, fallback.Advice, "50/30/20")
}
