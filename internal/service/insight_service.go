package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"spendlens/internal/dto"
	"spendlens/internal/models"
	"spendlens/internal/rag"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExpenseLister is the slice of the expense repository the insight
// pipeline needs.
type ExpenseLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
}

var ErrNoExpenses = errors.New("no expenses to analyze")

const assistantSystemPrompt = "You are a helpful AI financial assistant."

const analysisSystemPrompt = `You are an expert financial data analyst.
Read the provided expense data and produce a JSON object:
{
 "summary": "concise paragraph about spending patterns, totals, and category trends",
 "recommendations": "personalized saving and optimization strategies"
}
Return only valid JSON, no explanations.`

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// InsightService drives the retrieval-augmented pipeline: expense digest →
// knowledge retrieval → assembled prompt → generation. The retriever and
// store are shared read-only singletons; per-user expense history comes
// from the repository on every call.
type InsightService struct {
	llm         Generator
	store       *rag.Store
	retriever   *rag.Retriever
	expenseRepo ExpenseLister
	topK        int
	logger      *zap.Logger
}

func NewInsightService(
	llm Generator,
	store *rag.Store,
	retriever *rag.Retriever,
	expenseRepo ExpenseLister,
	topK int,
	logger *zap.Logger,
) *InsightService {
	return &InsightService{
		llm:         llm,
		store:       store,
		retriever:   retriever,
		expenseRepo: expenseRepo,
		topK:        topK,
		logger:      logger,
	}
}

// Ask answers a free-text question about the user's spending, grounded in
// the expense digest and retrieved advice documents.
func (s *InsightService) Ask(ctx context.Context, userID uuid.UUID, question string) (*dto.AskResponse, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expenseContext := rag.BuildContext(expenses)
	prompt, docs := s.retriever.AssemblePrompt(question, expenseContext, s.topK)

	answer, err := s.llm.Complete(ctx, assistantSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	sources := make([]dto.KnowledgeSource, 0, len(docs))
	for _, doc := range docs {
		sources = append(sources, dto.KnowledgeSource{Category: doc.Category, Content: doc.Content})
	}

	s.logger.Info("Insight question answered",
		zap.String("user_id", userID.String()),
		zap.Int("expenses", len(expenses)),
		zap.Int("sources", len(sources)),
	)

	return &dto.AskResponse{
		Answer:  sanitizeUTF8(answer),
		Sources: sources,
	}, nil
}

// Analyze sends the user's full expense table to the LLM and returns a
// structured summary with saving recommendations.
func (s *InsightService) Analyze(ctx context.Context, userID uuid.UUID) (*dto.AnalyzeResponse, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	if len(expenses) == 0 {
		return nil, ErrNoExpenses
	}

	reply, err := s.llm.Complete(ctx, analysisSystemPrompt, expensesToCSV(expenses))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze expenses: %w", err)
	}

	result := s.parseAnalysis(reply)
	result.Summary = sanitizeUTF8(result.Summary)
	result.Recommendations = sanitizeUTF8(result.Recommendations)

	s.logger.Info("Expense analysis completed",
		zap.String("user_id", userID.String()),
		zap.Int("expenses", len(expenses)),
	)

	return result, nil
}

// CategoryAdvice returns the knowledge-base advice for a spending category.
func (s *InsightService) CategoryAdvice(category string) *dto.AdviceResponse {
	return &dto.AdviceResponse{
		Category: category,
		Advice:   s.store.AdviceForCategory(category),
	}
}

// parseAnalysis decodes the analysis reply. Models do not always return
// bare JSON, so a reply that fails to parse is retried against the
// outermost brace-delimited block, and as a last resort the raw text
// becomes the summary. Parse failures are logged, never propagated.
func (s *InsightService) parseAnalysis(reply string) *dto.AnalyzeResponse {
	var result dto.AnalyzeResponse
	if err := json.Unmarshal([]byte(reply), &result); err == nil {
		return &result
	}

	if match := jsonObjectPattern.FindString(reply); match != "" {
		if err := json.Unmarshal([]byte(match), &result); err == nil {
			return &result
		}
	}

	s.logger.Warn("Analysis reply is not valid JSON, degrading to raw text",
		zap.Int("reply_length", len(reply)),
	)

	return &dto.AnalyzeResponse{Summary: reply}
}

func expensesToCSV(expenses []models.Expense) string {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	_ = writer.Write([]string{"Date", "Category", "Amount", "Description"})
	for _, expense := range expenses {
		_ = writer.Write([]string{
			expense.Date.Format("2006-01-02"),
			string(expense.Category),
			strconv.FormatFloat(expense.Amount, 'f', 2, 64),
			expense.Description,
		})
	}
	writer.Flush()

	return builder.String()
}
