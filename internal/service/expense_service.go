package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrExpenseNotFound = errors.New("expense not found")
)

// Currency is a fixed label; amounts are not converted.
const expenseCurrency = "PKR"

// ExpenseStore is the slice of the expense repository this service needs.
type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	Delete(ctx context.Context, userID, expenseID uuid.UUID) (bool, error)
}

type ExpenseService struct {
	expenseRepo ExpenseStore
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo ExpenseStore, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) Add(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidExpense)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidExpense)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidExpense)
	}

	expense := &models.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Category:    models.ExpenseCategory(req.Category),
		Amount:      req.Amount,
		Currency:    expenseCurrency,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.logger.Info("Expense added",
		zap.String("user_id", userID.String()),
		zap.String("category", string(expense.Category)),
		zap.Float64("amount", expense.Amount),
	)

	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	return s.expenseRepo.ListByUser(ctx, userID)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	deleted, err := s.expenseRepo.Delete(ctx, userID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

// Stats aggregates the user's expenses: total, mean, and per-category
// subtotals in first-seen order. These are the same aggregates the insight
// pipeline feeds the LLM, exposed here for the UI's charts.
func (s *ExpenseService) Stats(ctx context.Context, userID uuid.UUID) (*dto.ExpenseStatsResponse, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	stats := &dto.ExpenseStatsResponse{
		ByCategory: []dto.CategoryTotal{},
		Count:      len(expenses),
	}
	if len(expenses) == 0 {
		return stats, nil
	}

	index := make(map[models.ExpenseCategory]int)
	for _, expense := range expenses {
		stats.Total += expense.Amount
		i, ok := index[expense.Category]
		if !ok {
			i = len(stats.ByCategory)
			index[expense.Category] = i
			stats.ByCategory = append(stats.ByCategory, dto.CategoryTotal{Category: string(expense.Category)})
		}
		stats.ByCategory[i].Amount += expense.Amount
	}
	stats.Average = stats.Total / float64(len(expenses))

	return stats, nil
}
