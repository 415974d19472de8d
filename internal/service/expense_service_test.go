package service

import (
	"context"
	"testing"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeExpenseStore struct {
	expenses []models.Expense
}

func (f *fakeExpenseStore) Create(_ context.Context, expense *models.Expense) error {
	f.expenses = append(f.expenses, *expense)
	return nil
}

func (f *fakeExpenseStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Expense, error) {
	var out []models.Expense
	for _, expense := range f.expenses {
		if expense.UserID == userID {
			out = append(out, expense)
		}
	}
	return out, nil
}

func (f *fakeExpenseStore) Delete(_ context.Context, userID, expenseID uuid.UUID) (bool, error) {
	for i, expense := range f.expenses {
		if expense.ID == expenseID && expense.UserID == userID {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestExpenseAdd(t *testing.T) {
	store := &fakeExpenseStore{}
	svc := NewExpenseService(store, zap.NewNop())
	userID := uuid.New()

	expense, err := svc.Add(context.Background(), userID, &dto.CreateExpenseRequest{
		Date:        "2025-11-03",
		Category:    "Food",
		Amount:      120.5,
		Description: "groceries",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, expense.ID)
	assert.Equal(t, userID, expense.UserID)
	assert.Equal(t, models.CategoryFood, expense.Category)
	assert.Equal(t, "PKR", expense.Currency)
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), expense.Date)
	assert.Len(t, store.expenses, 1)
}

func TestExpenseAddValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateExpenseRequest
	}{
		{
			name: "bad date format",
			req:  dto.CreateExpenseRequest{Date: "03.11.2025", Category: "Food", Amount: 10, Description: "x"},
		},
		{
			name: "zero amount",
			req:  dto.CreateExpenseRequest{Date: "2025-11-03", Category: "Food", Amount: 0, Description: "x"},
		},
		{
			name: "negative amount",
			req:  dto.CreateExpenseRequest{Date: "2025-11-03", Category: "Food", Amount: -5, Description: "x"},
		},
		{
			name: "blank description",
			req:  dto.CreateExpenseRequest{Date: "2025-11-03", Category: "Food", Amount: 10, Description: "   "},
		},
	}

	svc := NewExpenseService(&fakeExpenseStore{}, zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), uuid.New(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidExpense)
		})
	}
}

func TestExpenseDelete(t *testing.T) {
	store := &fakeExpenseStore{}
	svc := NewExpenseService(store, zap.NewNop())
	userID := uuid.New()

	expense, err := svc.Add(context.Background(), userID, &dto.CreateExpenseRequest{
		Date: "2025-11-03", Category: "Bills", Amount: 30, Description: "internet",
	})
	require.NoError(t, err)

	// Another user cannot delete it.
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), expense.ID), ErrExpenseNotFound)

	require.NoError(t, svc.Delete(context.Background(), userID, expense.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), userID, expense.ID), ErrExpenseNotFound)
}

func TestExpenseStats(t *testing.T) {
	store := &fakeExpenseStore{}
	svc := NewExpenseService(store, zap.NewNop())
	userID := uuid.New()

	for _, req := range []dto.CreateExpenseRequest{
		{Date: "2025-11-01", Category: "Food", Amount: 100, Description: "groceries"},
		{Date: "2025-11-02", Category: "Food", Amount: 50, Description: "lunch"},
		{Date: "2025-11-03", Category: "Transport", Amount: 25, Description: "bus"},
	} {
		_, err := svc.Add(context.Background(), userID, &req)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 175.0, stats.Total, 1e-9)
	assert.InDelta(t, 175.0/3, stats.Average, 1e-9)
	require.Len(t, stats.ByCategory, 2)
	assert.Equal(t, dto.CategoryTotal{Category: "Food", Amount: 150}, stats.ByCategory[0])
	assert.Equal(t, dto.CategoryTotal{Category: "Transport", Amount: 25}, stats.ByCategory[1])
}

func TestExpenseStatsEmpty(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseStore{}, zap.NewNop())

	stats, err := svc.Stats(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Average)
	assert.Zero(t, stats.Count)
	assert.Empty(t, stats.ByCategory)
}
