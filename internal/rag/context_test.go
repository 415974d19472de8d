package rag

import (
	"testing"

	"spendlens/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildContext(t *testing.T) {
	tests := []struct {
		name     string
		records  []models.Expense
		expected string
	}{
		{
			name:     "empty table yields sentinel",
			records:  nil,
			expected: NoExpenseData,
		},
		{
			name: "single record",
			records: []models.Expense{
				{Category: models.CategoryFood, Amount: 100},
			},
			expected: "Total spending: 100.00 PKR. Average expense: 100.00 PKR. Spending by category: Food: 100.00 PKR",
		},
		{
			name: "grouped totals with rounded average",
			records: []models.Expense{
				{Category: models.CategoryFood, Amount: 100},
				{Category: models.CategoryFood, Amount: 50},
				{Category: models.CategoryTransport, Amount: 25},
			},
			expected: "Total spending: 175.00 PKR. Average expense: 58.33 PKR. Spending by category: Food: 150.00 PKR, Transport: 25.00 PKR",
		},
		{
			name: "categories keep first-seen order",
			records: []models.Expense{
				{Category: models.CategoryTransport, Amount: 10},
				{Category: models.CategoryFood, Amount: 20},
				{Category: models.CategoryTransport, Amount: 5},
			},
			expected: "Total spending: 35.00 PKR. Average expense: 11.67 PKR. Spending by category: Transport: 15.00 PKR, Food: 20.00 PKR",
		},
		{
			name: "negative amounts summed as given",
			records: []models.Expense{
				{Category: models.CategoryBills, Amount: 100},
				{Category: models.CategoryBills, Amount: -50},
			},
			expected: "Total spending: 50.00 PKR. Average expense: 25.00 PKR. Spending by category: Bills: 50.00 PKR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildContext(tt.records))
		})
	}
}
