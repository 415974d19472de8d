package rag

import (
	"fmt"
	"strings"

	"spendlens/internal/models"
)

// NoExpenseData is the digest returned for an empty expense table.
const NoExpenseData = "No expense data available."

// BuildContext compresses an expense table into a short natural-language
// digest for the LLM: total, average, and per-category subtotals in
// first-seen category order. Amounts are rendered with two decimal places.
// Records are read as given; validation belongs to the form layer.
func BuildContext(records []models.Expense) string {
	if len(records) == 0 {
		return NoExpenseData
	}

	var total float64
	categoryOrder := make([]models.ExpenseCategory, 0)
	categoryTotals := make(map[models.ExpenseCategory]float64)

	for _, record := range records {
		total += record.Amount
		if _, ok := categoryTotals[record.Category]; !ok {
			categoryOrder = append(categoryOrder, record.Category)
		}
		categoryTotals[record.Category] += record.Amount
	}

	average := total / float64(len(records))

	parts := make([]string, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		parts = append(parts, fmt.Sprintf("%s: %.2f PKR", category, categoryTotals[category]))
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Total spending: %.2f PKR. ", total)
	fmt.Fprintf(&builder, "Average expense: %.2f PKR. ", average)
	builder.WriteString("Spending by category: ")
	builder.WriteString(strings.Join(parts, ", "))

	return builder.String()
}
