package models

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseCategory string

const (
	CategoryFood      ExpenseCategory = "Food"
	CategoryTransport ExpenseCategory = "Transport"
	CategoryBills     ExpenseCategory = "Bills"
	CategoryShopping  ExpenseCategory = "Shopping"
	CategoryOther     ExpenseCategory = "Other"
)

type Expense struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Date        time.Time       `db:"date"`
	Category    ExpenseCategory `db:"category"`
	Amount      float64         `db:"amount"`
	Currency    string          `db:"currency"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
