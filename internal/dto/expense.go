package dto

type CreateExpenseRequest struct {
	Date        string  `json:"date" validate:"required" example:"2025-11-03"`
	Category    string  `json:"category" validate:"required,oneof=Food Transport Bills Shopping Other"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type ExpenseStatsResponse struct {
	Total      float64         `json:"total"`
	Average    float64         `json:"average"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"by_category"`
}
