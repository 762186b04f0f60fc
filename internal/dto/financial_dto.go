package dto

import "github.com/google/uuid"

type CreateFinancialRecordRequest struct {
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"` // income | expense
	Date          string    `json:"date"` // YYYY-MM-DD
	CondominiumID uuid.UUID `json:"condominium_id"`
}

type FinancialDashboardResponse struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpense  float64 `json:"total_expense"`
	Profitability float64 `json:"profitability"`
}
