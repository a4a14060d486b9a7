package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest alta de gasto. La fecha la asigna el servidor (hoy),
// nunca el cliente, para evitar gastos retro-fechados.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// ApproveExpenseRequest resolución de un gasto pendiente.
// Approve=false borra el registro (el rechazo es destructivo).
type ApproveExpenseRequest struct {
	Approve bool `json:"approve"`
}

// ExpenseResponse gasto en respuestas. Date va como fecha calendario (YYYY-MM-DD).
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by,omitempty"`
}
