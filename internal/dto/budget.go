package dto

import "github.com/jdmartel/finance-tracker/internal/models"

type CreateBudgetRequest struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Amount         float64  `json:"amount"`
	Period         string   `json:"period"`
	StartDate      string   `json:"startDate"` // YYYY-MM-DD
	EndDate        string   `json:"endDate"`
	AlertThreshold *float64 `json:"alertThreshold,omitempty"` // default 80
	Notes          string   `json:"notes"`
}

// UpdateBudgetRequest is the allow-listed mutable field set. Spent and
// status are derived and cannot be written through updates; status
// transitions are limited to the explicit active/paused pair.
type UpdateBudgetRequest struct {
	Name           *string  `json:"name,omitempty"`
	Category       *string  `json:"category,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	Period         *string  `json:"period,omitempty"`
	StartDate      *string  `json:"startDate,omitempty"`
	EndDate        *string  `json:"endDate,omitempty"`
	AlertThreshold *float64 `json:"alertThreshold,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	Paused         *bool    `json:"paused,omitempty"`
}

// BudgetWithProgress pairs the stored record with its evaluated
// progress for list responses.
type BudgetWithProgress struct {
	Budget   models.Budget  `json:"budget"`
	Progress BudgetProgress `json:"progress"`
}
