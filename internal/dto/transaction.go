package dto

import "time"

// TransactionQuery narrows a user's transaction collection before
// aggregation. Type filters on income/expense; the date window is
// inclusive on both ends.
type TransactionQuery struct {
	Type     *string
	DateFrom *time.Time
	DateTo   *time.Time
	OrderBy  string
	Desc     bool
	Limit    int
}

type CreateTransactionRequest struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
}

// UpdateTransactionRequest is the allow-listed mutable field set.
// Nil pointers leave the stored value untouched; there is no
// arbitrary-payload merge path.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Reference   *string  `json:"reference,omitempty"`
	Description *string  `json:"description,omitempty"`
}
