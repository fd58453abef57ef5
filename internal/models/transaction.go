package models

import (
	"time"

	"github.com/jdmartel/finance-tracker/internal/errs"
)

// TransactionType is a closed enum; handlers never pass raw strings
// past the record-model boundary.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome, TypeExpense:
		return TransactionType(s), nil
	default:
		return "", errs.NewFieldError("type", `must be "income" or "expense"`)
	}
}

type Transaction struct {
	TransactionID string          `firestore:"transactionId" json:"transactionId"`
	UserID        string          `firestore:"userId" json:"userId"`
	Amount        float64         `firestore:"amount" json:"amount"`
	Type          TransactionType `firestore:"type" json:"type"`
	Category      string          `firestore:"category" json:"category"`
	Date          time.Time       `firestore:"date" json:"date"`
	Reference     string          `firestore:"reference" json:"reference"`
	Description   string          `firestore:"description" json:"description"`
	CreatedAt     time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `firestore:"updatedAt" json:"updatedAt"`
}

// Validate enforces the record contract before anything is persisted.
// Aggregation code downstream assumes these invariants hold.
func (t *Transaction) Validate() error {
	if t.UserID == "" {
		return errs.NewFieldError("userId", "user ID is required")
	}
	if t.Amount <= 0 {
		return errs.NewFieldError("amount", "amount must be greater than 0")
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if t.Category == "" {
		return errs.NewFieldError("category", "category is required")
	}
	if !ValidCategory(t.Type, t.Category) {
		return errs.NewFieldError("category", "unknown category for transaction type: "+t.Category)
	}
	if t.Date.IsZero() {
		return errs.NewFieldError("date", "date is required")
	}
	return nil
}
