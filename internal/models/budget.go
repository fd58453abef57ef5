package models

import (
	"time"

	"github.com/jdmartel/finance-tracker/internal/errs"
)

type BudgetPeriod string

const (
	PeriodWeekly    BudgetPeriod = "weekly"
	PeriodMonthly   BudgetPeriod = "monthly"
	PeriodQuarterly BudgetPeriod = "quarterly"
	PeriodYearly    BudgetPeriod = "yearly"
)

func ParseBudgetPeriod(s string) (BudgetPeriod, error) {
	switch BudgetPeriod(s) {
	case PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return BudgetPeriod(s), nil
	default:
		return "", errs.NewFieldError("period", `must be one of "weekly", "monthly", "quarterly", "yearly"`)
	}
}

type BudgetStatus string

const (
	BudgetActive    BudgetStatus = "active"
	BudgetCompleted BudgetStatus = "completed"
	BudgetExceeded  BudgetStatus = "exceeded"
	BudgetPaused    BudgetStatus = "paused"
)

func ParseBudgetStatus(s string) (BudgetStatus, error) {
	switch BudgetStatus(s) {
	case BudgetActive, BudgetCompleted, BudgetExceeded, BudgetPaused:
		return BudgetStatus(s), nil
	default:
		return "", errs.NewFieldError("status", `must be one of "active", "completed", "exceeded", "paused"`)
	}
}

const DefaultAlertThreshold = 80

type Budget struct {
	BudgetID       string       `firestore:"budgetId" json:"budgetId"`
	UserID         string       `firestore:"userId" json:"userId"`
	Name           string       `firestore:"name" json:"name"`
	Category       string       `firestore:"category" json:"category"`
	Amount         float64      `firestore:"amount" json:"amount"`
	Period         BudgetPeriod `firestore:"period" json:"period"`
	StartDate      time.Time    `firestore:"startDate" json:"startDate"`
	EndDate        time.Time    `firestore:"endDate" json:"endDate"`
	Spent          float64      `firestore:"spent" json:"spent"`
	Status         BudgetStatus `firestore:"status" json:"status"`
	AlertThreshold float64      `firestore:"alertThreshold" json:"alertThreshold"`
	Notes          string       `firestore:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time    `firestore:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time    `firestore:"updatedAt" json:"updatedAt"`
}

func (b *Budget) Validate() error {
	if b.UserID == "" {
		return errs.NewFieldError("userId", "user ID is required")
	}
	if b.Name == "" {
		return errs.NewFieldError("name", "budget name is required")
	}
	if len(b.Name) > 100 {
		return errs.NewFieldError("name", "budget name cannot exceed 100 characters")
	}
	if b.Category == "" {
		return errs.NewFieldError("category", "category is required")
	}
	if b.Amount <= 0 {
		return errs.NewFieldError("amount", "budget amount must be greater than 0")
	}
	if _, err := ParseBudgetPeriod(string(b.Period)); err != nil {
		return err
	}
	if b.StartDate.IsZero() {
		return errs.NewFieldError("startDate", "start date is required")
	}
	if b.EndDate.IsZero() {
		return errs.NewFieldError("endDate", "end date is required")
	}
	if b.EndDate.Before(b.StartDate) {
		return errs.NewFieldError("endDate", "end date must not be before start date")
	}
	if b.Spent < 0 {
		return errs.NewFieldError("spent", "spent amount cannot be negative")
	}
	if b.AlertThreshold < 0 || b.AlertThreshold > 100 {
		return errs.NewFieldError("alertThreshold", "alert threshold must be between 0 and 100")
	}
	if len(b.Notes) > 500 {
		return errs.NewFieldError("notes", "notes cannot exceed 500 characters")
	}
	if _, err := ParseBudgetStatus(string(b.Status)); err != nil {
		return err
	}
	return nil
}

// DeriveBudgetStatus recomputes the persisted status from spent vs
// amount and the date window. Called explicitly after every mutation
// rather than as a save hook, so no call site can forget it.
func DeriveBudgetStatus(b *Budget, now time.Time) BudgetStatus {
	switch {
	case b.Spent > b.Amount:
		return BudgetExceeded
	case b.Amount > 0 && b.Spent >= b.Amount:
		return BudgetCompleted
	case now.After(b.EndDate):
		return BudgetCompleted
	case b.Status == BudgetPaused:
		return BudgetPaused
	default:
		return BudgetActive
	}
}
