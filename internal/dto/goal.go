package dto

import "github.com/jdmartel/finance-tracker/internal/models"

type MilestoneInput struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type CreateGoalRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Type         string           `json:"type"`
	TargetAmount float64          `json:"targetAmount"`
	TargetDate   string           `json:"targetDate"` // YYYY-MM-DD
	Priority     string           `json:"priority"`   // default medium
	Category     string           `json:"category"`   // default savings
	Notes        string           `json:"notes"`
	Milestones   []MilestoneInput `json:"milestones"`
}

// UpdateGoalRequest is the allow-listed mutable field set.
// CurrentAmount, contributions and milestone achievement state only
// move through the contribution flow.
type UpdateGoalRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Type         *string  `json:"type,omitempty"`
	TargetAmount *float64 `json:"targetAmount,omitempty"`
	TargetDate   *string  `json:"targetDate,omitempty"`
	Priority     *string  `json:"priority,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Status       *string  `json:"status,omitempty"` // active/paused/cancelled only
}

type AddContributionRequest struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}

type GoalWithProgress struct {
	Goal     models.Goal  `json:"goal"`
	Progress GoalProgress `json:"progress"`
}
