package models

import (
	"time"

	"github.com/jdmartel/finance-tracker/internal/errs"
)

type GoalType string

const (
	GoalEmergency  GoalType = "emergency"
	GoalVacation   GoalType = "vacation"
	GoalCar        GoalType = "car"
	GoalHome       GoalType = "home"
	GoalEducation  GoalType = "education"
	GoalRetirement GoalType = "retirement"
	GoalOther      GoalType = "other"
)

func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(s) {
	case GoalEmergency, GoalVacation, GoalCar, GoalHome, GoalEducation, GoalRetirement, GoalOther:
		return GoalType(s), nil
	default:
		return "", errs.NewFieldError("type", "unknown goal type: "+s)
	}
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalCancelled GoalStatus = "cancelled"
)

func ParseGoalStatus(s string) (GoalStatus, error) {
	switch GoalStatus(s) {
	case GoalActive, GoalCompleted, GoalPaused, GoalCancelled:
		return GoalStatus(s), nil
	default:
		return "", errs.NewFieldError("status", `must be one of "active", "completed", "paused", "cancelled"`)
	}
}

type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

func ParseGoalPriority(s string) (GoalPriority, error) {
	switch GoalPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return GoalPriority(s), nil
	default:
		return "", errs.NewFieldError("priority", `must be one of "low", "medium", "high"`)
	}
}

// Milestone is a sub-target inside a goal. Achieved flips exactly once,
// when cumulative contributions first reach Amount, and never flips back.
type Milestone struct {
	Amount       float64    `firestore:"amount" json:"amount"`
	Description  string     `firestore:"description" json:"description"`
	Achieved     bool       `firestore:"achieved" json:"achieved"`
	AchievedDate *time.Time `firestore:"achievedDate,omitempty" json:"achievedDate,omitempty"`
}

type Contribution struct {
	Amount float64   `firestore:"amount" json:"amount"`
	Date   time.Time `firestore:"date" json:"date"`
	Note   string    `firestore:"note" json:"note,omitempty"`
}

type Goal struct {
	GoalID        string         `firestore:"goalId" json:"goalId"`
	UserID        string         `firestore:"userId" json:"userId"`
	Name          string         `firestore:"name" json:"name"`
	Description   string         `firestore:"description" json:"description"`
	Type          GoalType       `firestore:"type" json:"type"`
	TargetAmount  float64        `firestore:"targetAmount" json:"targetAmount"`
	CurrentAmount float64        `firestore:"currentAmount" json:"currentAmount"`
	TargetDate    time.Time      `firestore:"targetDate" json:"targetDate"`
	Status        GoalStatus     `firestore:"status" json:"status"`
	Priority      GoalPriority   `firestore:"priority" json:"priority"`
	Category      string         `firestore:"category" json:"category"`
	Notes         string         `firestore:"notes" json:"notes,omitempty"`
	Milestones    []Milestone    `firestore:"milestones" json:"milestones"`
	Contributions []Contribution `firestore:"contributions" json:"contributions"`
	CreatedAt     time.Time      `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `firestore:"updatedAt" json:"updatedAt"`
}

func (g *Goal) Validate() error {
	if g.UserID == "" {
		return errs.NewFieldError("userId", "user ID is required")
	}
	if g.Name == "" {
		return errs.NewFieldError("name", "goal name is required")
	}
	if len(g.Name) > 100 {
		return errs.NewFieldError("name", "goal name cannot exceed 100 characters")
	}
	if g.Description == "" {
		return errs.NewFieldError("description", "description is required")
	}
	if len(g.Description) > 500 {
		return errs.NewFieldError("description", "description cannot exceed 500 characters")
	}
	if _, err := ParseGoalType(string(g.Type)); err != nil {
		return err
	}
	if g.TargetAmount <= 0 {
		return errs.NewFieldError("targetAmount", "target amount must be greater than 0")
	}
	if g.CurrentAmount < 0 {
		return errs.NewFieldError("currentAmount", "current amount cannot be negative")
	}
	if g.TargetDate.IsZero() {
		return errs.NewFieldError("targetDate", "target date is required")
	}
	if _, err := ParseGoalStatus(string(g.Status)); err != nil {
		return err
	}
	if _, err := ParseGoalPriority(string(g.Priority)); err != nil {
		return err
	}
	if len(g.Notes) > 1000 {
		return errs.NewFieldError("notes", "notes cannot exceed 1000 characters")
	}
	for _, m := range g.Milestones {
		if m.Amount <= 0 {
			return errs.NewFieldError("milestones", "milestone amount must be greater than 0")
		}
		if m.Description == "" {
			return errs.NewFieldError("milestones", "milestone description is required")
		}
	}
	return nil
}

// DeriveGoalStatus flips a goal to completed once the target is reached.
// Completion is monotonic; paused/cancelled are only set explicitly.
func DeriveGoalStatus(g *Goal) GoalStatus {
	if g.CurrentAmount >= g.TargetAmount {
		return GoalCompleted
	}
	return g.Status
}
