package stats

import (
	"math"
	"time"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/models"
)

// Health tier cut points, inclusive lower bounds. Exactly 80.0 is a
// warning, not good; exactly 100.0 is exceeded.
const (
	healthGoodMin     = 60
	healthWarningMin  = 80
	healthExceededMin = 100
)

const (
	avgDaysPerMonth = 30.44
	daysPerWeek     = 7
)

// BudgetProgress returns percent spent, clamped to [0,100].
func BudgetProgress(spent, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return math.Min(spent/amount*100, 100)
}

// HealthFor classifies a progress percentage into the four-tier scale
// used by progress bars and budget cards.
func HealthFor(progress float64) dto.BudgetHealth {
	switch {
	case progress >= healthExceededMin:
		return dto.HealthExceeded
	case progress >= healthWarningMin:
		return dto.HealthWarning
	case progress >= healthGoodMin:
		return dto.HealthGood
	default:
		return dto.HealthExcellent
	}
}

// DaysRemaining is the unclamped day count until a date; negative
// means the date has passed.
func DaysRemaining(until, now time.Time) int {
	return int(math.Ceil(until.Sub(now).Hours() / 24))
}

// EvaluateBudget derives the display-facing progress fields for one
// budget. The stored status enum is untouched; this classification is
// independent of it.
func EvaluateBudget(b models.Budget, now time.Time) dto.BudgetProgress {
	progress := BudgetProgress(b.Spent, b.Amount)
	return dto.BudgetProgress{
		BudgetID:      b.BudgetID,
		Progress:      progress,
		Health:        HealthFor(progress),
		Remaining:     math.Max(b.Amount-b.Spent, 0),
		Overspend:     math.Max(b.Spent-b.Amount, 0),
		DaysRemaining: DaysRemaining(b.EndDate, now),
		OverThreshold: progress >= b.AlertThreshold,
	}
}

// GoalProgress returns percent saved, clamped to [0,100].
func GoalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(current/target*100, 100)
}

// EvaluateGoal derives the display-facing progress fields for one goal.
func EvaluateGoal(g models.Goal, now time.Time) dto.GoalProgress {
	remaining := math.Max(g.TargetAmount-g.CurrentAmount, 0)
	days := DaysRemaining(g.TargetDate, now)
	completed := g.CurrentAmount >= g.TargetAmount

	return dto.GoalProgress{
		GoalID:               g.GoalID,
		Progress:             GoalProgress(g.CurrentAmount, g.TargetAmount),
		Remaining:            remaining,
		DaysRemaining:        days,
		Completed:            completed,
		Overdue:              now.After(g.TargetDate) && !completed,
		MonthlySavingsNeeded: savingsNeeded(remaining, days, avgDaysPerMonth),
		WeeklySavingsNeeded:  savingsNeeded(remaining, days, daysPerWeek),
		AchievementRate:      AchievementRate(g, now),
	}
}

// savingsNeeded spreads the remaining amount over the periods left.
// With no time left the full remaining amount is due now.
func savingsNeeded(remaining float64, daysRemaining int, periodDays float64) float64 {
	if daysRemaining <= 0 {
		return remaining
	}
	periods := float64(daysRemaining) / periodDays
	return remaining / periods
}

// AchievementRate compares actual progress against the progress
// expected from elapsed time between creation and target date. A value
// above 1 means ahead of schedule; it is deliberately not clamped.
// Degenerate durations resolve to 0 rather than an error.
func AchievementRate(g models.Goal, now time.Time) float64 {
	totalDays := math.Ceil(g.TargetDate.Sub(g.CreatedAt).Hours() / 24)
	if totalDays <= 0 {
		return 0
	}
	daysPassed := math.Ceil(now.Sub(g.CreatedAt).Hours() / 24)
	expected := daysPassed / totalDays * 100
	if expected <= 0 {
		return 0
	}
	return GoalProgress(g.CurrentAmount, g.TargetAmount) / expected
}

// ApplyContribution records a contribution on a copy of the goal:
// appends to the contribution history, bumps the running total,
// re-derives status and flips any milestone whose threshold is newly
// reached. Milestones never un-achieve and an achieved date is never
// overwritten. Calling twice records two contributions; that is the
// contract, not a bug.
func ApplyContribution(g models.Goal, amount float64, note string, now time.Time) models.Goal {
	g.Contributions = append(append([]models.Contribution(nil), g.Contributions...), models.Contribution{
		Amount: amount,
		Date:   now,
		Note:   note,
	})
	g.CurrentAmount += amount
	g.Status = models.DeriveGoalStatus(&g)

	milestones := make([]models.Milestone, len(g.Milestones))
	copy(milestones, g.Milestones)
	for i := range milestones {
		if !milestones[i].Achieved && g.CurrentAmount >= milestones[i].Amount {
			milestones[i].Achieved = true
			achievedAt := now
			milestones[i].AchievedDate = &achievedAt
		}
	}
	g.Milestones = milestones
	g.UpdatedAt = now

	return g
}
