package dto

// TransactionStats is the statistics object the dashboard and
// analytics views consume. All amounts are plain sums over the input
// collection; percentages are count-based, turnover shares are
// amount-based.
type TransactionStats struct {
	TotalTransactions   int     `json:"totalTransactions"`
	TotalIncome         float64 `json:"totalIncome"`
	TotalExpense        float64 `json:"totalExpense"`
	TotalBalance        float64 `json:"totalBalance"`
	IncomeTransactions  int     `json:"incomeTransactions"`
	ExpenseTransactions int     `json:"expenseTransactions"`
	IncomePercentage    float64 `json:"incomePercentage"`
	ExpensePercentage   float64 `json:"expensePercentage"`

	TotalTurnover             float64 `json:"totalTurnover"`
	IncomeTurnoverPercentage  float64 `json:"incomeTurnoverPercentage"`
	ExpenseTurnoverPercentage float64 `json:"expenseTurnoverPercentage"`
	SavingsRate               float64 `json:"savingsRate"`

	CategoryBreakdown map[string]CategoryTotals `json:"categoryBreakdown"`
	MonthlyTrend      map[string]MonthlyTotals  `json:"monthlyTrend"`
}

type CategoryTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Total   float64 `json:"total"`
}

type MonthlyTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// BudgetHealth is the four-tier classification shown on budget cards.
type BudgetHealth string

const (
	HealthExcellent BudgetHealth = "excellent"
	HealthGood      BudgetHealth = "good"
	HealthWarning   BudgetHealth = "warning"
	HealthExceeded  BudgetHealth = "exceeded"
)

type BudgetProgress struct {
	BudgetID      string       `json:"budgetId"`
	Progress      float64      `json:"progress"`
	Health        BudgetHealth `json:"health"`
	Remaining     float64      `json:"remaining"`
	Overspend     float64      `json:"overspend"`
	DaysRemaining int          `json:"daysRemaining"`
	OverThreshold bool         `json:"overThreshold"`
}

type GoalProgress struct {
	GoalID               string  `json:"goalId"`
	Progress             float64 `json:"progress"`
	Remaining            float64 `json:"remaining"`
	DaysRemaining        int     `json:"daysRemaining"`
	Completed            bool    `json:"completed"`
	Overdue              bool    `json:"overdue"`
	MonthlySavingsNeeded float64 `json:"monthlySavingsNeeded"`
	WeeklySavingsNeeded  float64 `json:"weeklySavingsNeeded"`
	AchievementRate      float64 `json:"achievementRate"`
}
