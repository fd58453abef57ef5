package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/models"
	"github.com/jdmartel/finance-tracker/internal/stats"
)

// Column orders are part of the export contract; storage and frontend
// export code both depend on them staying put.

var transactionColumns = []string{"Date", "Type", "Category", "Reference", "Description", "Amount"}

var budgetColumns = []string{"Budget Name", "Category", "Allocated", "Spent", "Remaining", "Usage %"}

var goalColumns = []string{"Goal Name", "Type", "Target", "Current", "Remaining", "Progress %", "Target Date", "Status"}

var summaryColumns = []string{"Metric", "Value"}

// TransactionReport renders one row per transaction, newest first.
func TransactionReport(txs []models.Transaction) dto.Report {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	rows := make([][]string, len(sorted))
	for i, tx := range sorted {
		rows[i] = []string{
			FormatDate(tx.Date),
			string(tx.Type),
			tx.Category,
			tx.Reference,
			tx.Description,
			FormatCurrency(tx.Amount),
		}
	}
	return dto.Report{Title: "Transactions", Columns: transactionColumns, Rows: rows}
}

// BudgetReport renders the budget overview table.
func BudgetReport(budgets []models.Budget) dto.Report {
	rows := make([][]string, len(budgets))
	for i, b := range budgets {
		progress := stats.BudgetProgress(b.Spent, b.Amount)
		rows[i] = []string{
			b.Name,
			b.Category,
			FormatCurrency(b.Amount),
			FormatCurrency(b.Spent),
			FormatCurrency(b.Amount - b.Spent),
			FormatProgress(progress),
		}
	}
	return dto.Report{Title: "Budget Overview", Columns: budgetColumns, Rows: rows}
}

// GoalReport renders the goals overview table.
func GoalReport(goals []models.Goal) dto.Report {
	rows := make([][]string, len(goals))
	for i, g := range goals {
		rows[i] = []string{
			g.Name,
			string(g.Type),
			FormatCurrency(g.TargetAmount),
			FormatCurrency(g.CurrentAmount),
			FormatCurrency(g.TargetAmount - g.CurrentAmount),
			FormatProgress(stats.GoalProgress(g.CurrentAmount, g.TargetAmount)),
			FormatDate(g.TargetDate),
			string(g.Status),
		}
	}
	return dto.Report{Title: "Financial Goals Overview", Columns: goalColumns, Rows: rows}
}

// SummaryReport renders the financial-summary metric/value pairs that
// head the exported workbook.
func SummaryReport(s dto.TransactionStats, generatedAt time.Time) dto.Report {
	rows := [][]string{
		{"Generated", FormatDate(generatedAt)},
		{"Total Transactions", fmt.Sprintf("%d", s.TotalTransactions)},
		{"Total Income", FormatCurrency(s.TotalIncome)},
		{"Total Expenses", FormatCurrency(s.TotalExpense)},
		{"Net Balance", FormatCurrency(s.TotalBalance)},
		{"Income Transactions", fmt.Sprintf("%d", s.IncomeTransactions)},
		{"Expense Transactions", fmt.Sprintf("%d", s.ExpenseTransactions)},
		{"Savings Rate", FormatShare(s.SavingsRate)},
	}
	return dto.Report{Title: "Financial Summary", Columns: summaryColumns, Rows: rows}
}
