// Package stats holds the derived-statistics core: pure functions that
// roll raw records up into the summaries the dashboard, analytics and
// report views consume. Nothing in here touches storage or mutates its
// inputs.
package stats

import (
	"time"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/models"
)

// monthLayout is the bucket label for monthly trend series, e.g. "Jan 2024".
const monthLayout = "Jan 2006"

// Calculate rolls a transaction collection into summary statistics.
// Empty input yields all-zero stats with empty (non-nil) maps.
func Calculate(txs []models.Transaction) dto.TransactionStats {
	stats := dto.TransactionStats{
		TotalTransactions: len(txs),
		CategoryBreakdown: make(map[string]dto.CategoryTotals, 16),
		MonthlyTrend:      make(map[string]dto.MonthlyTotals, 12),
	}

	for _, tx := range txs {
		month := tx.Date.Format(monthLayout)
		cat := stats.CategoryBreakdown[tx.Category]

		if tx.Type == models.TypeIncome {
			stats.TotalIncome += tx.Amount
			stats.IncomeTransactions++
			cat.Income += tx.Amount
		} else {
			stats.TotalExpense += tx.Amount
			stats.ExpenseTransactions++
			cat.Expense += tx.Amount
		}
		cat.Total += tx.Amount
		stats.CategoryBreakdown[tx.Category] = cat

		bucket := stats.MonthlyTrend[month]
		if tx.Type == models.TypeIncome {
			bucket.Income += tx.Amount
		} else {
			bucket.Expense += tx.Amount
		}
		bucket.Balance = bucket.Income - bucket.Expense
		stats.MonthlyTrend[month] = bucket
	}

	stats.TotalBalance = stats.TotalIncome - stats.TotalExpense

	if stats.TotalTransactions > 0 {
		stats.IncomePercentage = float64(stats.IncomeTransactions) / float64(stats.TotalTransactions) * 100
		stats.ExpensePercentage = float64(stats.ExpenseTransactions) / float64(stats.TotalTransactions) * 100
	}

	stats.TotalTurnover = stats.TotalIncome + stats.TotalExpense
	if stats.TotalTurnover > 0 {
		stats.IncomeTurnoverPercentage = stats.TotalIncome / stats.TotalTurnover * 100
		stats.ExpenseTurnoverPercentage = stats.TotalExpense / stats.TotalTurnover * 100
	}
	if stats.TotalIncome > 0 {
		stats.SavingsRate = (stats.TotalIncome - stats.TotalExpense) / stats.TotalIncome * 100
	}

	return stats
}

// MonthKey parses a trend bucket label back to its calendar month.
// Report code sorts buckets with this rather than insertion order.
func MonthKey(label string) (time.Time, bool) {
	t, err := time.Parse(monthLayout, label)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthLabel truncates a date to its trend bucket label.
func MonthLabel(date time.Time) string {
	return date.Format(monthLayout)
}
