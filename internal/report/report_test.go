package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{-75.25, "-$75.25"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Fatalf("FormatCurrency(%v): got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatShareAndProgress(t *testing.T) {
	if got := FormatShare(33.333); got != "33.3%" {
		t.Fatalf("share: got %q", got)
	}
	if got := FormatProgress(89.6); got != "90%" {
		t.Fatalf("progress should round to whole percent: got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(date(2024, time.January, 5)); got != "Jan 05, 2024" {
		t.Fatalf("date: got %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("zero date should render empty, got %q", got)
	}
}

func TestTrendSeriesChronological(t *testing.T) {
	s := dto.TransactionStats{
		MonthlyTrend: map[string]dto.MonthlyTotals{
			"Mar 2024": {Income: 300, Expense: 100, Balance: 200},
			"Jan 2024": {Income: 100, Expense: 50, Balance: 50},
			"Dec 2023": {Income: 900, Expense: 400, Balance: 500},
		},
	}

	got := TrendSeries(s)

	wantLabels := []string{"Dec 2023", "Jan 2024", "Mar 2024"}
	if len(got.Labels) != len(wantLabels) {
		t.Fatalf("labels length: got %d", len(got.Labels))
	}
	for i, w := range wantLabels {
		if got.Labels[i] != w {
			t.Fatalf("labels out of order: got %v", got.Labels)
		}
	}
	if got.Income[0] != 900 || got.Expense[2] != 100 || got.Balance[1] != 50 {
		t.Fatalf("series values misaligned: %+v", got)
	}
}

func TestCategorySeriesOrderingAndShares(t *testing.T) {
	s := dto.TransactionStats{
		CategoryBreakdown: map[string]dto.CategoryTotals{
			"Food":      {Expense: 300, Total: 300},
			"Rent":      {Expense: 600, Total: 600},
			"Travel":    {Expense: 100, Total: 100},
			"Utilities": {Expense: 100, Total: 100},
		},
	}

	got := CategorySeries(s)

	wantLabels := []string{"Rent", "Food", "Travel", "Utilities"}
	for i, w := range wantLabels {
		if got.Labels[i] != w {
			t.Fatalf("labels out of order: got %v", got.Labels)
		}
	}
	if got.Values[0] != 600 {
		t.Fatalf("values misaligned: %v", got.Values)
	}
	if got.Shares[0] != "54.5%" {
		t.Fatalf("share mismatch: got %q", got.Shares[0])
	}
}

func TestTransactionReportColumnsAndOrder(t *testing.T) {
	txs := []models.Transaction{
		{Date: date(2024, time.January, 5), Type: models.TypeExpense, Category: "Food", Reference: "Cafe", Description: "lunch", Amount: 12.5},
		{Date: date(2024, time.February, 1), Type: models.TypeIncome, Category: "Salary", Amount: 3000},
	}

	got := TransactionReport(txs)

	wantCols := []string{"Date", "Type", "Category", "Reference", "Description", "Amount"}
	for i, w := range wantCols {
		if got.Columns[i] != w {
			t.Fatalf("columns mismatch: %v", got.Columns)
		}
	}
	// newest first
	if got.Rows[0][0] != "Feb 01, 2024" {
		t.Fatalf("rows should sort newest first: %v", got.Rows)
	}
	if got.Rows[1][5] != "$12.50" {
		t.Fatalf("amount formatting: %v", got.Rows[1])
	}
}

func TestBudgetReportRow(t *testing.T) {
	got := BudgetReport([]models.Budget{
		{Name: "Groceries", Category: "Food", Amount: 200, Spent: 180},
	})

	row := got.Rows[0]
	want := []string{"Groceries", "Food", "$200.00", "$180.00", "$20.00", "90%"}
	for i, w := range want {
		if row[i] != w {
			t.Fatalf("budget row mismatch at %d: got %q want %q", i, row[i], w)
		}
	}
}

func TestGoalReportRow(t *testing.T) {
	got := GoalReport([]models.Goal{
		{
			Name:          "Emergency Fund",
			Type:          models.GoalEmergency,
			TargetAmount:  1000,
			CurrentAmount: 250,
			TargetDate:    date(2025, time.June, 1),
			Status:        models.GoalActive,
		},
	})

	row := got.Rows[0]
	want := []string{"Emergency Fund", "emergency", "$1,000.00", "$250.00", "$750.00", "25%", "Jun 01, 2025", "active"}
	for i, w := range want {
		if row[i] != w {
			t.Fatalf("goal row mismatch at %d: got %q want %q", i, row[i], w)
		}
	}
}

func TestSummaryReport(t *testing.T) {
	got := SummaryReport(dto.TransactionStats{
		TotalTransactions: 4,
		TotalIncome:       3500,
		TotalExpense:      1600,
		TotalBalance:      1900,
		SavingsRate:       54.3,
	}, date(2024, time.July, 1))

	if got.Title != "Financial Summary" {
		t.Fatalf("title: got %q", got.Title)
	}
	byMetric := map[string]string{}
	for _, row := range got.Rows {
		byMetric[row[0]] = row[1]
	}
	if byMetric["Total Income"] != "$3,500.00" {
		t.Fatalf("income: got %q", byMetric["Total Income"])
	}
	if byMetric["Net Balance"] != "$1,900.00" {
		t.Fatalf("balance: got %q", byMetric["Net Balance"])
	}
	if byMetric["Savings Rate"] != "54.3%" {
		t.Fatalf("savings rate: got %q", byMetric["Savings Rate"])
	}
}

func TestWriteCSV(t *testing.T) {
	r := dto.Report{
		Title:   "Transactions",
		Columns: []string{"Date", "Amount"},
		Rows: [][]string{
			{"Jan 05, 2024", "$12.50"},
			{"Feb 01, 2024", "$3,000.00"},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, r); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "Date,Amount" {
		t.Fatalf("header mismatch: %q", lines[0])
	}
	// the grouped amount contains a comma and must be quoted
	if !strings.Contains(lines[2], `"$3,000.00"`) {
		t.Fatalf("grouped amount not quoted: %q", lines[2])
	}
}

func TestWriteXLSX(t *testing.T) {
	reports := []dto.Report{
		{Title: "Financial Summary", Columns: []string{"Metric", "Value"}, Rows: [][]string{{"Total Income", "$100.00"}}},
		{Title: "Transactions", Columns: []string{"Date", "Amount"}, Rows: [][]string{{"Jan 05, 2024", "$12.50"}}},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, reports...); err != nil {
		t.Fatalf("WriteXLSX error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected workbook bytes")
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatalf("output is not a zip archive")
	}

	if err := WriteXLSX(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for empty report set")
	}
}
