package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/models"
	"github.com/jdmartel/finance-tracker/pkg/helpers"
)

func TestReportTrend(t *testing.T) {
	txStore := newFakeTransactionStore()
	txStore.txs = []models.Transaction{
		{Type: models.TypeIncome, Category: "Salary", Amount: 1000, Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{Type: models.TypeExpense, Category: "Food", Amount: 200, Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
	}
	svc := NewReportService(txStore, newFakeBudgetStore(), newFakeGoalStore())

	got, err := svc.Trend(helpers.TestCtx(), "user-1", dto.TransactionQuery{})
	if err != nil {
		t.Fatalf("Trend error: %v", err)
	}

	if len(got.Labels) != 2 || got.Labels[0] != "Jan 2024" || got.Labels[1] != "Feb 2024" {
		t.Fatalf("labels should be chronological: %v", got.Labels)
	}
	if got.Expense[0] != 200 || got.Income[1] != 1000 {
		t.Fatalf("series misaligned: %+v", got)
	}
}

func TestReportCategories(t *testing.T) {
	txStore := newFakeTransactionStore()
	txStore.txs = []models.Transaction{
		{Type: models.TypeExpense, Category: "Food", Amount: 300, Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{Type: models.TypeExpense, Category: "Rent", Amount: 700, Date: time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)},
	}
	svc := NewReportService(txStore, newFakeBudgetStore(), newFakeGoalStore())

	got, err := svc.Categories(helpers.TestCtx(), "user-1", dto.TransactionQuery{})
	if err != nil {
		t.Fatalf("Categories error: %v", err)
	}

	if got.Labels[0] != "Rent" {
		t.Fatalf("largest category first: %v", got.Labels)
	}
	if got.Shares[0] != "70.0%" {
		t.Fatalf("share: got %q", got.Shares[0])
	}
}

func TestTransactionsReportShape(t *testing.T) {
	txStore := newFakeTransactionStore()
	txStore.txs = []models.Transaction{
		{Type: models.TypeExpense, Category: "Food", Amount: 50, Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}
	svc := NewReportService(txStore, newFakeBudgetStore(), newFakeGoalStore())

	got, err := svc.TransactionsReport(helpers.TestCtx(), "user-1", dto.TransactionQuery{})
	if err != nil {
		t.Fatalf("TransactionsReport error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected summary + transactions, got %d reports", len(got))
	}
	if got[0].Title != "Financial Summary" || got[1].Title != "Transactions" {
		t.Fatalf("report titles: %q / %q", got[0].Title, got[1].Title)
	}
	if len(got[1].Rows) != 1 {
		t.Fatalf("transaction rows: got %d", len(got[1].Rows))
	}
}

func TestReportStoreErrorSurfaces(t *testing.T) {
	txStore := newFakeTransactionStore()
	txStore.listErr = errors.New("firestore down")
	svc := NewReportService(txStore, newFakeBudgetStore(), newFakeGoalStore())

	if _, err := svc.Trend(helpers.TestCtx(), "user-1", dto.TransactionQuery{}); err == nil {
		t.Fatalf("expected store error to surface")
	}
	if _, err := svc.TransactionsReport(helpers.TestCtx(), "user-1", dto.TransactionQuery{}); err == nil {
		t.Fatalf("expected store error to surface")
	}
}
