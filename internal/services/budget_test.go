package services

import (
	"context"
	"testing"
	"time"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/errs"
	"github.com/jdmartel/finance-tracker/internal/models"
	"github.com/jdmartel/finance-tracker/pkg/helpers"
)

type fakeBudgetStore struct {
	budgets []models.Budget
	stored  map[string]*models.Budget
	created *models.Budget
	updated []*models.Budget
}

func newFakeBudgetStore() *fakeBudgetStore {
	return &fakeBudgetStore{stored: map[string]*models.Budget{}}
}

func (f *fakeBudgetStore) Create(ctx context.Context, uid string, b *models.Budget) error {
	f.created = b
	return nil
}

func (f *fakeBudgetStore) Get(ctx context.Context, uid, budgetID string) (*models.Budget, error) {
	b, ok := f.stored[budgetID]
	if !ok {
		return nil, errs.NewNotFoundError("budget not found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBudgetStore) List(ctx context.Context, uid string) ([]models.Budget, error) {
	return f.budgets, nil
}

func (f *fakeBudgetStore) Update(ctx context.Context, uid string, b *models.Budget) error {
	f.updated = append(f.updated, b)
	return nil
}

func (f *fakeBudgetStore) Delete(ctx context.Context, uid, budgetID string) error {
	return nil
}

func TestBudgetCreateDefaults(t *testing.T) {
	store := newFakeBudgetStore()
	svc := NewBudgetService(store, newFakeTransactionStore())

	got, err := svc.Create(helpers.TestCtx(), "user-1", dto.CreateBudgetRequest{
		Name:      "Groceries",
		Category:  "Food",
		Amount:    200,
		Period:    "monthly",
		StartDate: "2030-06-01",
		EndDate:   "2030-06-30",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if got.BudgetID == "" {
		t.Fatalf("expected generated id")
	}
	if got.AlertThreshold != models.DefaultAlertThreshold {
		t.Fatalf("alert threshold default: got %v", got.AlertThreshold)
	}
	if got.Spent != 0 {
		t.Fatalf("new budget starts unspent, got %v", got.Spent)
	}
	if got.Status != models.BudgetActive {
		t.Fatalf("status: got %q", got.Status)
	}
	if store.created != got {
		t.Fatalf("store should receive the created budget")
	}
}

func TestBudgetCreateRejectsBadDates(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetStore(), newFakeTransactionStore())

	_, err := svc.Create(helpers.TestCtx(), "user-1", dto.CreateBudgetRequest{
		Name:      "Groceries",
		Category:  "Food",
		Amount:    200,
		Period:    "monthly",
		StartDate: "2030-06-30",
		EndDate:   "2030-06-01",
	})
	if err == nil {
		t.Fatalf("expected error for end before start")
	}
}

func TestBudgetUpdatePausedFlag(t *testing.T) {
	store := newFakeBudgetStore()
	store.stored["b1"] = &models.Budget{
		BudgetID:       "b1",
		UserID:         "user-1",
		Name:           "Groceries",
		Category:       "Food",
		Amount:         200,
		Period:         models.PeriodMonthly,
		StartDate:      time.Now().AddDate(0, 0, -5),
		EndDate:        time.Now().AddDate(0, 0, 25),
		Status:         models.BudgetActive,
		AlertThreshold: 80,
	}
	svc := NewBudgetService(store, newFakeTransactionStore())

	got, err := svc.Update(helpers.TestCtx(), "user-1", "b1", dto.UpdateBudgetRequest{
		Paused: helpers.Ptr(true),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Status != models.BudgetPaused {
		t.Fatalf("status: got %q", got.Status)
	}
}

func TestBudgetUpdateOverspendDerivesExceeded(t *testing.T) {
	store := newFakeBudgetStore()
	store.stored["b1"] = &models.Budget{
		BudgetID:       "b1",
		UserID:         "user-1",
		Name:           "Groceries",
		Category:       "Food",
		Amount:         200,
		Spent:          250,
		Period:         models.PeriodMonthly,
		StartDate:      time.Now().AddDate(0, 0, -5),
		EndDate:        time.Now().AddDate(0, 0, 25),
		Status:         models.BudgetActive,
		AlertThreshold: 80,
	}
	svc := NewBudgetService(store, newFakeTransactionStore())

	got, err := svc.Update(helpers.TestCtx(), "user-1", "b1", dto.UpdateBudgetRequest{
		Notes: helpers.Ptr("tight month"),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Status != models.BudgetExceeded {
		t.Fatalf("overspent budget should derive exceeded, got %q", got.Status)
	}
}

func TestBudgetSyncSpent(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	store := newFakeBudgetStore()
	store.budgets = []models.Budget{
		{
			BudgetID:       "b1",
			UserID:         "user-1",
			Name:           "Groceries",
			Category:       "Food",
			Amount:         200,
			Spent:          0,
			Period:         models.PeriodMonthly,
			StartDate:      start,
			EndDate:        end,
			Status:         models.BudgetActive,
			AlertThreshold: 80,
		},
	}

	txStore := newFakeTransactionStore()
	txStore.txs = []models.Transaction{
		// counted: expense, matching category, inside the window (boundaries inclusive)
		{Type: models.TypeExpense, Category: "Food", Amount: 50, Date: start},
		{Type: models.TypeExpense, Category: "Food", Amount: 80, Date: end},
		// skipped: wrong category, wrong type, outside the window
		{Type: models.TypeExpense, Category: "Bills", Amount: 500, Date: start.AddDate(0, 0, 10)},
		{Type: models.TypeIncome, Category: "Salary", Amount: 900, Date: start.AddDate(0, 0, 10)},
		{Type: models.TypeExpense, Category: "Food", Amount: 25, Date: end.AddDate(0, 0, 1)},
	}

	svc := NewBudgetService(store, txStore)

	got, err := svc.SyncSpent(helpers.TestCtx(), "user-1")
	if err != nil {
		t.Fatalf("SyncSpent error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(got))
	}
	if got[0].Budget.Spent != 130 {
		t.Fatalf("spent: got %v", got[0].Budget.Spent)
	}
	if got[0].Progress.Progress != 65 {
		t.Fatalf("progress: got %v", got[0].Progress.Progress)
	}
	if len(store.updated) != 1 {
		t.Fatalf("changed budget should be persisted once, got %d updates", len(store.updated))
	}
	if txStore.lastQuery.Type == nil || *txStore.lastQuery.Type != "expense" {
		t.Fatalf("sync should query expenses only: %v", txStore.lastQuery.Type)
	}
}

func TestBudgetSyncSpentNoChangeSkipsWrite(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	store := newFakeBudgetStore()
	store.budgets = []models.Budget{
		{
			BudgetID:       "b1",
			Category:       "Food",
			Amount:         200,
			Spent:          130,
			StartDate:      start,
			EndDate:        end,
			Status:         models.BudgetCompleted,
			AlertThreshold: 80,
		},
	}

	txStore := newFakeTransactionStore()
	txStore.txs = []models.Transaction{
		{Type: models.TypeExpense, Category: "Food", Amount: 130, Date: start},
	}

	svc := NewBudgetService(store, txStore)

	if _, err := svc.SyncSpent(helpers.TestCtx(), "user-1"); err != nil {
		t.Fatalf("SyncSpent error: %v", err)
	}
	// spent and derived status both unchanged: nothing to persist
	if len(store.updated) != 0 {
		t.Fatalf("unchanged budget should not be written, got %d updates", len(store.updated))
	}
}
