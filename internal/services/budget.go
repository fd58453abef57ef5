package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/models"
	"github.com/jdmartel/finance-tracker/internal/stats"
	"github.com/jdmartel/finance-tracker/pkg/helpers"
	"github.com/jdmartel/finance-tracker/pkg/logger"
)

type budgetStore interface {
	Create(ctx context.Context, uid string, b *models.Budget) error
	Get(ctx context.Context, uid, budgetID string) (*models.Budget, error)
	List(ctx context.Context, uid string) ([]models.Budget, error)
	Update(ctx context.Context, uid string, b *models.Budget) error
	Delete(ctx context.Context, uid, budgetID string) error
}

type budgetTransactionStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
}

type budgetService struct {
	store budgetStore
	txs   budgetTransactionStore
}

func NewBudgetService(store budgetStore, txs budgetTransactionStore) *budgetService {
	return &budgetService{store: store, txs: txs}
}

func (s *budgetService) List(ctx context.Context, uid string) ([]dto.BudgetWithProgress, error) {
	budgets, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.BudgetWithProgress, len(budgets))
	for i, b := range budgets {
		out[i] = dto.BudgetWithProgress{
			Budget:   b,
			Progress: stats.EvaluateBudget(b, now),
		}
	}
	return out, nil
}

func (s *budgetService) Create(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error) {
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	period, err := models.ParseBudgetPeriod(req.Period)
	if err != nil {
		return nil, err
	}

	b := &models.Budget{
		BudgetID:       uuid.New().String(),
		UserID:         uid,
		Name:           req.Name,
		Category:       req.Category,
		Amount:         req.Amount,
		Period:         period,
		StartDate:      start,
		EndDate:        end,
		Spent:          0,
		Status:         models.BudgetActive,
		AlertThreshold: helpers.ValueOr(req.AlertThreshold, models.DefaultAlertThreshold),
		Notes:          req.Notes,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.Status = models.DeriveBudgetStatus(b, time.Now())
	if err := s.store.Create(ctx, uid, b); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("budget created",
		"budget_id", b.BudgetID, "category", b.Category, "period", b.Period)
	return b, nil
}

func (s *budgetService) Update(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error) {
	b, err := s.store.Get(ctx, uid, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.Period != nil {
		period, err := models.ParseBudgetPeriod(*req.Period)
		if err != nil {
			return nil, err
		}
		b.Period = period
	}
	if req.StartDate != nil {
		start, err := parseDate("startDate", *req.StartDate)
		if err != nil {
			return nil, err
		}
		b.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate("endDate", *req.EndDate)
		if err != nil {
			return nil, err
		}
		b.EndDate = end
	}
	if req.AlertThreshold != nil {
		b.AlertThreshold = *req.AlertThreshold
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if req.Paused != nil {
		if *req.Paused {
			b.Status = models.BudgetPaused
		} else {
			b.Status = models.BudgetActive
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.Status = models.DeriveBudgetStatus(b, time.Now())
	if err := s.store.Update(ctx, uid, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *budgetService) Delete(ctx context.Context, uid, budgetID string) error {
	return s.store.Delete(ctx, uid, budgetID)
}

// SyncSpent recomputes every budget's spent amount from the expense
// transactions in its category and date window, then re-derives and
// persists status. Returns the refreshed list with progress.
func (s *budgetService) SyncSpent(ctx context.Context, uid string) ([]dto.BudgetWithProgress, error) {
	budgets, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	expense := string(models.TypeExpense)
	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{Type: &expense})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]dto.BudgetWithProgress, len(budgets))
	for i := range budgets {
		b := budgets[i]
		spent := spentFor(b, txs)
		status := b.Status
		b.Spent = spent
		b.Status = models.DeriveBudgetStatus(&b, now)

		if spent != budgets[i].Spent || b.Status != status {
			if err := s.store.Update(ctx, uid, &b); err != nil {
				return nil, err
			}
		}
		out[i] = dto.BudgetWithProgress{
			Budget:   b,
			Progress: stats.EvaluateBudget(b, now),
		}
	}

	logger.FromContext(ctx).Info("budget spend synced", "budgets", len(budgets))
	return out, nil
}

// spentFor sums expense transactions in the budget's category dated
// within [startDate, endDate], inclusive on both ends.
func spentFor(b models.Budget, txs []models.Transaction) float64 {
	var spent float64
	for _, tx := range txs {
		if tx.Type != models.TypeExpense || tx.Category != b.Category {
			continue
		}
		if tx.Date.Before(b.StartDate) || tx.Date.After(b.EndDate) {
			continue
		}
		spent += tx.Amount
	}
	return spent
}
