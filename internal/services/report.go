package services

import (
	"context"
	"time"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/models"
	"github.com/jdmartel/finance-tracker/internal/report"
	"github.com/jdmartel/finance-tracker/internal/stats"
)

type reportTransactionStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
}

type reportBudgetStore interface {
	List(ctx context.Context, uid string) ([]models.Budget, error)
}

type reportGoalStore interface {
	List(ctx context.Context, uid string) ([]models.Goal, error)
}

type reportService struct {
	txs     reportTransactionStore
	budgets reportBudgetStore
	goals   reportGoalStore
}

func NewReportService(txs reportTransactionStore, budgets reportBudgetStore, goals reportGoalStore) *reportService {
	return &reportService{txs: txs, budgets: budgets, goals: goals}
}

// Trend returns the chart-ready monthly series for the filtered
// transaction collection.
func (s *reportService) Trend(ctx context.Context, uid string, q dto.TransactionQuery) (dto.TrendSeries, error) {
	txs, err := s.txs.List(ctx, uid, q)
	if err != nil {
		return dto.TrendSeries{}, err
	}
	return report.TrendSeries(stats.Calculate(txs)), nil
}

// Categories returns the pie-style category breakdown series.
func (s *reportService) Categories(ctx context.Context, uid string, q dto.TransactionQuery) (dto.CategorySeries, error) {
	txs, err := s.txs.List(ctx, uid, q)
	if err != nil {
		return dto.CategorySeries{}, err
	}
	return report.CategorySeries(stats.Calculate(txs)), nil
}

// TransactionsReport renders the transaction export: a summary sheet
// followed by the transaction rows.
func (s *reportService) TransactionsReport(ctx context.Context, uid string, q dto.TransactionQuery) ([]dto.Report, error) {
	txs, err := s.txs.List(ctx, uid, q)
	if err != nil {
		return nil, err
	}
	summary := report.SummaryReport(stats.Calculate(txs), time.Now())
	return []dto.Report{summary, report.TransactionReport(txs)}, nil
}

func (s *reportService) BudgetsReport(ctx context.Context, uid string) ([]dto.Report, error) {
	budgets, err := s.budgets.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	return []dto.Report{report.BudgetReport(budgets)}, nil
}

func (s *reportService) GoalsReport(ctx context.Context, uid string) ([]dto.Report, error) {
	goals, err := s.goals.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	return []dto.Report{report.GoalReport(goals)}, nil
}
