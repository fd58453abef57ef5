package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/errs"
	"github.com/jdmartel/finance-tracker/internal/models"
	"github.com/jdmartel/finance-tracker/internal/stats"
	"github.com/jdmartel/finance-tracker/pkg/logger"
)

const dateLayout = "2006-01-02"

type transactionStore interface {
	Create(ctx context.Context, uid string, tx *models.Transaction) error
	Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	Update(ctx context.Context, uid string, tx *models.Transaction) error
	Delete(ctx context.Context, uid, transactionID string) error
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
}

type transactionService struct {
	store transactionStore
}

func NewTransactionService(store transactionStore) *transactionService {
	return &transactionService{store: store}
}

func (s *transactionService) List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error) {
	return s.store.List(ctx, uid, q)
}

func (s *transactionService) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	txType, err := models.ParseTransactionType(req.Type)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		TransactionID: uuid.New().String(),
		UserID:        uid,
		Amount:        req.Amount,
		Type:          txType,
		Category:      req.Category,
		Date:          date,
		Reference:     req.Reference,
		Description:   req.Description,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, uid, tx); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("transaction created",
		"transaction_id", tx.TransactionID, "type", tx.Type, "category", tx.Category)
	return tx, nil
}

// Update applies the allow-listed fields onto the stored record and
// re-validates the result before writing it back.
func (s *transactionService) Update(ctx context.Context, uid, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	tx, err := s.store.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Type != nil {
		txType, err := models.ParseTransactionType(*req.Type)
		if err != nil {
			return nil, err
		}
		tx.Type = txType
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		tx.Date = date
	}
	if req.Reference != nil {
		tx.Reference = *req.Reference
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, uid, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) Delete(ctx context.Context, uid, transactionID string) error {
	return s.store.Delete(ctx, uid, transactionID)
}

// Stats fetches the filtered collection and rolls it up. A fetch
// failure surfaces as-is; callers keep whatever they last displayed.
func (s *transactionService) Stats(ctx context.Context, uid string, q dto.TransactionQuery) (dto.TransactionStats, error) {
	txs, err := s.store.List(ctx, uid, q)
	if err != nil {
		return dto.TransactionStats{}, err
	}
	return stats.Calculate(txs), nil
}

// BuildTransactionQuery turns the raw list/stats query params into a
// typed query. frequency is a day count ("7", "30", "365") or "custom"
// with explicit from/to; either may be empty.
func BuildTransactionQuery(typeParam, frequency, from, to string, now time.Time) (dto.TransactionQuery, error) {
	q := dto.TransactionQuery{Desc: true}

	if typeParam != "" && typeParam != "all" {
		if _, err := models.ParseTransactionType(typeParam); err != nil {
			return q, err
		}
		q.Type = &typeParam
	}

	switch frequency {
	case "", "custom":
		if from != "" {
			f, err := parseDate("from", from)
			if err != nil {
				return q, err
			}
			q.DateFrom = &f
		}
		if to != "" {
			t, err := parseDate("to", to)
			if err != nil {
				return q, err
			}
			// Inclusive through the end of the day.
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
			q.DateTo = &t
		}
	default:
		days, err := parseDays(frequency)
		if err != nil {
			return q, err
		}
		f := now.AddDate(0, 0, -days)
		q.DateFrom = &f
	}

	return q, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewFieldError(field, "must be a YYYY-MM-DD date")
	}
	return t, nil
}

func parseDays(s string) (int, error) {
	days := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errs.NewFieldError("frequency", "must be a day count or \"custom\"")
		}
		days = days*10 + int(r-'0')
	}
	if days == 0 {
		return 0, errs.NewFieldError("frequency", "must be a positive day count")
	}
	return days, nil
}
