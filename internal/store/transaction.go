package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/errs"
	"github.com/jdmartel/finance-tracker/internal/models"
)

// All transaction documents live under users/{uid}/transactions, so a
// caller can only ever touch its own records.
type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

func (s *transactionStore) Create(ctx context.Context, uid string, tx *models.Transaction) error {
	now := time.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now
	if _, err := s.collection(uid).Doc(tx.TransactionID).Create(ctx, tx); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("transaction already exists")
		}
		return errs.NewDatabaseError("create", "failed to create transaction", err)
	}
	return nil
}

func (s *transactionStore) Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	doc, err := s.collection(uid).Doc(transactionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("transaction not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get transaction", err)
	}
	var tx models.Transaction
	if err := doc.DataTo(&tx); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	return &tx, nil
}

func (s *transactionStore) Update(ctx context.Context, uid string, tx *models.Transaction) error {
	tx.UpdatedAt = time.Now()
	if _, err := s.collection(uid).Doc(tx.TransactionID).Set(ctx, tx); err != nil {
		return errs.NewDatabaseError("update", "failed to update transaction", err)
	}
	return nil
}

func (s *transactionStore) Delete(ctx context.Context, uid, transactionID string) error {
	// Existence is checked first so a delete against a missing id
	// surfaces as not-found rather than a silent no-op.
	if _, err := s.Get(ctx, uid, transactionID); err != nil {
		return err
	}
	if _, err := s.collection(uid).Doc(transactionID).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete transaction", err)
	}
	return nil
}

// List returns the user's transactions narrowed by q. The date window
// is inclusive on both ends.
func (s *transactionStore) List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error) {
	query := s.collection(uid).Query
	if q.Type != nil {
		query = query.Where("type", "==", *q.Type)
	}
	if q.DateFrom != nil {
		query = query.Where("date", ">=", *q.DateFrom)
	}
	if q.DateTo != nil {
		query = query.Where("date", "<=", *q.DateTo)
	}
	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "date"
	}
	dir := firestore.Asc
	if q.Desc {
		dir = firestore.Desc
	}
	query = query.OrderBy(orderBy, dir)
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []models.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
		}
		var tx models.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		out = append(out, tx)
	}
	return out, nil
}
