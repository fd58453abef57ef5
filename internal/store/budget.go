package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jdmartel/finance-tracker/internal/errs"
	"github.com/jdmartel/finance-tracker/internal/models"
)

type budgetStore struct {
	client *firestore.Client
}

func NewBudgetStore(client *firestore.Client) *budgetStore {
	return &budgetStore{client: client}
}

func (s *budgetStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("budgets")
}

func (s *budgetStore) Create(ctx context.Context, uid string, b *models.Budget) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	if _, err := s.collection(uid).Doc(b.BudgetID).Create(ctx, b); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("budget already exists")
		}
		return errs.NewDatabaseError("create", "failed to create budget", err)
	}
	return nil
}

func (s *budgetStore) Get(ctx context.Context, uid, budgetID string) (*models.Budget, error) {
	doc, err := s.collection(uid).Doc(budgetID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("budget not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get budget", err)
	}
	var b models.Budget
	if err := doc.DataTo(&b); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse budget data", err)
	}
	return &b, nil
}

// List returns the user's budgets, newest first.
func (s *budgetStore) List(ctx context.Context, uid string) ([]models.Budget, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []models.Budget
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list budgets", err)
		}
		var b models.Budget
		if err := doc.DataTo(&b); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse budget data", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *budgetStore) Update(ctx context.Context, uid string, b *models.Budget) error {
	b.UpdatedAt = time.Now()
	if _, err := s.collection(uid).Doc(b.BudgetID).Set(ctx, b); err != nil {
		return errs.NewDatabaseError("update", "failed to update budget", err)
	}
	return nil
}

func (s *budgetStore) Delete(ctx context.Context, uid, budgetID string) error {
	if _, err := s.Get(ctx, uid, budgetID); err != nil {
		return err
	}
	if _, err := s.collection(uid).Doc(budgetID).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete budget", err)
	}
	return nil
}
