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

type goalStore struct {
	client *firestore.Client
}

func NewGoalStore(client *firestore.Client) *goalStore {
	return &goalStore{client: client}
}

func (s *goalStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("goals")
}

func (s *goalStore) Create(ctx context.Context, uid string, g *models.Goal) error {
	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	if _, err := s.collection(uid).Doc(g.GoalID).Create(ctx, g); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("goal already exists")
		}
		return errs.NewDatabaseError("create", "failed to create goal", err)
	}
	return nil
}

func (s *goalStore) Get(ctx context.Context, uid, goalID string) (*models.Goal, error) {
	doc, err := s.collection(uid).Doc(goalID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("goal not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get goal", err)
	}
	var g models.Goal
	if err := doc.DataTo(&g); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse goal data", err)
	}
	return &g, nil
}

// List returns the user's goals, newest first.
func (s *goalStore) List(ctx context.Context, uid string) ([]models.Goal, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []models.Goal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list goals", err)
		}
		var g models.Goal
		if err := doc.DataTo(&g); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse goal data", err)
		}
		out = append(out, g)
	}
	return out, nil
}

// Update writes the whole document in one Set so a contribution's
// derived-state changes (amount, status, milestones) land together or
// not at all.
func (s *goalStore) Update(ctx context.Context, uid string, g *models.Goal) error {
	g.UpdatedAt = time.Now()
	if _, err := s.collection(uid).Doc(g.GoalID).Set(ctx, g); err != nil {
		return errs.NewDatabaseError("update", "failed to update goal", err)
	}
	return nil
}

func (s *goalStore) Delete(ctx context.Context, uid, goalID string) error {
	if _, err := s.Get(ctx, uid, goalID); err != nil {
		return err
	}
	if _, err := s.collection(uid).Doc(goalID).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete goal", err)
	}
	return nil
}
