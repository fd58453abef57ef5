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

const defaultGoalCategory = "savings"

type goalStore interface {
	Create(ctx context.Context, uid string, g *models.Goal) error
	Get(ctx context.Context, uid, goalID string) (*models.Goal, error)
	List(ctx context.Context, uid string) ([]models.Goal, error)
	Update(ctx context.Context, uid string, g *models.Goal) error
	Delete(ctx context.Context, uid, goalID string) error
}

type goalService struct {
	store goalStore
}

func NewGoalService(store goalStore) *goalService {
	return &goalService{store: store}
}

func (s *goalService) List(ctx context.Context, uid string) ([]dto.GoalWithProgress, error) {
	goals, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.GoalWithProgress, len(goals))
	for i, g := range goals {
		out[i] = dto.GoalWithProgress{
			Goal:     g,
			Progress: stats.EvaluateGoal(g, now),
		}
	}
	return out, nil
}

func (s *goalService) Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error) {
	targetDate, err := parseDate("targetDate", req.TargetDate)
	if err != nil {
		return nil, err
	}
	goalType, err := models.ParseGoalType(req.Type)
	if err != nil {
		return nil, err
	}
	priority := models.PriorityMedium
	if req.Priority != "" {
		priority, err = models.ParseGoalPriority(req.Priority)
		if err != nil {
			return nil, err
		}
	}
	category := req.Category
	if category == "" {
		category = defaultGoalCategory
	}

	milestones := make([]models.Milestone, len(req.Milestones))
	for i, m := range req.Milestones {
		milestones[i] = models.Milestone{Amount: m.Amount, Description: m.Description}
	}

	g := &models.Goal{
		GoalID:        uuid.New().String(),
		UserID:        uid,
		Name:          req.Name,
		Description:   req.Description,
		Type:          goalType,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: 0,
		TargetDate:    targetDate,
		Status:        models.GoalActive,
		Priority:      priority,
		Category:      category,
		Notes:         req.Notes,
		Milestones:    milestones,
		Contributions: []models.Contribution{},
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, uid, g); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("goal created",
		"goal_id", g.GoalID, "type", g.Type, "target_amount", g.TargetAmount)
	return g, nil
}

func (s *goalService) Update(ctx context.Context, uid, goalID string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	g, err := s.store.Get(ctx, uid, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.Type != nil {
		goalType, err := models.ParseGoalType(*req.Type)
		if err != nil {
			return nil, err
		}
		g.Type = goalType
	}
	if req.TargetAmount != nil {
		g.TargetAmount = *req.TargetAmount
	}
	if req.TargetDate != nil {
		targetDate, err := parseDate("targetDate", *req.TargetDate)
		if err != nil {
			return nil, err
		}
		g.TargetDate = targetDate
	}
	if req.Priority != nil {
		priority, err := models.ParseGoalPriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		g.Priority = priority
	}
	if req.Category != nil {
		g.Category = *req.Category
	}
	if req.Notes != nil {
		g.Notes = *req.Notes
	}
	if req.Status != nil {
		status, err := models.ParseGoalStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		// Completion is derived, never assigned through updates.
		if status == models.GoalCompleted {
			return nil, errs.NewFieldError("status", "completed is derived from the target amount")
		}
		g.Status = status
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.Status = models.DeriveGoalStatus(g)
	if err := s.store.Update(ctx, uid, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) Delete(ctx context.Context, uid, goalID string) error {
	return s.store.Delete(ctx, uid, goalID)
}

// AddContribution records a contribution and persists the whole
// derived-state update in one write.
func (s *goalService) AddContribution(ctx context.Context, uid, goalID string, req dto.AddContributionRequest) (*dto.GoalWithProgress, error) {
	if req.Amount <= 0 {
		return nil, errs.NewFieldError("amount", "contribution amount must be greater than 0")
	}

	g, err := s.store.Get(ctx, uid, goalID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := stats.ApplyContribution(*g, req.Amount, req.Note, now)
	if err := s.store.Update(ctx, uid, &updated); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("contribution added",
		"goal_id", goalID, "amount", req.Amount, "current_amount", updated.CurrentAmount,
		"status", updated.Status)

	return &dto.GoalWithProgress{
		Goal:     updated,
		Progress: stats.EvaluateGoal(updated, now),
	}, nil
}
