package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/errs"
	"github.com/jdmartel/finance-tracker/internal/middleware"
	"github.com/jdmartel/finance-tracker/internal/models"
	"github.com/jdmartel/finance-tracker/internal/response"
)

type GoalService interface {
	List(ctx context.Context, uid string) ([]dto.GoalWithProgress, error)
	Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error)
	Update(ctx context.Context, uid, goalID string, req dto.UpdateGoalRequest) (*models.Goal, error)
	Delete(ctx context.Context, uid, goalID string) error
	AddContribution(ctx context.Context, uid, goalID string, req dto.AddContributionRequest) (*dto.GoalWithProgress, error)
}

type goalHandlers struct {
	ResponseHandler response.ResponseHandler
	GoalSvc         GoalService
}

func NewGoalHandlers(deps *Deps) *goalHandlers {
	return &goalHandlers{
		ResponseHandler: deps.ResponseHandler,
		GoalSvc:         deps.GoalSvc,
	}
}

func (h *goalHandlers) GoalRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListGoals)
	r.Post("/", h.CreateGoal)
	r.Put("/{goalId}", h.UpdateGoal)
	r.Delete("/{goalId}", h.DeleteGoal)
	r.Post("/{goalId}/contributions", h.AddContribution)
	return r
}

func (h *goalHandlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	goals, err := h.GoalSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, goals)
}

func (h *goalHandlers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	goal, err := h.GoalSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, goal)
}

func (h *goalHandlers) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	var req dto.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	goal, err := h.GoalSvc.Update(r.Context(), uid, goalID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, goal)
}

func (h *goalHandlers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	uid := middleware.UID(r.Context())
	if err := h.GoalSvc.Delete(r.Context(), uid, goalID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *goalHandlers) AddContribution(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	var req dto.AddContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	goal, err := h.GoalSvc.AddContribution(r.Context(), uid, goalID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, goal)
}
