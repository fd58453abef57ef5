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

type BudgetService interface {
	List(ctx context.Context, uid string) ([]dto.BudgetWithProgress, error)
	Create(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error)
	Update(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error)
	Delete(ctx context.Context, uid, budgetID string) error
	SyncSpent(ctx context.Context, uid string) ([]dto.BudgetWithProgress, error)
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       BudgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBudgets)
	r.Post("/", h.CreateBudget)
	r.Post("/sync", h.SyncBudgets)
	r.Put("/{budgetId}", h.UpdateBudget)
	r.Delete("/{budgetId}", h.DeleteBudget)
	return r
}

func (h *budgetHandlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	budgets, err := h.BudgetSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budgets)
}

func (h *budgetHandlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	budget, err := h.BudgetSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, budget)
}

func (h *budgetHandlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	var req dto.UpdateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	budget, err := h.BudgetSvc.Update(r.Context(), uid, budgetID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budget)
}

func (h *budgetHandlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	uid := middleware.UID(r.Context())
	if err := h.BudgetSvc.Delete(r.Context(), uid, budgetID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// SyncBudgets recomputes spent amounts from the transaction history and
// persists any budgets whose totals drifted.
func (h *budgetHandlers) SyncBudgets(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	budgets, err := h.BudgetSvc.SyncSpent(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budgets)
}
