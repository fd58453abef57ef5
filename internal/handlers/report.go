package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/middleware"
	"github.com/jdmartel/finance-tracker/internal/report"
	"github.com/jdmartel/finance-tracker/internal/response"
	"github.com/jdmartel/finance-tracker/pkg/logger"
)

type ReportService interface {
	Trend(ctx context.Context, uid string, q dto.TransactionQuery) (dto.TrendSeries, error)
	Categories(ctx context.Context, uid string, q dto.TransactionQuery) (dto.CategorySeries, error)
	TransactionsReport(ctx context.Context, uid string, q dto.TransactionQuery) ([]dto.Report, error)
	BudgetsReport(ctx context.Context, uid string) ([]dto.Report, error)
	GoalsReport(ctx context.Context, uid string) ([]dto.Report, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       ReportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/trend", h.GetTrend)
	r.Get("/categories", h.GetCategories)
	r.Get("/transactions.csv", h.DownloadTransactionsCSV)
	r.Get("/transactions.xlsx", h.DownloadTransactionsXLSX)
	r.Get("/budgets.csv", h.DownloadBudgetsCSV)
	r.Get("/budgets.xlsx", h.DownloadBudgetsXLSX)
	r.Get("/goals.csv", h.DownloadGoalsCSV)
	r.Get("/goals.xlsx", h.DownloadGoalsXLSX)
	return r
}

func (h *reportHandlers) GetTrend(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	series, err := h.ReportSvc.Trend(r.Context(), uid, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, series)
}

func (h *reportHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	series, err := h.ReportSvc.Categories(r.Context(), uid, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, series)
}

func (h *reportHandlers) DownloadTransactionsCSV(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	reports, err := h.ReportSvc.TransactionsReport(r.Context(), uid, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.writeCSV(w, r, "transactions", reports)
}

func (h *reportHandlers) DownloadTransactionsXLSX(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	reports, err := h.ReportSvc.TransactionsReport(r.Context(), uid, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.writeXLSX(w, r, "transactions", reports)
}

func (h *reportHandlers) DownloadBudgetsCSV(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	reports, err := h.ReportSvc.BudgetsReport(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.writeCSV(w, r, "budgets", reports)
}

func (h *reportHandlers) DownloadBudgetsXLSX(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	reports, err := h.ReportSvc.BudgetsReport(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.writeXLSX(w, r, "budgets", reports)
}

func (h *reportHandlers) DownloadGoalsCSV(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	reports, err := h.ReportSvc.GoalsReport(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.writeCSV(w, r, "goals", reports)
}

func (h *reportHandlers) DownloadGoalsXLSX(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	reports, err := h.ReportSvc.GoalsReport(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.writeXLSX(w, r, "goals", reports)
}

// writeCSV streams the primary table of the report set. CSV has no sheet
// concept, so supporting tables (summary pages) are skipped.
func (h *reportHandlers) writeCSV(w http.ResponseWriter, r *http.Request, name string, reports []dto.Report) {
	if len(reports) == 0 {
		h.ResponseHandler.HandleError(w, r, fmt.Errorf("no report data"))
		return
	}
	primary := reports[len(reports)-1]

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", attachmentName(name, "csv"))
	if err := report.WriteCSV(w, primary); err != nil {
		logger.FromContext(r.Context()).Error("writing csv report", "error", err)
	}
}

func (h *reportHandlers) writeXLSX(w http.ResponseWriter, r *http.Request, name string, reports []dto.Report) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachmentName(name, "xlsx"))
	if err := report.WriteXLSX(w, reports...); err != nil {
		logger.FromContext(r.Context()).Error("writing xlsx report", "error", err)
	}
}

func attachmentName(name, ext string) string {
	return fmt.Sprintf("attachment; filename=%s-%s.%s", name, time.Now().Format("2006-01-02"), ext)
}
