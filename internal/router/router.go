package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jdmartel/finance-tracker/internal/handlers"
	"github.com/jdmartel/finance-tracker/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	auth := middleware.NewMiddleware(deps.Firebase)
	r.Use(auth.FirebaseAuth)

	log := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(log.LoggerMiddleware)

	ush := handlers.NewUserHandlers(deps)
	txh := handlers.NewTransactionHandlers(deps)
	bgh := handlers.NewBudgetHandlers(deps)
	glh := handlers.NewGoalHandlers(deps)
	rph := handlers.NewReportHandlers(deps)

	r.Mount("/users", ush.UserRoutes())
	r.Mount("/transactions", txh.TransactionRoutes())
	r.Mount("/budgets", bgh.BudgetRoutes())
	r.Mount("/goals", glh.GoalRoutes())
	r.Mount("/reports", rph.ReportRoutes())
	return r
}
