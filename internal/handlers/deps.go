package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/jdmartel/finance-tracker/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	UserSvc         UserService
	TransactionSvc  TransactionService
	BudgetSvc       BudgetService
	GoalSvc         GoalService
	ReportSvc       ReportService
}
