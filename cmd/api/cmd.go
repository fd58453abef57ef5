package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/jdmartel/finance-tracker/internal/bootstrap"
	"github.com/jdmartel/finance-tracker/internal/config"
	"github.com/jdmartel/finance-tracker/internal/handlers"
	"github.com/jdmartel/finance-tracker/internal/response"
	"github.com/jdmartel/finance-tracker/internal/router"
	"github.com/jdmartel/finance-tracker/internal/services"
	"github.com/jdmartel/finance-tracker/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	bstore := store.NewBudgetStore(bs.Firestore)
	gstore := store.NewGoalStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore)
	tserv := services.NewTransactionService(tstore)
	bserv := services.NewBudgetService(bstore, tstore)
	gserv := services.NewGoalService(gstore)
	rserv := services.NewReportService(tstore, bstore, gstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.TransactionSvc = tserv
	deps.BudgetSvc = bserv
	deps.GoalSvc = gserv
	deps.ReportSvc = rserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
