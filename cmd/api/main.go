package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/swisscourtage/brokerage-backend-go/internal/config"
	appHTTP "github.com/swisscourtage/brokerage-backend-go/internal/handler/http"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/database"
	"github.com/swisscourtage/brokerage-backend-go/internal/repository/postgresql"
	collaboratorService "github.com/swisscourtage/brokerage-backend-go/internal/service/collaborator"
	commissionService "github.com/swisscourtage/brokerage-backend-go/internal/service/commission"
	payrollService "github.com/swisscourtage/brokerage-backend-go/internal/service/payroll"
	policyService "github.com/swisscourtage/brokerage-backend-go/internal/service/policy"
	revenueService "github.com/swisscourtage/brokerage-backend-go/internal/service/revenue"
	settlementService "github.com/swisscourtage/brokerage-backend-go/internal/service/settlement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	policyRepo := postgresql.NewPolicyRepository(db)
	commissionRepo := postgresql.NewCommissionRepository(db)
	collaboratorRepo := postgresql.NewCollaboratorRepository(db)

	settlements := settlementService.NewSettlementService(commissionRepo, collaboratorRepo)
	payslips := payrollService.NewPayrollService(collaboratorRepo, settlements)
	revenues := revenueService.NewRevenueService(policyRepo, commissionRepo)
	policies := policyService.NewPolicyService(policyRepo)
	commissions := commissionService.NewCommissionService(db, commissionRepo, policyRepo, collaboratorRepo)
	collaborators := collaboratorService.NewCollaboratorService(collaboratorRepo)

	router := appHTTP.NewRouter(
		appHTTP.NewSettlementHandler(settlements),
		appHTTP.NewPayrollHandler(payslips),
		appHTTP.NewRevenueHandler(revenues),
		appHTTP.NewPolicyHandler(policies),
		appHTTP.NewCommissionHandler(commissions),
		appHTTP.NewCollaboratorHandler(collaborators),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
