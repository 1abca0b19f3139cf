package services

import (
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/core/statements"
	"github.com/SscSPs/contabilidad_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Movement = NewMovementService(
		repos.MovementRepo,
		repos.AccountRepo,
		WithCompanyRepository(repos.CompanyRepo),
	)
	container.Reporting = NewReportingService(
		repos.AccountRepo,
		repos.MovementRepo,
		WithCashFlowOptions(statements.CashFlowOptions{
			OpeningBank: cfg.OpeningBankBalance,
			OpeningCash: cfg.OpeningCashBalance,
		}),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.MovementSvcFacade = (*movementService)(nil)
	_ portssvc.CompanySvc        = (*companyService)(nil)
)
