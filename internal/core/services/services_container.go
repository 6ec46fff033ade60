package services

import (
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
)

// NewServiceContainer wires all services over the repository provider.
// Construction order follows the dependency chain: ledger and pricing
// first, then the lifecycle services built on top of them.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	clock portssvc.Clock,
	notifier portssvc.Notifier,
	payout portssvc.PayoutFactorProvider,
) *portssvc.ServiceContainer {
	ledgerSvc := NewLedgerService(repos.AccountRepo, repos.TransferRepo)
	pricingSvc := NewPricingService(repos.CompanyRepo, ledgerSvc, clock)
	companySvc := NewCompanyService(repos.CompanyRepo, clock)
	cooperationSvc := NewCooperationService(repos.CooperationRepo, repos.CoordinationRepo, repos.PlanRepo, pricingSvc, notifier, clock)
	coordinationSvc := NewCoordinationService(repos.CooperationRepo, repos.CoordinationRepo, repos.CompanyRepo, notifier, clock)
	planSvc := NewPlanService(repos.PlanRepo, repos.CompanyRepo, ledgerSvc, pricingSvc, cooperationSvc, notifier, clock)
	labourSvc := NewLabourService(repos.CompanyRepo, ledgerSvc, payout, clock)
	consumptionSvc := NewConsumptionService(repos.CompanyRepo, repos.PlanRepo, pricingSvc, ledgerSvc, clock)

	return &portssvc.ServiceContainer{
		Company:      companySvc,
		Ledger:       ledgerSvc,
		Pricing:      pricingSvc,
		Plan:         planSvc,
		Cooperation:  cooperationSvc,
		Coordination: coordinationSvc,
		Labour:       labourSvc,
		Consumption:  consumptionSvc,
	}
}
