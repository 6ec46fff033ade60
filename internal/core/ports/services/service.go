package services

// ServiceContainer holds all service facades and is assembled once at
// process start.
type ServiceContainer struct {
	Company      CompanySvcFacade
	Ledger       LedgerSvcFacade
	Pricing      PricingSvcFacade
	Plan         PlanSvcFacade
	Cooperation  CooperationSvcFacade
	Coordination CoordinationSvcFacade
	Labour       LabourSvcFacade
	Consumption  ConsumptionSvcFacade
}
