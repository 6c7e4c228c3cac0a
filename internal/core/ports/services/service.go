package services

// ServiceContainer holds instances of all the core services. Embedding
// applications (billing, claims, reporting) reach the ledger exclusively
// through these facades.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Period    PeriodSvcFacade
	Reporting ReportingSvcFacade
	Benefit   BenefitSvcFacade
}
