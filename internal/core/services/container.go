package services

import (
	portsrepo "github.com/medforge/hospital_ledger/internal/core/ports/repositories"
	portssvc "github.com/medforge/hospital_ledger/internal/core/ports/services"
)

// NewServiceContainer wires every service facade to its repositories. The
// embedding application builds one container per process and hands it to the
// modules that post to or read from the ledger.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.EntryRepo, repos.AccountRepo, repos.PeriodRepo)
	container.Period = NewPeriodService(repos.PeriodRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.EntryRepo, repos.PeriodRepo)
	container.Benefit = NewBenefitService()

	return container
}
