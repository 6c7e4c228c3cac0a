package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	EntryRepo     EntryRepositoryFacade
	PeriodRepo    PeriodRepositoryFacade
	ReportingRepo ReportingRepository
}
