package repositories

// RepositoryProvider bundles the repositories the service layer needs. It is
// constructed once at startup and passed explicitly, so tests can build
// isolated instances.
type RepositoryProvider struct {
	CustomerRepo CustomerRepositoryFacade
	AccountRepo  AccountRepositoryFacade
}
