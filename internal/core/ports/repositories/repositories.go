package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryWithTx
	CategoryRepo    CategoryRepositoryFacade
	InventoryRepo   InventoryRepositoryWithTx
	InvoiceRepo     InvoiceRepositoryFacade
	ReportingRepo   ReportingRepository
}
