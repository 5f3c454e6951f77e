package services

import (
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, repos.InventoryRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.TransactionRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Forecast = NewForecastService(repos.ReportingRepo, repos.InventoryRepo)

	return container
}
