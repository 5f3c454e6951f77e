package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		InventoryRepo:   newPgxInventoryRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
