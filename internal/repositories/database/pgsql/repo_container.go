package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SaleRepo:     newPgxSaleRepository(dbPool),
		COGSRuleRepo: newPgxCOGSRuleRepository(dbPool),
		CatalogRepo:  newPgxCatalogRepository(dbPool),
		ShowRepo:     newPgxShowRepository(dbPool),
	}
}
