package repositories

import (
	"context"
	"time"

	"github.com/kantocollect/salesops/internal/core/domain"
)

// SaleCursor positions a page of sales ordered by transaction date then id, newest first.
type SaleCursor struct {
	TransactionDate time.Time
	SaleID          int64
}

// SaleReader defines read operations for sales
type SaleReader interface {
	// FindSaleByID retrieves one sale. Returns apperrors.ErrNotFound when absent.
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)

	// ListSales returns up to limit sales matching filter, strictly after cursor when given.
	ListSales(ctx context.Context, filter domain.SaleFilter, limit int, after *SaleCursor) ([]domain.Sale, error)

	// ListAllSales returns every sale ordered by id.
	ListAllSales(ctx context.Context) ([]domain.Sale, error)

	// ListSalesByShow returns every sale attached to a show.
	ListSalesByShow(ctx context.Context, showID int64) ([]domain.Sale, error)

	// ListDistinctItemNames returns up to limit distinct item names.
	ListDistinctItemNames(ctx context.Context, limit int) ([]string, error)

	// RuleUsage aggregates match counts and assigned cost per matched rule.
	RuleUsage(ctx context.Context) ([]domain.RuleUsage, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// UpdateSale persists notes, owner and every COGS-derived field of a sale.
	UpdateSale(ctx context.Context, sale domain.Sale) error

	// SaveCOGSBatch persists COGS-derived fields for many sales in one
	// transaction. A failing row is rolled back to its own savepoint and
	// reported in the returned map; the other rows are still committed.
	SaveCOGSBatch(ctx context.Context, sales []domain.Sale) (map[int64]error, error)

	// UpdateSaleMapping persists the catalog mapping state of one sale.
	UpdateSaleMapping(ctx context.Context, mapping domain.SaleMapping) error

	// SaveMappingBatch persists many mapping states with the same per-row semantics as SaveCOGSBatch.
	SaveMappingBatch(ctx context.Context, mappings []domain.SaleMapping) (map[int64]error, error)
}

// SaleRepositoryFacade combines all sale repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
