package services

import (
	"context"

	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	GetSale(ctx context.Context, saleID int64) (*domain.Sale, error)
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
}

// SaleCOGSSvc assigns costs to sales
type SaleCOGSSvc interface {
	// UpdateSale applies a manual override of cost, notes or owner.
	UpdateSale(ctx context.Context, saleID int64, req dto.UpdateSaleRequest) (*domain.Sale, error)

	// RecalculateCOGS re-runs the active rules against one sale, replacing
	// whatever cost it carried.
	RecalculateCOGS(ctx context.Context, saleID int64) (*domain.Sale, error)

	// SaveProductCOGS upserts the product's auto-generated rule and propagates
	// its cost to every matching sale.
	SaveProductCOGS(ctx context.Context, req dto.SaveProductCOGSRequest) (*domain.BulkCOGSResult, error)

	// ApplyRulesToAll re-runs the active rules over every non-test sale, or only
	// those without a positive cost when onlyMissing is set.
	ApplyRulesToAll(ctx context.Context, onlyMissing bool) (*domain.BulkCOGSResult, error)
}

// SaleSvcFacade combines all sale service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleCOGSSvc
}
