package services

import (
	"context"
	"io"

	"github.com/kantocollect/salesops/internal/core/domain"
)

// AnalyticsSvc derives read-only reports from the current rules, catalog and sales.
type AnalyticsSvc interface {
	COGSCoverage(ctx context.Context) (*domain.COGSCoverage, error)
	RulePerformance(ctx context.Context) ([]domain.RulePerformance, error)
	CatalogRollup(ctx context.Context) (*domain.CatalogRollupReport, error)

	// UnmappedSales returns the total count and up to limit sales no entry claims.
	UnmappedSales(ctx context.Context, limit int) (int, []domain.Sale, error)

	// UnmappedSingles returns the generic singles entry and the sales only it claims.
	UnmappedSingles(ctx context.Context) (*domain.CatalogEntry, []domain.UnmappedSingle, error)

	ProductsNeedingCOGS(ctx context.Context, limit int) ([]domain.ProductNeedingCOGS, error)

	// ExportReport writes coverage, rule performance and the catalog rollup as an xlsx workbook.
	ExportReport(ctx context.Context, w io.Writer) error
}
