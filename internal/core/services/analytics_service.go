package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/catalogmatch"
	"github.com/kantocollect/salesops/internal/core/domain"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/excel"
	"github.com/kantocollect/salesops/internal/utils/textnorm"
	"github.com/shopspring/decimal"
)

const (
	// DefaultSinglesEntryName is the catalog entry that buckets loose single cards.
	DefaultSinglesEntryName = "Single Cards"
	defaultReportLimit      = 50
)

type analyticsService struct {
	BaseService
	saleRepo         portsrepo.SaleReader
	ruleRepo         portsrepo.COGSRuleReader
	catalogRepo      portsrepo.CatalogReader
	singlesEntryName string
	now              func() time.Time
}

// AnalyticsServiceOption configures the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithSinglesEntryName sets the name of the generic singles catalog entry.
func WithSinglesEntryName(name string) AnalyticsServiceOption {
	return func(s *analyticsService) {
		if name != "" {
			s.singlesEntryName = name
		}
	}
}

// NewAnalyticsService creates the reporting service.
func NewAnalyticsService(saleRepo portsrepo.SaleReader, ruleRepo portsrepo.COGSRuleReader, catalogRepo portsrepo.CatalogReader, options ...AnalyticsServiceOption) portssvc.AnalyticsSvc {
	svc := &analyticsService{
		saleRepo:         saleRepo,
		ruleRepo:         ruleRepo,
		catalogRepo:      catalogRepo,
		singlesEntryName: DefaultSinglesEntryName,
		now:              time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AnalyticsSvc = (*analyticsService)(nil)

func (s *analyticsService) COGSCoverage(ctx context.Context) (*domain.COGSCoverage, error) {
	sales, err := s.allSales(ctx)
	if err != nil {
		return nil, err
	}
	cov := &domain.COGSCoverage{TotalSales: len(sales), CoveragePercent: decimal.Zero}
	for _, sale := range sales {
		if sale.HasPositiveCOGS() {
			cov.WithCOGS++
		}
	}
	cov.WithoutCOGS = cov.TotalSales - cov.WithCOGS
	if cov.TotalSales > 0 {
		cov.CoveragePercent = decimal.NewFromInt(int64(cov.WithCOGS)).
			Mul(decimal.NewFromInt(100)).
			DivRound(decimal.NewFromInt(int64(cov.TotalSales)), 2)
	}
	return cov, nil
}

func (s *analyticsService) RulePerformance(ctx context.Context) ([]domain.RulePerformance, error) {
	rules, err := s.ruleRepo.ListRules(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rules for performance report")
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	usage, err := s.saleRepo.RuleUsage(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rule usage")
		return nil, fmt.Errorf("failed to load rule usage: %w", err)
	}
	byRule := make(map[int64]domain.RuleUsage, len(usage))
	for _, u := range usage {
		byRule[u.RuleID] = u
	}

	out := make([]domain.RulePerformance, 0, len(rules))
	for _, r := range rules {
		u := byRule[r.RuleID]
		total := u.TotalCOGS
		if u.Matches == 0 {
			total = decimal.Zero
		}
		out = append(out, domain.RulePerformance{
			RuleID:            r.RuleID,
			RuleName:          r.Name,
			IsActive:          r.IsActive,
			Matches:           u.Matches,
			TotalCOGSAssigned: total,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return out[i].RuleID < out[j].RuleID
	})
	return out, nil
}

func (s *analyticsService) CatalogRollup(ctx context.Context) (*domain.CatalogRollupReport, error) {
	catalog, sales, err := s.catalogAndSales(ctx)
	if err != nil {
		return nil, err
	}
	report := catalog.Rollup(sales)
	return &report, nil
}

func (s *analyticsService) UnmappedSales(ctx context.Context, limit int) (int, []domain.Sale, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	catalog, sales, err := s.catalogAndSales(ctx)
	if err != nil {
		return 0, nil, err
	}
	total := 0
	sample := []domain.Sale{}
	for _, sale := range sales {
		if _, ok := catalog.Resolve(sale); ok {
			continue
		}
		total++
		if len(sample) < limit {
			sample = append(sample, sale)
		}
	}
	return total, sample, nil
}

func (s *analyticsService) UnmappedSingles(ctx context.Context) (*domain.CatalogEntry, []domain.UnmappedSingle, error) {
	catalog, sales, err := s.catalogAndSales(ctx)
	if err != nil {
		return nil, nil, err
	}
	generic, singles, ok := catalog.UnmappedSingles(sales, s.singlesEntryName)
	if !ok {
		return nil, nil, fmt.Errorf("generic singles entry %q: %w", s.singlesEntryName, apperrors.ErrNotFound)
	}
	out := make([]domain.UnmappedSingle, len(singles))
	for i, sale := range singles {
		out[i] = domain.UnmappedSingle{Sale: sale, GenericEntry: generic.Name, GenericEntryID: generic.EntryID}
	}
	return &generic, out, nil
}

func (s *analyticsService) ProductsNeedingCOGS(ctx context.Context, limit int) ([]domain.ProductNeedingCOGS, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	sales, err := s.allSales(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*domain.ProductNeedingCOGS)
	for _, sale := range sales {
		if sale.HasPositiveCOGS() {
			continue
		}
		key := textnorm.Normalize(sale.ItemName)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &domain.ProductNeedingCOGS{NormalizedName: key, SampleName: sale.ItemName, TotalRevenue: decimal.Zero}
			groups[key] = g
		}
		g.SalesCount++
		g.TotalQuantity += sale.Quantity
		g.TotalRevenue = g.TotalRevenue.Add(sale.GrossSalePrice)
	}

	out := make([]domain.ProductNeedingCOGS, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalRevenue.Cmp(out[j].TotalRevenue); c != 0 {
			return c > 0
		}
		if out[i].SalesCount != out[j].SalesCount {
			return out[i].SalesCount > out[j].SalesCount
		}
		return out[i].NormalizedName < out[j].NormalizedName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *analyticsService) ExportReport(ctx context.Context, w io.Writer) error {
	coverage, err := s.COGSCoverage(ctx)
	if err != nil {
		return err
	}
	performance, err := s.RulePerformance(ctx)
	if err != nil {
		return err
	}
	rollup, err := s.CatalogRollup(ctx)
	if err != nil {
		return err
	}

	report := excel.Report{
		GeneratedAt:     s.now(),
		Coverage:        *coverage,
		RulePerformance: performance,
		Catalog:         *rollup,
	}
	if err := excel.WriteReport(w, report); err != nil {
		s.LogError(ctx, err, "Failed to render analytics workbook")
		return fmt.Errorf("failed to render workbook: %w", err)
	}
	s.LogInfo(ctx, "Analytics workbook exported", slog.Int("rules", len(performance)), slog.Int("entries", len(rollup.Entries)))
	return nil
}

func (s *analyticsService) allSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for analytics")
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	return sales, nil
}

func (s *analyticsService) catalogAndSales(ctx context.Context) (*catalogmatch.Catalog, []domain.Sale, error) {
	entries, err := s.catalogRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog for analytics")
		return nil, nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	sales, err := s.allSales(ctx)
	if err != nil {
		return nil, nil, err
	}
	return catalogmatch.NewCatalog(entries), sales, nil
}
