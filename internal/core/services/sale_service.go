package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/cogsmatch"
	"github.com/kantocollect/salesops/internal/core/domain"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/kantocollect/salesops/internal/utils/accounting"
	"github.com/kantocollect/salesops/internal/utils/pagination"
	"github.com/kantocollect/salesops/internal/utils/textnorm"
	"github.com/shopspring/decimal"
)

const (
	defaultSalePageSize = 50
	// DefaultAutoRulePriority is the priority of rules created by SaveProductCOGS.
	DefaultAutoRulePriority = 50
)

type saleService struct {
	BaseService
	saleRepo         portsrepo.SaleRepositoryFacade
	ruleRepo         portsrepo.COGSRuleRepositoryFacade
	showSvc          portssvc.ShowSvc
	autoRulePriority int
}

// SaleServiceOption configures the sale service
type SaleServiceOption func(*saleService)

// WithAutoRulePriority overrides the priority of auto-generated product rules.
func WithAutoRulePriority(priority int) SaleServiceOption {
	return func(s *saleService) {
		s.autoRulePriority = priority
	}
}

// NewSaleService creates the sale service, which owns every COGS mutation.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, ruleRepo portsrepo.COGSRuleRepositoryFacade, showSvc portssvc.ShowSvc, options ...SaleServiceOption) portssvc.SaleSvcFacade {
	svc := &saleService{
		saleRepo:         saleRepo,
		ruleRepo:         ruleRepo,
		showSvc:          showSvc,
		autoRulePriority: DefaultAutoRulePriority,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) GetSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale", slog.Int64("sale_id", saleID))
		}
		return nil, err
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSalePageSize
	}

	filter := domain.SaleFilter{
		ShowID:      params.ShowID,
		MissingCOGS: params.MissingCOGS,
		Unmapped:    params.Unmapped,
		Search:      params.Search,
	}
	if params.SaleType != "" {
		st := domain.SaleType(params.SaleType)
		if st != domain.SaleTypeStream && st != domain.SaleTypeMarketplace {
			return nil, fmt.Errorf("unknown sale type %q: %w", params.SaleType, apperrors.ErrValidation)
		}
		filter.SaleType = &st
	}
	if params.Owner != "" {
		owner := domain.Owner(params.Owner)
		if !owner.IsValid() {
			return nil, fmt.Errorf("unknown owner %q: %w", params.Owner, apperrors.ErrValidation)
		}
		filter.Owner = &owner
	}

	var after *portsrepo.SaleCursor
	if params.NextToken != "" {
		txDate, saleID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
		}
		after = &portsrepo.SaleCursor{TransactionDate: txDate, SaleID: saleID}
	}

	sales, err := s.saleRepo.ListSales(ctx, filter, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	resp := &dto.ListSalesResponse{Sales: sales}
	if len(sales) > limit {
		resp.Sales = sales[:limit]
		last := resp.Sales[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.SaleID)
		resp.NextToken = &token
	}
	if resp.Sales == nil {
		resp.Sales = []domain.Sale{}
	}
	return resp, nil
}

func (s *saleService) UpdateSale(ctx context.Context, saleID int64, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	if req.ClearCOGS && req.COGS != nil {
		return nil, fmt.Errorf("cogs and clearCogs cannot be combined: %w", apperrors.ErrValidation)
	}
	if req.COGS != nil && req.COGS.IsNegative() {
		return nil, fmt.Errorf("cogs must not be negative: %w", apperrors.ErrValidation)
	}
	if req.COGS != nil && !accounting.IsWholeCents(*req.COGS) {
		return nil, fmt.Errorf("cogs %s has more than %d decimal places: %w", req.COGS, accounting.MoneyPlaces, apperrors.ErrValidation)
	}
	var owner *domain.Owner
	if req.Owner != nil {
		if v := strings.TrimSpace(*req.Owner); v != "" {
			o := domain.Owner(v)
			if !o.IsValid() {
				return nil, fmt.Errorf("unknown owner %q: %w", v, apperrors.ErrValidation)
			}
			owner = &o
		}
	}

	sale, err := s.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	before := *sale

	switch {
	case req.ClearCOGS:
		accounting.ClearCOGS(sale)
	case req.COGS != nil:
		accounting.SetManualCOGS(sale, *req.COGS)
	}
	if req.Notes != nil {
		sale.Notes = trimmedOrNil(req.Notes)
	}
	if req.Owner != nil {
		sale.Owner = owner
	}

	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to update sale", slog.Int64("sale_id", saleID))
		return nil, err
	}
	if !accounting.SameCOGSState(before, *sale) {
		s.recomputeShowsOf(ctx, *sale)
	}
	s.LogInfo(ctx, "Sale updated", slog.Int64("sale_id", saleID))
	return sale, nil
}

func (s *saleService) RecalculateCOGS(ctx context.Context, saleID int64) (*domain.Sale, error) {
	sale, err := s.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	ruleSet, err := s.activeRuleSet(ctx)
	if err != nil {
		return nil, err
	}

	updated := *sale
	if m, ok := ruleSet.MatchName(sale.ItemName); ok {
		accounting.ApplyCOGS(&updated, m.UnitCost, m.RuleID)
		s.LogDebug(ctx, "Sale matched COGS rule",
			slog.Int64("sale_id", saleID), slog.Int64("rule_id", m.RuleID), slog.String("keyword", m.Keyword))
	} else {
		accounting.ClearCOGS(&updated)
	}

	if accounting.SameCOGSState(*sale, updated) {
		return sale, nil
	}
	if err := s.saleRepo.UpdateSale(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to store recalculated COGS", slog.Int64("sale_id", saleID))
		return nil, err
	}
	s.recomputeShowsOf(ctx, updated)
	return &updated, nil
}

func (s *saleService) SaveProductCOGS(ctx context.Context, req dto.SaveProductCOGSRequest) (*domain.BulkCOGSResult, error) {
	product := strings.TrimSpace(req.Product)
	if product == "" {
		return nil, fmt.Errorf("product name is required: %w", apperrors.ErrValidation)
	}
	if req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost must not be negative: %w", apperrors.ErrValidation)
	}
	if !accounting.IsWholeCents(req.UnitCost) {
		return nil, fmt.Errorf("unit cost %s has more than %d decimal places: %w", req.UnitCost, accounting.MoneyPlaces, apperrors.ErrValidation)
	}
	keywords := cleanKeywords(req.Keywords)
	normalized := textnorm.NormalizeAll(keywords)
	if len(normalized) == 0 {
		return nil, fmt.Errorf("at least one keyword must contain a letter or digit: %w", apperrors.ErrValidation)
	}

	rule, created, err := s.upsertAutoRule(ctx, product, req.UnitCost, keywords)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for COGS propagation")
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	result := newBulkResult()
	result.RuleID = &rule.RuleID
	result.RuleCreated = created
	err = s.applyBulk(ctx, sales, result, func(sale domain.Sale) (domain.Sale, bool) {
		if _, ok := cogsmatch.ContainsAny(normalized, textnorm.Normalize(sale.ItemName)); !ok {
			return sale, false
		}
		accounting.ApplyCOGS(&sale, req.UnitCost, rule.RuleID)
		return sale, true
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Product COGS saved",
		slog.String("product", product),
		slog.Int64("rule_id", rule.RuleID),
		slog.Int("matched", result.Matched),
		slog.Int("updated", result.Updated),
		slog.Int("errored", result.Errored))
	return result, nil
}

func (s *saleService) ApplyRulesToAll(ctx context.Context, onlyMissing bool) (*domain.BulkCOGSResult, error) {
	ruleSet, err := s.activeRuleSet(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for rule application")
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	if onlyMissing {
		missing := sales[:0:0]
		for _, sale := range sales {
			if !sale.HasPositiveCOGS() {
				missing = append(missing, sale)
			}
		}
		sales = missing
	}

	result := newBulkResult()
	err = s.applyBulk(ctx, sales, result, func(sale domain.Sale) (domain.Sale, bool) {
		m, ok := ruleSet.MatchName(sale.ItemName)
		if !ok {
			return sale, false
		}
		accounting.ApplyCOGS(&sale, m.UnitCost, m.RuleID)
		return sale, true
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "COGS rules applied",
		slog.Bool("only_missing", onlyMissing),
		slog.Int("active_rules", ruleSet.Len()),
		slog.Int("matched", result.Matched),
		slog.Int("updated", result.Updated))
	return result, nil
}

func newBulkResult() *domain.BulkCOGSResult {
	return &domain.BulkCOGSResult{AffectedShows: []int64{}, Errors: []string{}}
}

// applyBulk runs assign over every sale outside the test bucket, persists the
// sales whose COGS state changed and recomputes each touched show once.
func (s *saleService) applyBulk(ctx context.Context, sales []domain.Sale, result *domain.BulkCOGSResult, assign func(domain.Sale) (domain.Sale, bool)) error {
	var pending []domain.Sale
	for _, sale := range sales {
		if sale.IsTestBucket() {
			continue
		}
		result.Scanned++
		if strings.TrimSpace(sale.ItemName) == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("sale %d: missing item name", sale.SaleID))
			continue
		}
		if sale.Quantity <= 0 {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("sale %d: quantity %d is not positive", sale.SaleID, sale.Quantity))
			continue
		}

		updated, matched := assign(sale)
		if !matched {
			continue
		}
		result.Matched++
		if accounting.SameCOGSState(sale, updated) {
			result.Unchanged++
			continue
		}
		pending = append(pending, updated)
	}

	failed, err := s.saleRepo.SaveCOGSBatch(ctx, pending)
	if err != nil {
		s.LogError(ctx, err, "Failed to store bulk COGS", slog.Int("rows", len(pending)))
		return fmt.Errorf("failed to store bulk COGS: %w", err)
	}

	var touched []int64
	for _, sale := range pending {
		if rowErr, bad := failed[sale.SaleID]; bad {
			result.Errored++
			result.Errors = append(result.Errors, fmt.Sprintf("sale %d: %v", sale.SaleID, rowErr))
			continue
		}
		result.Updated++
		if sale.ShowID != nil {
			touched = append(touched, *sale.ShowID)
		}
	}

	result.AffectedShows = uniqueIDs(touched)
	if err := s.showSvc.RecomputeShows(ctx, result.AffectedShows); err != nil {
		s.LogError(ctx, err, "Failed to recompute show totals after bulk COGS")
		result.Errors = append(result.Errors, fmt.Sprintf("show totals: %v", err))
	}
	return nil
}

func (s *saleService) upsertAutoRule(ctx context.Context, product string, unitCost decimal.Decimal, keywords []string) (*domain.COGSRule, bool, error) {
	name := product + domain.AutoRuleSuffix
	now := time.Now().UTC()

	existing, err := s.ruleRepo.FindRuleByName(ctx, name)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		category := product
		notes := domain.AutoRuleNotes
		rule := domain.COGSRule{
			Name:      name,
			Keywords:  keywords,
			UnitCost:  unitCost,
			MatchMode: domain.MatchContains,
			Priority:  s.autoRulePriority,
			IsActive:  true,
			Category:  &category,
			Notes:     &notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		id, err := s.ruleRepo.SaveRule(ctx, rule)
		if err != nil {
			s.LogError(ctx, err, "Failed to create auto-generated rule", slog.String("name", name))
			return nil, false, err
		}
		rule.RuleID = id
		return &rule, true, nil
	case err != nil:
		s.LogError(ctx, err, "Failed to look up auto-generated rule", slog.String("name", name))
		return nil, false, err
	}

	existing.Keywords = keywords
	existing.UnitCost = unitCost
	existing.IsActive = true
	existing.UpdatedAt = now
	if err := s.ruleRepo.UpdateRule(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update auto-generated rule", slog.Int64("rule_id", existing.RuleID))
		return nil, false, err
	}
	return existing, false, nil
}

func (s *saleService) activeRuleSet(ctx context.Context) (cogsmatch.RuleSet, error) {
	rules, err := s.ruleRepo.ListRules(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load active COGS rules")
		return cogsmatch.RuleSet{}, fmt.Errorf("failed to load rules: %w", err)
	}
	return cogsmatch.NewRuleSet(rules), nil
}

// recomputeShowsOf refreshes the owning show's totals. Failures are logged only.
func (s *saleService) recomputeShowsOf(ctx context.Context, sale domain.Sale) {
	if sale.ShowID == nil {
		return
	}
	if err := s.showSvc.RecomputeShows(ctx, []int64{*sale.ShowID}); err != nil {
		s.LogError(ctx, err, "Failed to recompute show totals", slog.Int64("show_id", *sale.ShowID))
	}
}
