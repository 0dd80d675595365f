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
	"github.com/kantocollect/salesops/internal/utils/textnorm"
)

const (
	defaultRuleTestLimit = 20
	maxRuleTestLimit     = 200
	// ruleTestScanLimit bounds how many distinct item names a dry run reads.
	ruleTestScanLimit = 1000
)

type cogsRuleService struct {
	BaseService
	ruleRepo         portsrepo.COGSRuleRepositoryFacade
	saleRepo         portsrepo.SaleReader
	defaultTestLimit int
}

// COGSRuleServiceOption configures the COGS rule service
type COGSRuleServiceOption func(*cogsRuleService)

// WithDefaultRuleTestLimit sets how many matches a dry run returns when the
// request does not say.
func WithDefaultRuleTestLimit(limit int) COGSRuleServiceOption {
	return func(s *cogsRuleService) {
		if limit > 0 {
			s.defaultTestLimit = min(limit, maxRuleTestLimit)
		}
	}
}

// NewCOGSRuleService creates the COGS rule service.
func NewCOGSRuleService(ruleRepo portsrepo.COGSRuleRepositoryFacade, saleRepo portsrepo.SaleReader, options ...COGSRuleServiceOption) portssvc.COGSRuleSvcFacade {
	svc := &cogsRuleService{
		ruleRepo:         ruleRepo,
		saleRepo:         saleRepo,
		defaultTestLimit: defaultRuleTestLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.COGSRuleSvcFacade = (*cogsRuleService)(nil)

func (s *cogsRuleService) GetRule(ctx context.Context, ruleID int64) (*domain.COGSRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find COGS rule", slog.Int64("rule_id", ruleID))
		}
		return nil, err
	}
	counts, err := s.matchCounts(ctx)
	if err != nil {
		return nil, err
	}
	rule.MatchCount = counts[rule.RuleID]
	return rule, nil
}

func (s *cogsRuleService) ListRules(ctx context.Context, activeOnly bool) ([]domain.COGSRule, error) {
	rules, err := s.ruleRepo.ListRules(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list COGS rules")
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	counts, err := s.matchCounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rules {
		rules[i].MatchCount = counts[rules[i].RuleID]
	}
	if rules == nil {
		rules = []domain.COGSRule{}
	}
	return rules, nil
}

func (s *cogsRuleService) matchCounts(ctx context.Context) (map[int64]int, error) {
	usage, err := s.saleRepo.RuleUsage(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rule usage")
		return nil, fmt.Errorf("failed to load rule usage: %w", err)
	}
	counts := make(map[int64]int, len(usage))
	for _, u := range usage {
		counts[u.RuleID] = u.Matches
	}
	return counts, nil
}

func (s *cogsRuleService) CreateRule(ctx context.Context, req dto.CreateCOGSRuleRequest) (*domain.COGSRule, error) {
	now := time.Now().UTC()
	rule := domain.COGSRule{
		Name:      strings.TrimSpace(req.Name),
		Keywords:  cleanKeywords(req.Keywords),
		UnitCost:  req.UnitCost,
		MatchMode: req.MatchMode,
		Priority:  req.Priority,
		IsActive:  true,
		Category:  trimmedOrNil(req.Category),
		Notes:     trimmedOrNil(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if rule.MatchMode == "" {
		rule.MatchMode = domain.MatchContains
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	id, err := s.ruleRepo.SaveRule(ctx, rule)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save COGS rule", slog.String("name", rule.Name))
		}
		return nil, err
	}
	rule.RuleID = id

	s.LogInfo(ctx, "COGS rule created", slog.Int64("rule_id", id), slog.String("name", rule.Name))
	return &rule, nil
}

func (s *cogsRuleService) UpdateRule(ctx context.Context, ruleID int64, req dto.UpdateCOGSRuleRequest) (*domain.COGSRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		rule.Name = strings.TrimSpace(*req.Name)
	}
	if req.Keywords != nil {
		rule.Keywords = cleanKeywords(req.Keywords)
	}
	if req.UnitCost != nil {
		rule.UnitCost = *req.UnitCost
	}
	if req.MatchMode != nil {
		rule.MatchMode = *req.MatchMode
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.Category != nil {
		rule.Category = trimmedOrNil(req.Category)
	}
	if req.Notes != nil {
		rule.Notes = trimmedOrNil(req.Notes)
	}
	if err := validateRule(*rule); err != nil {
		return nil, err
	}
	rule.UpdatedAt = time.Now().UTC()

	if err := s.ruleRepo.UpdateRule(ctx, *rule); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update COGS rule", slog.Int64("rule_id", ruleID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "COGS rule updated", slog.Int64("rule_id", ruleID))
	return rule, nil
}

func (s *cogsRuleService) DeleteRule(ctx context.Context, ruleID int64) error {
	if err := s.ruleRepo.DeleteRule(ctx, ruleID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete COGS rule", slog.Int64("rule_id", ruleID))
		}
		return err
	}
	s.LogInfo(ctx, "COGS rule deleted", slog.Int64("rule_id", ruleID))
	return nil
}

func (s *cogsRuleService) ToggleRule(ctx context.Context, ruleID int64) (*domain.COGSRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	rule.IsActive = !rule.IsActive
	rule.UpdatedAt = time.Now().UTC()
	if err := s.ruleRepo.UpdateRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to toggle COGS rule", slog.Int64("rule_id", ruleID))
		return nil, err
	}
	s.LogInfo(ctx, "COGS rule toggled", slog.Int64("rule_id", ruleID), slog.Bool("is_active", rule.IsActive))
	return rule, nil
}

func (s *cogsRuleService) TestRule(ctx context.Context, req dto.TestCOGSRuleRequest) (*domain.RuleTestResult, error) {
	candidate := domain.COGSRule{
		Name:      "dry run",
		Keywords:  cleanKeywords(req.Keywords),
		MatchMode: req.MatchMode,
		IsActive:  true,
	}
	if candidate.MatchMode == "" {
		candidate.MatchMode = domain.MatchContains
	}
	if !candidate.MatchMode.IsValid() {
		return nil, fmt.Errorf("unknown match mode %q: %w", candidate.MatchMode, apperrors.ErrValidation)
	}
	if len(textnorm.NormalizeAll(candidate.Keywords)) == 0 {
		return nil, fmt.Errorf("at least one keyword must contain a letter or digit: %w", apperrors.ErrValidation)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultTestLimit
	}
	limit = min(limit, maxRuleTestLimit)

	names, err := s.saleRepo.ListDistinctItemNames(ctx, ruleTestScanLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to load item names for rule test")
		return nil, fmt.Errorf("failed to load item names: %w", err)
	}

	result := &domain.RuleTestResult{ProductsScanned: len(names), Matches: []domain.RuleTestMatch{}}
	for _, name := range names {
		kw, ok := cogsmatch.MatchRule(candidate, textnorm.Normalize(name))
		if !ok {
			continue
		}
		result.TotalMatches++
		if len(result.Matches) < limit {
			result.Matches = append(result.Matches, domain.RuleTestMatch{ItemName: name, MatchedKeyword: kw})
		}
	}
	return result, nil
}

func validateRule(rule domain.COGSRule) error {
	if rule.Name == "" {
		return fmt.Errorf("rule name is required: %w", apperrors.ErrValidation)
	}
	if len(textnorm.NormalizeAll(rule.Keywords)) == 0 {
		return fmt.Errorf("rule %q needs at least one keyword containing a letter or digit: %w", rule.Name, apperrors.ErrValidation)
	}
	if rule.UnitCost.IsNegative() {
		return fmt.Errorf("unit cost must not be negative: %w", apperrors.ErrValidation)
	}
	if !accounting.IsWholeCents(rule.UnitCost) {
		return fmt.Errorf("unit cost %s has more than %d decimal places: %w", rule.UnitCost, accounting.MoneyPlaces, apperrors.ErrValidation)
	}
	if !rule.MatchMode.IsValid() {
		return fmt.Errorf("unknown match mode %q: %w", rule.MatchMode, apperrors.ErrValidation)
	}
	return nil
}

// cleanKeywords trims keywords and drops blanks, keeping order.
func cleanKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
