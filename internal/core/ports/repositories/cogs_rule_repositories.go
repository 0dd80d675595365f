package repositories

import (
	"context"

	"github.com/kantocollect/salesops/internal/core/domain"
)

// COGSRuleReader defines read operations for COGS rules
type COGSRuleReader interface {
	FindRuleByID(ctx context.Context, ruleID int64) (*domain.COGSRule, error)
	FindRuleByName(ctx context.Context, name string) (*domain.COGSRule, error)
	// ListRules returns rules ordered by priority descending then id ascending.
	ListRules(ctx context.Context, activeOnly bool) ([]domain.COGSRule, error)
}

// COGSRuleWriter defines write operations for COGS rules
type COGSRuleWriter interface {
	// SaveRule inserts a rule and returns its id.
	SaveRule(ctx context.Context, rule domain.COGSRule) (int64, error)
	UpdateRule(ctx context.Context, rule domain.COGSRule) error
	DeleteRule(ctx context.Context, ruleID int64) error
}

// COGSRuleRepositoryFacade combines all COGS rule repository interfaces
type COGSRuleRepositoryFacade interface {
	COGSRuleReader
	COGSRuleWriter
}
