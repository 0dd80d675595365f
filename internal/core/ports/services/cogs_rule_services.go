package services

import (
	"context"

	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/dto"
)

// COGSRuleReaderSvc defines read operations for COGS rules
type COGSRuleReaderSvc interface {
	// GetRule retrieves one rule with its current match count.
	GetRule(ctx context.Context, ruleID int64) (*domain.COGSRule, error)

	// ListRules returns rules in evaluation order with their match counts.
	ListRules(ctx context.Context, activeOnly bool) ([]domain.COGSRule, error)
}

// COGSRuleWriterSvc defines write operations for COGS rules
type COGSRuleWriterSvc interface {
	CreateRule(ctx context.Context, req dto.CreateCOGSRuleRequest) (*domain.COGSRule, error)
	UpdateRule(ctx context.Context, ruleID int64, req dto.UpdateCOGSRuleRequest) (*domain.COGSRule, error)
	DeleteRule(ctx context.Context, ruleID int64) error

	// ToggleRule flips the active flag of a rule.
	ToggleRule(ctx context.Context, ruleID int64) (*domain.COGSRule, error)
}

// COGSRuleTesterSvc runs candidate rules without persisting anything.
type COGSRuleTesterSvc interface {
	TestRule(ctx context.Context, req dto.TestCOGSRuleRequest) (*domain.RuleTestResult, error)
}

// COGSRuleSvcFacade combines all COGS rule service interfaces
type COGSRuleSvcFacade interface {
	COGSRuleReaderSvc
	COGSRuleWriterSvc
	COGSRuleTesterSvc
}
