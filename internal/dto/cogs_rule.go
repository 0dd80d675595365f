package dto

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCOGSRuleRequest defines the data needed to create a COGS rule.
type CreateCOGSRuleRequest struct {
	Name      string           `json:"name" binding:"required,max=200"`
	Keywords  []string         `json:"keywords" binding:"required,min=1,dive,max=200"`
	UnitCost  decimal.Decimal  `json:"unitCost"`
	MatchMode domain.MatchMode `json:"matchMode" binding:"omitempty,matchmode"`
	Priority  int              `json:"priority"`
	IsActive  *bool            `json:"isActive"` // defaults to true
	Category  *string          `json:"category"`
	Notes     *string          `json:"notes"`
}

// UpdateCOGSRuleRequest defines the fields that can change on a rule.
// Nil fields are left untouched.
type UpdateCOGSRuleRequest struct {
	Name      *string           `json:"name" binding:"omitempty,max=200"`
	Keywords  []string          `json:"keywords" binding:"omitempty,min=1,dive,max=200"`
	UnitCost  *decimal.Decimal  `json:"unitCost"`
	MatchMode *domain.MatchMode `json:"matchMode" binding:"omitempty,matchmode"`
	Priority  *int              `json:"priority"`
	IsActive  *bool             `json:"isActive"`
	Category  *string           `json:"category"`
	Notes     *string           `json:"notes"`
}

// TestCOGSRuleRequest describes a candidate rule for a dry run.
type TestCOGSRuleRequest struct {
	Keywords  []string         `json:"keywords" binding:"required,min=1"`
	MatchMode domain.MatchMode `json:"matchMode" binding:"omitempty,matchmode"`
	Limit     int              `json:"limit" binding:"omitempty,min=1"`
}

// ListCOGSRulesParams defines query parameters for listing rules.
type ListCOGSRulesParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

// ListCOGSRulesResponse wraps a rule listing.
type ListCOGSRulesResponse struct {
	Rules []domain.COGSRule `json:"rules"`
}
