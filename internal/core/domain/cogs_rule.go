package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchMode is how a COGS rule keyword is compared to an item name.
type MatchMode string

const (
	MatchContains   MatchMode = "contains"
	MatchStartsWith MatchMode = "starts_with"
	MatchEndsWith   MatchMode = "ends_with"
	MatchExact      MatchMode = "exact"
)

// IsValid reports whether m is a known match mode.
func (m MatchMode) IsValid() bool {
	switch m {
	case MatchContains, MatchStartsWith, MatchEndsWith, MatchExact:
		return true
	}
	return false
}

// AutoRuleSuffix is appended to the product name of rules created by the
// save-product-COGS action.
const AutoRuleSuffix = " - Auto-generated"

// AutoRuleNotes is stored on rules created by the save-product-COGS action.
const AutoRuleNotes = "Auto-generated from product catalog"

// COGSRule assigns a per-unit cost to sales whose item name matches one of its keywords.
type COGSRule struct {
	RuleID     int64           `json:"ruleID"`
	Name       string          `json:"name"`
	Keywords   []string        `json:"keywords"`
	UnitCost   decimal.Decimal `json:"unitCost"`
	MatchMode  MatchMode       `json:"matchMode"`
	Priority   int             `json:"priority"`
	IsActive   bool            `json:"isActive"`
	Category   *string         `json:"category,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	MatchCount int             `json:"matchCount,omitempty"`
}
