package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// COGSRule is the cogs_rules row.
type COGSRule struct {
	RuleID    int64
	Name      string
	Keywords  []string
	UnitCost  decimal.Decimal
	MatchMode string
	Priority  int
	IsActive  bool
	Category  sql.NullString
	Notes     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}
