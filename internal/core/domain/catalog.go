package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuleKind selects how a catalog entry's keywords are evaluated.
type RuleKind string

const (
	RuleIncludeAny        RuleKind = "include_any"
	RuleIncludeAll        RuleKind = "include_all"
	RuleIncludeAndExclude RuleKind = "include_and_exclude"
	RuleCatchAll          RuleKind = "catch_all"
)

// IsValid reports whether k is a known rule kind.
func (k RuleKind) IsValid() bool {
	switch k {
	case RuleIncludeAny, RuleIncludeAll, RuleIncludeAndExclude, RuleCatchAll:
		return true
	}
	return false
}

// Default priorities used when an entry is created without one.
const (
	DefaultCatalogPriority    = 100
	IncludeAllCatalogPriority = 200
	CatchAllCatalogPriority   = 0
)

// CatalogEntry is a curated product that raw item names are grouped under.
type CatalogEntry struct {
	EntryID         int64    `json:"entryID"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	ImageURL        string   `json:"imageURL"`
	ImageFilename   string   `json:"imageFilename"`
	RuleKind        RuleKind `json:"ruleKind"`
	IncludeKeywords []string `json:"includeKeywords"`
	ExcludeKeywords []string `json:"excludeKeywords"`
	Priority        int      `json:"priority"`
	// Keywords is the flat list entries carried before rule kinds existed.
	Keywords []string `json:"keywords"`
	AuditFields
}

// EffectiveIncludeKeywords returns the include list, falling back to the flat keywords.
func (e CatalogEntry) EffectiveIncludeKeywords() []string {
	if len(e.IncludeKeywords) > 0 {
		return e.IncludeKeywords
	}
	return e.Keywords
}

// CatalogRollup is the sales count and revenue attributed to one entry.
type CatalogRollup struct {
	Entry        CatalogEntry    `json:"entry"`
	SalesCount   int             `json:"salesCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	ManualCount  int             `json:"manualCount"`
}

// CatalogRollupReport is the full per-entry view plus whatever resolved nowhere.
type CatalogRollupReport struct {
	Entries           []CatalogRollup `json:"entries"`
	UnresolvedCount   int             `json:"unresolvedCount"`
	UnresolvedRevenue decimal.Decimal `json:"unresolvedRevenue"`
}

// MarkMappedResult summarises a bulk confirmation for one catalog entry.
type MarkMappedResult struct {
	EntryID          int64 `json:"entryID"`
	NewlyMapped      int   `json:"newlyMapped"`
	AlreadyMapped    int   `json:"alreadyMapped"`
	SkippedConflicts int   `json:"skippedConflicts"`
	Errored          int   `json:"errored"`
}

// SaleMapping is a persisted sale to catalog assignment.
type SaleMapping struct {
	SaleID         int64
	CatalogItemID  *int64
	IsMapped       bool
	MatchedKeyword *string
	MappedAt       *time.Time
}
