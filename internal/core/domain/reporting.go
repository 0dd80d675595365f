package domain

import "github.com/shopspring/decimal"

// COGSCoverage counts sales with and without a positive cost.
type COGSCoverage struct {
	TotalSales      int             `json:"totalSales"`
	WithCOGS        int             `json:"withCogs"`
	WithoutCOGS     int             `json:"withoutCogs"`
	CoveragePercent decimal.Decimal `json:"coveragePercent"`
}

// RuleUsage is the raw per-rule match aggregate read from storage.
type RuleUsage struct {
	RuleID    int64
	Matches   int
	TotalCOGS decimal.Decimal
}

// RulePerformance is how often a rule classified sales.
type RulePerformance struct {
	RuleID            int64           `json:"ruleID"`
	RuleName          string          `json:"ruleName"`
	IsActive          bool            `json:"isActive"`
	Matches           int             `json:"matches"`
	TotalCOGSAssigned decimal.Decimal `json:"totalCogsAssigned"`
}

// UnmappedSingle is a sale that only the generic singles bucket would claim.
type UnmappedSingle struct {
	Sale           Sale   `json:"sale"`
	GenericEntry   string `json:"genericEntry"`
	GenericEntryID int64  `json:"genericEntryID"`
}

// ProductNeedingCOGS groups uncosted sales under one normalized item name.
type ProductNeedingCOGS struct {
	NormalizedName string          `json:"normalizedName"`
	SampleName     string          `json:"sampleName"`
	SalesCount     int             `json:"salesCount"`
	TotalQuantity  int             `json:"totalQuantity"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}

// BulkCOGSResult summarises a bulk COGS application. Skipped counts malformed
// rows, Unchanged counts matched rows that already carried the same values.
type BulkCOGSResult struct {
	RuleID        *int64   `json:"ruleID,omitempty"`
	RuleCreated   bool     `json:"ruleCreated"`
	Scanned       int      `json:"scanned"`
	Matched       int      `json:"matched"`
	Updated       int      `json:"updated"`
	Unchanged     int      `json:"unchanged"`
	Skipped       int      `json:"skipped"`
	Errored       int      `json:"errored"`
	AffectedShows []int64  `json:"affectedShows"`
	Errors        []string `json:"errors"`
}

// RuleTestMatch is one product name a candidate rule would classify.
type RuleTestMatch struct {
	ItemName       string `json:"itemName"`
	MatchedKeyword string `json:"matchedKeyword"`
}

// RuleTestResult is the outcome of a dry-run rule test.
type RuleTestResult struct {
	ProductsScanned int             `json:"productsScanned"`
	TotalMatches    int             `json:"totalMatches"`
	Matches         []RuleTestMatch `json:"matches"`
}
