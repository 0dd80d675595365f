package accounting

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// ROIPlaces is the number of decimal places ROI percentages are rounded to.
	ROIPlaces = 2
	// MoneyPlaces matches the scale of the NUMERIC(12,2) money columns.
	MoneyPlaces = 2
)

var hundred = decimal.NewFromInt(100)

// IsWholeCents reports whether amount carries no more than MoneyPlaces decimals.
func IsWholeCents(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MoneyPlaces))
}

// LineCOGS returns unitCost multiplied by quantity.
func LineCOGS(unitCost decimal.Decimal, quantity int) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(int64(quantity)))
}

// ProfitAndROI computes net profit and ROI for a sale with the given total cost.
// ROI is nil when cogs is not strictly positive.
func ProfitAndROI(netEarnings, cogs decimal.Decimal) (decimal.Decimal, *decimal.Decimal) {
	profit := netEarnings.Sub(cogs)
	if !cogs.IsPositive() {
		return profit, nil
	}
	roi := profit.Mul(hundred).DivRound(cogs, ROIPlaces)
	return profit, &roi
}

// ApplyCOGS assigns a rule-derived unit cost to the sale.
func ApplyCOGS(sale *domain.Sale, unitCost decimal.Decimal, ruleID int64) {
	setCOGS(sale, LineCOGS(unitCost, sale.Quantity))
	id := ruleID
	sale.MatchedCOGSRuleID = &id
}

// SetManualCOGS assigns an operator-provided line cost and detaches the sale
// from any rule.
func SetManualCOGS(sale *domain.Sale, total decimal.Decimal) {
	setCOGS(sale, total)
	sale.MatchedCOGSRuleID = nil
}

// ClearCOGS nulls every COGS-derived field.
func ClearCOGS(sale *domain.Sale) {
	sale.COGS = nil
	sale.NetProfit = nil
	sale.ROIPercent = nil
	sale.MatchedCOGSRuleID = nil
}

// setCOGS rounds cogs to cents before deriving profit so the stored row keeps
// net_profit = net_earnings - cogs.
func setCOGS(sale *domain.Sale, cogs decimal.Decimal) {
	cogs = cogs.Round(MoneyPlaces)
	profit, roi := ProfitAndROI(sale.NetEarnings, cogs)
	sale.COGS = &cogs
	sale.NetProfit = &profit
	sale.ROIPercent = roi
}

// SameCOGSState reports whether two sales carry identical COGS-derived fields.
func SameCOGSState(a, b domain.Sale) bool {
	return equalDec(a.COGS, b.COGS) &&
		equalDec(a.NetProfit, b.NetProfit) &&
		equalDec(a.ROIPercent, b.ROIPercent) &&
		equalID(a.MatchedCOGSRuleID, b.MatchedCOGSRuleID)
}

func equalDec(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func equalID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
