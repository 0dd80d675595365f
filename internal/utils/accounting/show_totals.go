package accounting

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShowTotals re-sums every aggregate of a show from its sales. Missing cost
// and profit values count as zero. An empty slice yields all-zero totals.
func ShowTotals(sales []domain.Sale) domain.ShowTotals {
	t := domain.ShowTotals{
		TotalGrossSales:  decimal.Zero,
		TotalDiscounts:   decimal.Zero,
		TotalCommission:  decimal.Zero,
		TotalPlatformFee: decimal.Zero,
		TotalPaymentFee:  decimal.Zero,
		TotalShipping:    decimal.Zero,
		TotalNetEarnings: decimal.Zero,
		TotalCOGS:        decimal.Zero,
		TotalNetProfit:   decimal.Zero,
		AvgSalePrice:     decimal.Zero,
	}
	buyers := make(map[string]struct{})
	for _, s := range sales {
		t.TotalGrossSales = t.TotalGrossSales.Add(s.GrossSalePrice)
		t.TotalDiscounts = t.TotalDiscounts.Add(s.Discount)
		t.TotalCommission = t.TotalCommission.Add(s.Commission)
		t.TotalPlatformFee = t.TotalPlatformFee.Add(s.PlatformFee)
		t.TotalPaymentFee = t.TotalPaymentFee.Add(s.PaymentFee)
		t.TotalShipping = t.TotalShipping.Add(s.Shipping)
		t.TotalNetEarnings = t.TotalNetEarnings.Add(s.NetEarnings)
		if s.COGS != nil {
			t.TotalCOGS = t.TotalCOGS.Add(*s.COGS)
		}
		if s.NetProfit != nil {
			t.TotalNetProfit = t.TotalNetProfit.Add(*s.NetProfit)
		}
		if s.BuyerUsername != "" {
			buyers[s.BuyerUsername] = struct{}{}
		}
	}
	t.ItemCount = len(sales)
	t.UniqueBuyers = len(buyers)
	if len(sales) > 0 {
		t.AvgSalePrice = t.TotalGrossSales.DivRound(decimal.NewFromInt(int64(len(sales))), 2)
	}
	return t
}
