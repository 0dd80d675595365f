package mapping

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/models"
)

// ToDomainShow converts a model Show to a domain Show
func ToDomainShow(m models.Show) domain.Show {
	return domain.Show{
		ShowID:   m.ShowID,
		ShowDate: m.ShowDate,
		ShowName: stringPtr(m.ShowName),
		Platform: m.Platform,
		Notes:    stringPtr(m.Notes),
		ShowTotals: domain.ShowTotals{
			TotalGrossSales:  m.TotalGrossSales,
			TotalDiscounts:   m.TotalDiscounts,
			TotalCommission:  m.TotalCommission,
			TotalPlatformFee: m.TotalPlatformFee,
			TotalPaymentFee:  m.TotalPaymentFee,
			TotalShipping:    m.TotalShipping,
			TotalNetEarnings: m.TotalNetEarnings,
			TotalCOGS:        m.TotalCOGS,
			TotalNetProfit:   m.TotalNetProfit,
			ItemCount:        m.ItemCount,
			UniqueBuyers:     m.UniqueBuyers,
			AvgSalePrice:     m.AvgSalePrice,
		},
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.UpdatedAt,
	}
}
