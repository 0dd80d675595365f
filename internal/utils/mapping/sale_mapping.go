package mapping

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	var owner *string
	if d.Owner != nil {
		o := string(*d.Owner)
		owner = &o
	}
	return models.Sale{
		SaleID:            d.SaleID,
		ShowID:            nullInt64(d.ShowID),
		SaleType:          string(d.SaleType),
		TransactionDate:   d.TransactionDate,
		ItemName:          d.ItemName,
		Quantity:          d.Quantity,
		BuyerUsername:     d.BuyerUsername,
		GrossSalePrice:    d.GrossSalePrice,
		Discount:          d.Discount,
		Commission:        d.Commission,
		PlatformFee:       d.PlatformFee,
		PaymentFee:        d.PaymentFee,
		Shipping:          d.Shipping,
		NetEarnings:       d.NetEarnings,
		Notes:             nullString(d.Notes),
		Owner:             nullString(owner),
		COGS:              nullDecimal(d.COGS),
		NetProfit:         nullDecimal(d.NetProfit),
		ROIPercent:        nullDecimal(d.ROIPercent),
		MatchedCOGSRuleID: nullInt64(d.MatchedCOGSRuleID),
		CatalogItemID:     nullInt64(d.CatalogItemID),
		IsMapped:          d.IsMapped,
		MatchedKeyword:    nullString(d.MatchedKeyword),
		MappedAt:          nullTime(d.MappedAt),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.LastUpdatedAt,
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	var owner *domain.Owner
	if m.Owner.Valid {
		o := domain.Owner(m.Owner.String)
		owner = &o
	}
	return domain.Sale{
		SaleID:            m.SaleID,
		ShowID:            int64Ptr(m.ShowID),
		SaleType:          domain.SaleType(m.SaleType),
		TransactionDate:   m.TransactionDate,
		ItemName:          m.ItemName,
		Quantity:          m.Quantity,
		BuyerUsername:     m.BuyerUsername,
		GrossSalePrice:    m.GrossSalePrice,
		Discount:          m.Discount,
		Commission:        m.Commission,
		PlatformFee:       m.PlatformFee,
		PaymentFee:        m.PaymentFee,
		Shipping:          m.Shipping,
		NetEarnings:       m.NetEarnings,
		Notes:             stringPtr(m.Notes),
		Owner:             owner,
		COGS:              decimalPtr(m.COGS),
		NetProfit:         decimalPtr(m.NetProfit),
		ROIPercent:        decimalPtr(m.ROIPercent),
		MatchedCOGSRuleID: int64Ptr(m.MatchedCOGSRuleID),
		CatalogItemID:     int64Ptr(m.CatalogItemID),
		IsMapped:          m.IsMapped,
		MatchedKeyword:    stringPtr(m.MatchedKeyword),
		MappedAt:          timePtr(m.MappedAt),
		CreatedAt:         m.CreatedAt,
		LastUpdatedAt:     m.UpdatedAt,
	}
}

// ToDomainSaleSlice converts a slice of model Sales to domain Sales
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
