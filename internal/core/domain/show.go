package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShowTotals are the denormalized aggregates stored on a show.
type ShowTotals struct {
	TotalGrossSales  decimal.Decimal `json:"totalGrossSales"`
	TotalDiscounts   decimal.Decimal `json:"totalDiscounts"`
	TotalCommission  decimal.Decimal `json:"totalCommission"`
	TotalPlatformFee decimal.Decimal `json:"totalPlatformFees"`
	TotalPaymentFee  decimal.Decimal `json:"totalPaymentFees"`
	TotalShipping    decimal.Decimal `json:"totalShipping"`
	TotalNetEarnings decimal.Decimal `json:"totalNetEarnings"`
	TotalCOGS        decimal.Decimal `json:"totalCogs"`
	TotalNetProfit   decimal.Decimal `json:"totalNetProfit"`
	ItemCount        int             `json:"itemCount"`
	UniqueBuyers     int             `json:"uniqueBuyers"`
	AvgSalePrice     decimal.Decimal `json:"avgSalePrice"`
}

// Show is a batch of stream sales imported together.
type Show struct {
	ShowID   int64     `json:"showID"`
	ShowDate time.Time `json:"showDate"`
	ShowName *string   `json:"showName,omitempty"`
	Platform string    `json:"platform"`
	Notes    *string   `json:"notes,omitempty"`
	ShowTotals
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
