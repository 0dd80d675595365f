package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Show is the shows row.
type Show struct {
	ShowID           int64
	ShowDate         time.Time
	ShowName         sql.NullString
	Platform         string
	Notes            sql.NullString
	TotalGrossSales  decimal.Decimal
	TotalDiscounts   decimal.Decimal
	TotalCommission  decimal.Decimal
	TotalPlatformFee decimal.Decimal
	TotalPaymentFee  decimal.Decimal
	TotalShipping    decimal.Decimal
	TotalNetEarnings decimal.Decimal
	TotalCOGS        decimal.Decimal
	TotalNetProfit   decimal.Decimal
	ItemCount        int
	UniqueBuyers     int
	AvgSalePrice     decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
