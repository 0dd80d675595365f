package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the sales_transactions row.
type Sale struct {
	SaleID            int64
	ShowID            sql.NullInt64
	SaleType          string
	TransactionDate   time.Time
	ItemName          string
	Quantity          int
	BuyerUsername     string
	GrossSalePrice    decimal.Decimal
	Discount          decimal.Decimal
	Commission        decimal.Decimal
	PlatformFee       decimal.Decimal
	PaymentFee        decimal.Decimal
	Shipping          decimal.Decimal
	NetEarnings       decimal.Decimal
	Notes             sql.NullString
	Owner             sql.NullString
	COGS              decimal.NullDecimal
	NetProfit         decimal.NullDecimal
	ROIPercent        decimal.NullDecimal
	MatchedCOGSRuleID sql.NullInt64
	CatalogItemID     sql.NullInt64
	IsMapped          bool
	MatchedKeyword    sql.NullString
	MappedAt          sql.NullTime
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
