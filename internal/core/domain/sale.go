package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleType distinguishes livestream sales from marketplace orders.
type SaleType string

const (
	SaleTypeStream      SaleType = "stream"
	SaleTypeMarketplace SaleType = "marketplace"
)

// Owner is the partner a sale is attributed to.
type Owner string

const (
	OwnerCihan Owner = "Cihan"
	OwnerNima  Owner = "Nima"
	OwnerAskar Owner = "Askar"
	OwnerKanto Owner = "Kanto"
)

// ValidOwners lists every accepted owner value.
var ValidOwners = []Owner{OwnerCihan, OwnerNima, OwnerAskar, OwnerKanto}

// IsValid reports whether o is one of the enumerated owners.
func (o Owner) IsValid() bool {
	for _, v := range ValidOwners {
		if o == v {
			return true
		}
	}
	return false
}

// ManualKeyword is recorded as the matched keyword of an operator-assigned mapping.
const ManualKeyword = "manual"

// Sale is one sold unit-lot imported from a show or marketplace export.
type Sale struct {
	SaleID          int64           `json:"saleID"`
	ShowID          *int64          `json:"showID,omitempty"`
	SaleType        SaleType        `json:"saleType"`
	TransactionDate time.Time       `json:"transactionDate"`
	ItemName        string          `json:"itemName"`
	Quantity        int             `json:"quantity"`
	BuyerUsername   string          `json:"buyerUsername"`
	GrossSalePrice  decimal.Decimal `json:"grossSalePrice"`
	Discount        decimal.Decimal `json:"discount"`
	Commission      decimal.Decimal `json:"commission"`
	PlatformFee     decimal.Decimal `json:"platformFee"`
	PaymentFee      decimal.Decimal `json:"paymentFee"`
	Shipping        decimal.Decimal `json:"shipping"`
	NetEarnings     decimal.Decimal `json:"netEarnings"`
	Notes           *string         `json:"notes,omitempty"`
	Owner           *Owner          `json:"owner,omitempty"`

	COGS              *decimal.Decimal `json:"cogs,omitempty"`
	NetProfit         *decimal.Decimal `json:"netProfit,omitempty"`
	ROIPercent        *decimal.Decimal `json:"roiPercent,omitempty"`
	MatchedCOGSRuleID *int64           `json:"matchedCogsRuleID,omitempty"`

	CatalogItemID  *int64     `json:"catalogItemID,omitempty"`
	IsMapped       bool       `json:"isMapped"`
	MatchedKeyword *string    `json:"matchedKeyword,omitempty"`
	MappedAt       *time.Time `json:"mappedAt,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// IsTestBucket reports whether the sale belongs to the bucket of rows that
// have no show and are not marketplace orders. Bulk COGS propagation skips them.
func (s Sale) IsTestBucket() bool {
	return s.ShowID == nil && s.SaleType != SaleTypeMarketplace
}

// HasPositiveCOGS reports whether a cost greater than zero has been assigned.
func (s Sale) HasPositiveCOGS() bool {
	return s.COGS != nil && s.COGS.IsPositive()
}

// SaleFilter narrows sale listings.
type SaleFilter struct {
	ShowID      *int64
	SaleType    *SaleType
	Owner       *Owner
	MissingCOGS bool
	Unmapped    bool
	Search      string
}
