package dto

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSaleRequest is the manual override of a sale. Setting COGS directly
// detaches the sale from any rule. An empty owner or notes string clears it.
type UpdateSaleRequest struct {
	COGS      *decimal.Decimal `json:"cogs"`
	ClearCOGS bool             `json:"clearCogs"`
	Notes     *string          `json:"notes" binding:"omitempty,max=2000"`
	Owner     *string          `json:"owner" binding:"omitempty,owner"`
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	ShowID      *int64 `form:"showID" binding:"omitempty,gt=0"`
	SaleType    string `form:"saleType" binding:"omitempty,oneof=stream marketplace"`
	Owner       string `form:"owner" binding:"omitempty,owner"`
	MissingCOGS bool   `form:"missingCogs"`
	Unmapped    bool   `form:"unmapped"`
	Search      string `form:"search"`
	Limit       int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken   string `form:"nextToken"`
}

// ListSalesResponse is one page of sales.
type ListSalesResponse struct {
	Sales     []domain.Sale `json:"sales"`
	NextToken *string       `json:"nextToken,omitempty"`
}

// SaveProductCOGSRequest sets a unit cost for a product and propagates it to
// every sale whose name contains one of the keywords.
type SaveProductCOGSRequest struct {
	Product  string          `json:"product" binding:"required,max=200"`
	UnitCost decimal.Decimal `json:"unitCost"`
	Keywords []string        `json:"keywords" binding:"required,min=1"`
}

// ApplyRulesRequest controls a bulk re-application of all active rules.
type ApplyRulesRequest struct {
	OnlyMissing bool `json:"onlyMissing"`
}

// RemapSaleRequest assigns a sale to a catalog entry.
type RemapSaleRequest struct {
	CatalogItemID int64 `json:"catalogItemID" binding:"required,gt=0"`
}
