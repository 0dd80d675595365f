package dto

import "github.com/kantocollect/salesops/internal/core/domain"

// LimitParams is a bounded result size.
type LimitParams struct {
	Limit int `form:"limit,default=50" binding:"omitempty,min=1,max=1000"`
}

// RulePerformanceResponse wraps per-rule statistics.
type RulePerformanceResponse struct {
	Rules []domain.RulePerformance `json:"rules"`
}

// UnmappedSalesResponse is a sample of sales no entry claims.
type UnmappedSalesResponse struct {
	Total int           `json:"total"`
	Sales []domain.Sale `json:"sales"`
}

// UnmappedSinglesResponse lists singles only the generic bucket claims.
type UnmappedSinglesResponse struct {
	GenericEntry domain.CatalogEntry `json:"genericEntry"`
	Count        int                 `json:"count"`
	Sales        []domain.Sale       `json:"sales"`
}

// ToUnmappedSinglesResponse converts the domain view.
func ToUnmappedSinglesResponse(generic domain.CatalogEntry, singles []domain.UnmappedSingle) UnmappedSinglesResponse {
	sales := make([]domain.Sale, len(singles))
	for i, s := range singles {
		sales[i] = s.Sale
	}
	return UnmappedSinglesResponse{GenericEntry: generic, Count: len(sales), Sales: sales}
}

// ProductsNeedingCOGSResponse wraps the uncosted product groups.
type ProductsNeedingCOGSResponse struct {
	Products []domain.ProductNeedingCOGS `json:"products"`
}
