package dto

import "github.com/kantocollect/salesops/internal/core/domain"

// CreateCatalogEntryRequest defines the data needed to create a catalog entry.
type CreateCatalogEntryRequest struct {
	Name            string          `json:"name" binding:"required,max=300"`
	Category        string          `json:"category" binding:"max=100"`
	ImageURL        string          `json:"imageURL" binding:"omitempty,url"`
	RuleKind        domain.RuleKind `json:"ruleKind" binding:"omitempty,rulekind"`
	IncludeKeywords []string        `json:"includeKeywords"`
	ExcludeKeywords []string        `json:"excludeKeywords"`
	Keywords        []string        `json:"keywords"`
	// Priority defaults by rule kind when omitted.
	Priority *int `json:"priority"`
}

// UpdateCatalogEntryRequest defines the fields that can change on an entry.
type UpdateCatalogEntryRequest struct {
	Name            *string          `json:"name" binding:"omitempty,max=300"`
	Category        *string          `json:"category" binding:"omitempty,max=100"`
	ImageURL        *string          `json:"imageURL"`
	RuleKind        *domain.RuleKind `json:"ruleKind" binding:"omitempty,rulekind"`
	IncludeKeywords []string         `json:"includeKeywords"`
	ExcludeKeywords []string         `json:"excludeKeywords"`
	Keywords        []string         `json:"keywords"`
	Priority        *int             `json:"priority"`
}

// CreateCatalogFromImageRequest creates an entry from a product image URL.
type CreateCatalogFromImageRequest struct {
	ImageURL string `json:"imageURL" binding:"required,url"`
}

// ListCatalogResponse wraps a catalog listing.
type ListCatalogResponse struct {
	Entries []domain.CatalogEntry `json:"entries"`
	// IgnoredCatchAll lists catch-all entries shadowed by a higher ranked one.
	IgnoredCatchAll []int64 `json:"ignoredCatchAll,omitempty"`
}

// DeleteCatalogEntryResponse reports how many sales lost their mapping.
type DeleteCatalogEntryResponse struct {
	EntryID       int64 `json:"entryID"`
	UnmappedSales int64 `json:"unmappedSales"`
}
