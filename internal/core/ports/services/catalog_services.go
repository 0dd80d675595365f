package services

import (
	"context"

	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/dto"
)

// CatalogReaderSvc defines read operations for the product catalog
type CatalogReaderSvc interface {
	GetEntry(ctx context.Context, entryID int64) (*domain.CatalogEntry, error)
	ListEntries(ctx context.Context) (*dto.ListCatalogResponse, error)
}

// CatalogWriterSvc defines write operations for the product catalog
type CatalogWriterSvc interface {
	CreateEntry(ctx context.Context, req dto.CreateCatalogEntryRequest, userID string) (*domain.CatalogEntry, error)
	CreateEntryFromImage(ctx context.Context, req dto.CreateCatalogFromImageRequest, userID string) (*domain.CatalogEntry, error)
	UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateCatalogEntryRequest, userID string) (*domain.CatalogEntry, error)

	// DeleteEntry removes an entry and returns how many sales were unmapped.
	DeleteEntry(ctx context.Context, entryID int64) (int64, error)
}

// CatalogMappingSvc records operator mapping decisions
type CatalogMappingSvc interface {
	RemapSale(ctx context.Context, saleID, entryID int64) (*domain.Sale, error)
	UnmapSale(ctx context.Context, saleID int64) (*domain.Sale, error)

	// MarkMapped confirms every sale currently resolving to the entry.
	MarkMapped(ctx context.Context, entryID int64) (*domain.MarkMappedResult, error)
}

// CatalogSvcFacade combines all catalog service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
	CatalogMappingSvc
}
