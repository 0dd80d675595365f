package repositories

import (
	"context"

	"github.com/kantocollect/salesops/internal/core/domain"
)

// CatalogReader defines read operations for catalog entries
type CatalogReader interface {
	FindEntryByID(ctx context.Context, entryID int64) (*domain.CatalogEntry, error)
	FindEntryByName(ctx context.Context, name string) (*domain.CatalogEntry, error)
	// FindEntryByImageURLPrefix finds an entry whose image url starts with prefix.
	FindEntryByImageURLPrefix(ctx context.Context, prefix string) (*domain.CatalogEntry, error)
	ListEntries(ctx context.Context) ([]domain.CatalogEntry, error)
}

// CatalogWriter defines write operations for catalog entries
type CatalogWriter interface {
	SaveEntry(ctx context.Context, entry domain.CatalogEntry) (int64, error)
	UpdateEntry(ctx context.Context, entry domain.CatalogEntry) error
	// DeleteEntry removes the entry and clears the mapping state of sales
	// mapped to it, atomically. Returns the number of sales unmapped.
	DeleteEntry(ctx context.Context, entryID int64) (int64, error)
}

// CatalogRepositoryFacade combines all catalog repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}
