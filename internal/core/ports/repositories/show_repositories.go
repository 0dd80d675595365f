package repositories

import (
	"context"

	"github.com/kantocollect/salesops/internal/core/domain"
)

// ShowReader defines read operations for shows
type ShowReader interface {
	FindShowByID(ctx context.Context, showID int64) (*domain.Show, error)
}

// ShowWriter defines write operations for shows
type ShowWriter interface {
	// UpdateShowTotals overwrites the denormalized aggregates of a show.
	UpdateShowTotals(ctx context.Context, showID int64, totals domain.ShowTotals) error
}

// ShowRepositoryFacade combines all show repository interfaces
type ShowRepositoryFacade interface {
	ShowReader
	ShowWriter
}
