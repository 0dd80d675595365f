package services

import (
	"context"

	"github.com/kantocollect/salesops/internal/core/domain"
)

// ShowSvc reads shows and keeps their aggregates in step with their sales.
type ShowSvc interface {
	GetShow(ctx context.Context, showID int64) (*domain.Show, error)

	// RecomputeShow re-sums the show's sales and overwrites its totals.
	RecomputeShow(ctx context.Context, showID int64) (*domain.Show, error)

	// RecomputeShows runs RecomputeShow once per distinct id. Failures do not
	// stop the remaining shows and are returned joined.
	RecomputeShows(ctx context.Context, showIDs []int64) error
}
