package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/utils/accounting"
)

type showService struct {
	BaseService
	showRepo portsrepo.ShowRepositoryFacade
	saleRepo portsrepo.SaleReader
}

// NewShowService creates the show aggregate service.
func NewShowService(showRepo portsrepo.ShowRepositoryFacade, saleRepo portsrepo.SaleReader) portssvc.ShowSvc {
	return &showService{showRepo: showRepo, saleRepo: saleRepo}
}

var _ portssvc.ShowSvc = (*showService)(nil)

func (s *showService) GetShow(ctx context.Context, showID int64) (*domain.Show, error) {
	show, err := s.showRepo.FindShowByID(ctx, showID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find show", slog.Int64("show_id", showID))
		}
		return nil, err
	}
	return show, nil
}

func (s *showService) RecomputeShow(ctx context.Context, showID int64) (*domain.Show, error) {
	show, err := s.GetShow(ctx, showID)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListSalesByShow(ctx, showID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load show sales", slog.Int64("show_id", showID))
		return nil, fmt.Errorf("failed to load sales of show %d: %w", showID, err)
	}

	totals := accounting.ShowTotals(sales)
	if err := s.showRepo.UpdateShowTotals(ctx, showID, totals); err != nil {
		s.LogError(ctx, err, "Failed to store show totals", slog.Int64("show_id", showID))
		return nil, err
	}
	show.ShowTotals = totals

	s.LogDebug(ctx, "Show totals recomputed",
		slog.Int64("show_id", showID),
		slog.Int("item_count", totals.ItemCount),
		slog.String("total_cogs", totals.TotalCOGS.StringFixed(2)))
	return show, nil
}

func (s *showService) RecomputeShows(ctx context.Context, showIDs []int64) error {
	var errs []error
	for _, id := range uniqueIDs(showIDs) {
		if _, err := s.RecomputeShow(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("show %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// uniqueIDs returns the distinct ids in ascending order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
