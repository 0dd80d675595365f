package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	"github.com/kantocollect/salesops/internal/models"
	"github.com/kantocollect/salesops/internal/utils/mapping"
)

// PgxShowRepository persists shows in PostgreSQL.
type PgxShowRepository struct {
	BaseRepository
}

func newPgxShowRepository(pool *pgxpool.Pool) *PgxShowRepository {
	return &PgxShowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ShowRepositoryFacade = (*PgxShowRepository)(nil)

// FindShowByID retrieves a show with its stored totals.
func (r *PgxShowRepository) FindShowByID(ctx context.Context, showID int64) (*domain.Show, error) {
	query := `
		SELECT show_id, show_date, show_name, platform, notes,
			total_gross_sales, total_discounts, total_commission, total_platform_fees, total_payment_fees,
			total_shipping, total_net_earnings, total_cogs, total_net_profit,
			item_count, unique_buyers, avg_sale_price, created_at, updated_at
		FROM shows
		WHERE show_id = $1;`
	var m models.Show
	err := r.Pool.QueryRow(ctx, query, showID).Scan(
		&m.ShowID, &m.ShowDate, &m.ShowName, &m.Platform, &m.Notes,
		&m.TotalGrossSales, &m.TotalDiscounts, &m.TotalCommission, &m.TotalPlatformFee, &m.TotalPaymentFee,
		&m.TotalShipping, &m.TotalNetEarnings, &m.TotalCOGS, &m.TotalNetProfit,
		&m.ItemCount, &m.UniqueBuyers, &m.AvgSalePrice, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find show %d: %w", showID, err)
	}
	d := mapping.ToDomainShow(m)
	return &d, nil
}

// UpdateShowTotals overwrites every denormalized aggregate of a show.
func (r *PgxShowRepository) UpdateShowTotals(ctx context.Context, showID int64, t domain.ShowTotals) error {
	query := `
		UPDATE shows
		SET total_gross_sales = $2, total_discounts = $3, total_commission = $4, total_platform_fees = $5,
			total_payment_fees = $6, total_shipping = $7, total_net_earnings = $8, total_cogs = $9,
			total_net_profit = $10, item_count = $11, unique_buyers = $12, avg_sale_price = $13, updated_at = $14
		WHERE show_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, showID,
		t.TotalGrossSales, t.TotalDiscounts, t.TotalCommission, t.TotalPlatformFee,
		t.TotalPaymentFee, t.TotalShipping, t.TotalNetEarnings, t.TotalCOGS,
		t.TotalNetProfit, t.ItemCount, t.UniqueBuyers, t.AvgSalePrice, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update totals of show %d: %w", showID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
