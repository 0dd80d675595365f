package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	"github.com/kantocollect/salesops/internal/models"
	"github.com/kantocollect/salesops/internal/utils/mapping"
)

const saleColumns = `
	sale_id, show_id, sale_type, transaction_date, item_name, quantity, buyer_username,
	gross_sale_price, discount, commission, platform_fee, payment_fee, shipping, net_earnings,
	notes, owner, cogs, net_profit, roi_percent, matched_cogs_rule_id,
	catalog_item_id, is_mapped, matched_keyword, mapped_at, created_at, updated_at`

const updateCOGSQuery = `
	UPDATE sales_transactions
	SET cogs = $2, net_profit = $3, roi_percent = $4, matched_cogs_rule_id = $5, updated_at = $6
	WHERE sale_id = $1;`

const updateMappingQuery = `
	UPDATE sales_transactions
	SET catalog_item_id = $2, is_mapped = $3, matched_keyword = $4, mapped_at = $5, updated_at = $6
	WHERE sale_id = $1;`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID, &m.ShowID, &m.SaleType, &m.TransactionDate, &m.ItemName, &m.Quantity, &m.BuyerUsername,
		&m.GrossSalePrice, &m.Discount, &m.Commission, &m.PlatformFee, &m.PaymentFee, &m.Shipping, &m.NetEarnings,
		&m.Notes, &m.Owner, &m.COGS, &m.NetProfit, &m.ROIPercent, &m.MatchedCOGSRuleID,
		&m.CatalogItemID, &m.IsMapped, &m.MatchedKeyword, &m.MappedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// PgxSaleRepository persists sales in PostgreSQL.
type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) *PgxSaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// FindSaleByID retrieves a sale by id.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales_transactions WHERE sale_id = $1;`
	m, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale %d: %w", saleID, err)
	}
	d := mapping.ToDomainSale(m)
	return &d, nil
}

// ListSales pages through sales newest first.
func (r *PgxSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter, limit int, after *portsrepo.SaleCursor) ([]domain.Sale, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.ShowID != nil {
		conds = append(conds, "show_id = "+arg(*filter.ShowID))
	}
	if filter.SaleType != nil {
		conds = append(conds, "sale_type = "+arg(string(*filter.SaleType)))
	}
	if filter.Owner != nil {
		conds = append(conds, "owner = "+arg(string(*filter.Owner)))
	}
	if filter.MissingCOGS {
		conds = append(conds, "(cogs IS NULL OR cogs <= 0)")
	}
	if filter.Unmapped {
		conds = append(conds, "is_mapped = FALSE")
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		conds = append(conds, "item_name ILIKE "+arg("%"+s+"%"))
	}
	if after != nil {
		conds = append(conds, fmt.Sprintf("(transaction_date, sale_id) < (%s, %s)", arg(after.TransactionDate), arg(after.SaleID)))
	}

	query := `SELECT ` + saleColumns + ` FROM sales_transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY transaction_date DESC, sale_id DESC LIMIT " + arg(limit)

	return r.collect(ctx, query, args...)
}

// ListAllSales returns every sale ordered by id.
func (r *PgxSaleRepository) ListAllSales(ctx context.Context) ([]domain.Sale, error) {
	return r.collect(ctx, `SELECT `+saleColumns+` FROM sales_transactions ORDER BY sale_id;`)
}

// ListSalesByShow returns every sale of a show ordered by id.
func (r *PgxSaleRepository) ListSalesByShow(ctx context.Context, showID int64) ([]domain.Sale, error) {
	return r.collect(ctx, `SELECT `+saleColumns+` FROM sales_transactions WHERE show_id = $1 ORDER BY sale_id;`, showID)
}

func (r *PgxSaleRepository) collect(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	modelSales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales: %w", err)
	}
	return mapping.ToDomainSaleSlice(modelSales), nil
}

// ListDistinctItemNames returns distinct item names, alphabetically.
func (r *PgxSaleRepository) ListDistinctItemNames(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT item_name FROM sales_transactions ORDER BY item_name LIMIT $1;`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query item names: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan item names: %w", err)
	}
	return names, nil
}

// RuleUsage aggregates sales per matched COGS rule.
func (r *PgxSaleRepository) RuleUsage(ctx context.Context) ([]domain.RuleUsage, error) {
	query := `
		SELECT matched_cogs_rule_id, COUNT(*), COALESCE(SUM(cogs), 0)
		FROM sales_transactions
		WHERE matched_cogs_rule_id IS NOT NULL
		GROUP BY matched_cogs_rule_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rule usage: %w", err)
	}
	usage, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RuleUsage, error) {
		var u domain.RuleUsage
		err := row.Scan(&u.RuleID, &u.Matches, &u.TotalCOGS)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rule usage: %w", err)
	}
	return usage, nil
}

// UpdateSale persists the operator-editable and COGS-derived fields of a sale.
func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		UPDATE sales_transactions
		SET notes = $2, owner = $3, cogs = $4, net_profit = $5, roi_percent = $6,
			matched_cogs_rule_id = $7, updated_at = $8
		WHERE sale_id = $1;`
	tag, err := r.Pool.Exec(ctx, query,
		m.SaleID, m.Notes, m.Owner, m.COGS, m.NetProfit, m.ROIPercent, m.MatchedCOGSRuleID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update sale %d: %w", sale.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveCOGSBatch writes COGS-derived fields row by row inside one transaction.
func (r *PgxSaleRepository) SaveCOGSBatch(ctx context.Context, sales []domain.Sale) (map[int64]error, error) {
	if len(sales) == 0 {
		return map[int64]error{}, nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()
	ids := make([]int64, len(sales))
	for i, s := range sales {
		ids[i] = s.SaleID
	}
	failed, err := execEachInSavepoint(ctx, tx, ids, func(i int) (string, []any) {
		m := mapping.ToModelSale(sales[i])
		return updateCOGSQuery, []any{m.SaleID, m.COGS, m.NetProfit, m.ROIPercent, m.MatchedCOGSRuleID, now}
	})
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return failed, nil
}

// UpdateSaleMapping persists the mapping state of one sale.
func (r *PgxSaleRepository) UpdateSaleMapping(ctx context.Context, sm domain.SaleMapping) error {
	tag, err := r.Pool.Exec(ctx, updateMappingQuery, mappingArgs(sm, time.Now().UTC())...)
	if err != nil {
		return fmt.Errorf("failed to update mapping for sale %d: %w", sm.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveMappingBatch writes mapping states row by row inside one transaction.
func (r *PgxSaleRepository) SaveMappingBatch(ctx context.Context, mappings []domain.SaleMapping) (map[int64]error, error) {
	if len(mappings) == 0 {
		return map[int64]error{}, nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()
	ids := make([]int64, len(mappings))
	for i, sm := range mappings {
		ids[i] = sm.SaleID
	}
	failed, err := execEachInSavepoint(ctx, tx, ids, func(i int) (string, []any) {
		return updateMappingQuery, mappingArgs(mappings[i], now)
	})
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return failed, nil
}

func mappingArgs(sm domain.SaleMapping, now time.Time) []any {
	var keyword, mappedAt any
	if sm.MatchedKeyword != nil {
		keyword = *sm.MatchedKeyword
	}
	if sm.MappedAt != nil {
		mappedAt = *sm.MappedAt
	}
	var catalogID any
	if sm.CatalogItemID != nil {
		catalogID = *sm.CatalogItemID
	}
	return []any{sm.SaleID, catalogID, sm.IsMapped, keyword, mappedAt, now}
}
