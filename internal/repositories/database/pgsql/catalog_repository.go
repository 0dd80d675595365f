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

const catalogColumns = `
	entry_id, name, category, image_url, image_filename, rule_kind, include_keywords, exclude_keywords,
	priority, keywords, created_at, created_by, last_updated_at, last_updated_by`

func scanCatalogEntry(row rowScanner) (models.CatalogEntry, error) {
	var m models.CatalogEntry
	err := row.Scan(
		&m.EntryID, &m.Name, &m.Category, &m.ImageURL, &m.ImageFilename, &m.RuleKind, &m.IncludeKeywords, &m.ExcludeKeywords,
		&m.Priority, &m.Keywords, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// PgxCatalogRepository persists catalog entries in PostgreSQL.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) *PgxCatalogRepository {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

// SaveEntry inserts an entry and returns its generated id.
func (r *PgxCatalogRepository) SaveEntry(ctx context.Context, entry domain.CatalogEntry) (int64, error) {
	m := mapping.ToModelCatalogEntry(entry)
	query := `
		INSERT INTO product_catalog (name, category, image_url, image_filename, rule_kind, include_keywords, exclude_keywords,
			priority, keywords, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING entry_id;`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.Category, m.ImageURL, m.ImageFilename, m.RuleKind, m.IncludeKeywords, m.ExcludeKeywords,
		m.Priority, m.Keywords, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("catalog entry %q: %w", entry.Name, apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to save catalog entry %q: %w", entry.Name, err)
	}
	return id, nil
}

// FindEntryByID retrieves an entry by id.
func (r *PgxCatalogRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.CatalogEntry, error) {
	return r.findOne(ctx, `SELECT `+catalogColumns+` FROM product_catalog WHERE entry_id = $1;`, entryID)
}

// FindEntryByName retrieves an entry by its exact name.
func (r *PgxCatalogRepository) FindEntryByName(ctx context.Context, name string) (*domain.CatalogEntry, error) {
	return r.findOne(ctx, `SELECT `+catalogColumns+` FROM product_catalog WHERE name = $1 ORDER BY entry_id LIMIT 1;`, name)
}

// FindEntryByImageURLPrefix finds the first entry whose image url starts with prefix.
func (r *PgxCatalogRepository) FindEntryByImageURLPrefix(ctx context.Context, prefix string) (*domain.CatalogEntry, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	return r.findOne(ctx, `SELECT `+catalogColumns+` FROM product_catalog WHERE image_url LIKE $1 ORDER BY entry_id LIMIT 1;`, escaped+"%")
}

func (r *PgxCatalogRepository) findOne(ctx context.Context, query string, arg any) (*domain.CatalogEntry, error) {
	m, err := scanCatalogEntry(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find catalog entry %v: %w", arg, err)
	}
	d := mapping.ToDomainCatalogEntry(m)
	return &d, nil
}

// ListEntries returns entries in evaluation order.
func (r *PgxCatalogRepository) ListEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+catalogColumns+` FROM product_catalog ORDER BY priority DESC, entry_id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CatalogEntry, error) {
		return scanCatalogEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog: %w", err)
	}
	return mapping.ToDomainCatalogEntrySlice(modelEntries), nil
}

// UpdateEntry overwrites every editable field of an entry.
func (r *PgxCatalogRepository) UpdateEntry(ctx context.Context, entry domain.CatalogEntry) error {
	m := mapping.ToModelCatalogEntry(entry)
	query := `
		UPDATE product_catalog
		SET name = $2, category = $3, image_url = $4, image_filename = $5, rule_kind = $6,
			include_keywords = $7, exclude_keywords = $8, priority = $9, keywords = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE entry_id = $1;`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Name, m.Category, m.ImageURL, m.ImageFilename, m.RuleKind,
		m.IncludeKeywords, m.ExcludeKeywords, m.Priority, m.Keywords, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("catalog entry %q: %w", entry.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update catalog entry %d: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry unmaps the entry's sales and removes it in one transaction.
func (r *PgxCatalogRepository) DeleteEntry(ctx context.Context, entryID int64) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	unmapped, err := tx.Exec(ctx, `
		UPDATE sales_transactions
		SET catalog_item_id = NULL, is_mapped = FALSE, matched_keyword = NULL, mapped_at = NULL, updated_at = $2
		WHERE catalog_item_id = $1;`, entryID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to unmap sales of catalog entry %d: %w", entryID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM product_catalog WHERE entry_id = $1;`, entryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete catalog entry %d: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, apperrors.ErrNotFound
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return unmapped.RowsAffected(), nil
}
