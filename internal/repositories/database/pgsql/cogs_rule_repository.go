package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	"github.com/kantocollect/salesops/internal/models"
	"github.com/kantocollect/salesops/internal/utils/mapping"
)

const ruleColumns = `rule_id, name, keywords, unit_cost, match_mode, priority, is_active, category, notes, created_at, updated_at`

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

func scanRule(row rowScanner) (models.COGSRule, error) {
	var m models.COGSRule
	err := row.Scan(&m.RuleID, &m.Name, &m.Keywords, &m.UnitCost, &m.MatchMode, &m.Priority, &m.IsActive, &m.Category, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// PgxCOGSRuleRepository persists COGS rules in PostgreSQL.
type PgxCOGSRuleRepository struct {
	BaseRepository
}

func newPgxCOGSRuleRepository(pool *pgxpool.Pool) *PgxCOGSRuleRepository {
	return &PgxCOGSRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.COGSRuleRepositoryFacade = (*PgxCOGSRuleRepository)(nil)

// SaveRule inserts a rule and returns its generated id.
func (r *PgxCOGSRuleRepository) SaveRule(ctx context.Context, rule domain.COGSRule) (int64, error) {
	m := mapping.ToModelCOGSRule(rule)
	query := `
		INSERT INTO cogs_rules (name, keywords, unit_cost, match_mode, priority, is_active, category, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING rule_id;`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.Keywords, m.UnitCost, m.MatchMode, m.Priority, m.IsActive, m.Category, m.Notes, m.CreatedAt, m.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("rule named %q: %w", rule.Name, apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to save rule %q: %w", rule.Name, err)
	}
	return id, nil
}

// FindRuleByID retrieves a rule by id.
func (r *PgxCOGSRuleRepository) FindRuleByID(ctx context.Context, ruleID int64) (*domain.COGSRule, error) {
	return r.findOne(ctx, `SELECT `+ruleColumns+` FROM cogs_rules WHERE rule_id = $1;`, ruleID)
}

// FindRuleByName retrieves a rule by its exact name.
func (r *PgxCOGSRuleRepository) FindRuleByName(ctx context.Context, name string) (*domain.COGSRule, error) {
	return r.findOne(ctx, `SELECT `+ruleColumns+` FROM cogs_rules WHERE name = $1;`, name)
}

func (r *PgxCOGSRuleRepository) findOne(ctx context.Context, query string, arg any) (*domain.COGSRule, error) {
	m, err := scanRule(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rule %v: %w", arg, err)
	}
	d := mapping.ToDomainCOGSRule(m)
	return &d, nil
}

// ListRules returns rules in evaluation order.
func (r *PgxCOGSRuleRepository) ListRules(ctx context.Context, activeOnly bool) ([]domain.COGSRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM cogs_rules`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY priority DESC, rule_id ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	modelRules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.COGSRule, error) {
		return scanRule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rules: %w", err)
	}
	return mapping.ToDomainCOGSRuleSlice(modelRules), nil
}

// UpdateRule overwrites every editable field of a rule.
func (r *PgxCOGSRuleRepository) UpdateRule(ctx context.Context, rule domain.COGSRule) error {
	m := mapping.ToModelCOGSRule(rule)
	query := `
		UPDATE cogs_rules
		SET name = $2, keywords = $3, unit_cost = $4, match_mode = $5, priority = $6,
			is_active = $7, category = $8, notes = $9, updated_at = $10
		WHERE rule_id = $1;`
	tag, err := r.Pool.Exec(ctx, query,
		m.RuleID, m.Name, m.Keywords, m.UnitCost, m.MatchMode, m.Priority, m.IsActive, m.Category, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("rule named %q: %w", rule.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update rule %d: %w", rule.RuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRule removes a rule. Sales pointing at it keep their cost but lose the reference.
func (r *PgxCOGSRuleRepository) DeleteRule(ctx context.Context, ruleID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cogs_rules WHERE rule_id = $1;`, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete rule %d: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
