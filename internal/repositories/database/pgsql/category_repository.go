package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/models"
	"github.com/finbooks/finbooks_backend/internal/utils/mapping"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for the chart of accounts.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, code, type, parent_id, created_at, last_updated_at`

// SaveCategory inserts a new category. A duplicate code maps to ErrDuplicate.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.AccountCategory) error {
	m := mapping.ToModelAccountCategory(category)
	query := `
		INSERT INTO account_categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Code,
		m.Type,
		m.ParentID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.AccountCategory, error) {
	var m models.AccountCategory
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Code,
		&m.Type,
		&m.ParentID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainAccountCategory(m)
	return &d, nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.AccountCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM account_categories WHERE category_id = $1;`

	category, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return category, nil
}

// ListCategories retrieves all categories ordered by code, optionally
// filtered by type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.TransactionType) ([]domain.AccountCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM account_categories`
	var args []any
	if categoryType != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.AccountCategory, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading category rows: %w", err)
	}
	return categories, nil
}

// HasChildren reports whether any category names this one as its parent.
func (r *PgxCategoryRepository) HasChildren(ctx context.Context, categoryID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM account_categories WHERE parent_id = $1);`
	if err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check children of category %s: %w", categoryID, err)
	}
	return exists, nil
}

// HasTransactions reports whether any ledger entry references this category.
func (r *PgxCategoryRepository) HasTransactions(ctx context.Context, categoryID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE account_category_id = $1);`
	if err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transactions of category %s: %w", categoryID, err)
	}
	return exists, nil
}

// UpdateCategory updates an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.AccountCategory) error {
	m := mapping.ToModelAccountCategory(category)
	query := `
		UPDATE account_categories
		SET name = $2, code = $3, type = $4, parent_id = $5, last_updated_at = $6
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Name, m.Code, m.Type, m.ParentID, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM account_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
