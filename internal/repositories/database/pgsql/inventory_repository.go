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

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for stock records.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryWithTx {
	return &PgxInventoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryWithTx = (*PgxInventoryRepository)(nil)

const inventoryColumns = `item_id, name, description, price, quantity, created_at, last_updated_at`

// SaveItem inserts a new stock item.
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Name,
		m.Description,
		m.Price,
		m.Quantity,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: inventory item with ID %s already exists", apperrors.ErrDuplicate, m.ItemID)
		}
		return fmt.Errorf("failed to save inventory item %s: %w", m.ItemID, err)
	}
	return nil
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Quantity,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainInventoryItem(m)
	return &d, nil
}

// FindItemByID retrieves a stock item by its ID.
func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_id = $1;`

	item, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by ID %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems retrieves a paginated list of stock items ordered by name,
// optionally filtered by a case-insensitive name substring.
func (r *PgxInventoryRepository) ListItems(ctx context.Context, nameSearch string, limit int, offset int) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items`
	args := []any{limit, offset}
	if nameSearch != "" {
		args = append(args, "%"+nameSearch+"%")
		query += ` WHERE name ILIKE $3`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading inventory item rows: %w", err)
	}
	return items, nil
}

// UpdateItem updates an existing stock item.
func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, price = $4, quantity = $5, last_updated_at = $6
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ItemID, m.Name, m.Description, m.Price, m.Quantity, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update inventory item %s: %w", m.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteItem removes a stock item.
func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustQuantity applies a signed stock delta within an open transaction.
// GREATEST clamps depletion at zero so oversells never drive stock negative.
func (r *PgxInventoryRepository) AdjustQuantity(ctx context.Context, tx pgx.Tx, itemID string, delta int64) error {
	query := `
		UPDATE inventory_items
		SET quantity = GREATEST(quantity + $2, 0), last_updated_at = now()
		WHERE item_id = $1;
	`
	tag, err := tx.Exec(ctx, query, itemID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust quantity of item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
