package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("menu not found")

type Repository interface {
	// GetByID resolves a menu by id, including soft-deleted rows so that
	// historical orders can still be displayed.
	GetByID(ctx context.Context, id int64) (*Menu, error)
	// ListByStore returns the orderable catalog of a store, excluding
	// soft-deleted menus.
	ListByStore(ctx context.Context, storeID int64) ([]Menu, error)
}

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Menu, error) {
	query := `
		SELECT id, store_id, name, price, image_url, deleted, created_at, updated_at
		FROM menus
		WHERE id = $1
	`

	var m Menu
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.StoreID,
		&m.Name,
		&m.Price,
		&m.ImageURL,
		&m.Deleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select menu by id %d: %w", id, err)
	}

	return &m, nil
}

func (r *postgresRepository) ListByStore(ctx context.Context, storeID int64) ([]Menu, error) {
	query := `
		SELECT id, store_id, name, price, image_url, deleted, created_at, updated_at
		FROM menus
		WHERE store_id = $1 AND deleted = FALSE
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query menus for store %d: %w", storeID, err)
	}
	defer rows.Close()

	menus := make([]Menu, 0)
	for rows.Next() {
		var m Menu
		err := rows.Scan(
			&m.ID,
			&m.StoreID,
			&m.Name,
			&m.Price,
			&m.ImageURL,
			&m.Deleted,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan menu for store %d: %w", storeID, err)
		}
		menus = append(menus, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating menus for store %d: %w", storeID, err)
	}

	return menus, nil
}
