package table

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("table not found")

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Table, error)
	// SetSession writes the table's session binding. Used by the session
	// lifecycle only; order creation never mutates tables.
	SetSession(ctx context.Context, id int64, sessionID string, active bool) error
}

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Table, error) {
	query := `
		SELECT id, store_id, table_number, COALESCE(session_id, ''), session_active, created_at, updated_at
		FROM tables
		WHERE id = $1
	`

	var t Table
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.StoreID,
		&t.TableNumber,
		&t.SessionID,
		&t.SessionActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select table by id %d: %w", id, err)
	}

	return &t, nil
}

func (r *postgresRepository) SetSession(ctx context.Context, id int64, sessionID string, active bool) error {
	query := `
		UPDATE tables
		SET session_id = $1, session_active = $2, updated_at = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, sessionID, active, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("repository: failed to update session for table %d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
