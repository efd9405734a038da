package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type Repository interface {
	// Create persists the order header and all of its items in a single
	// transaction. The generated ids are written back into header and items.
	Create(ctx context.Context, header *Order, items []Item) error
	GetByID(ctx context.Context, id int64) (*View, error)
	GetBySession(ctx context.Context, sessionID string) ([]View, error)
	GetRecentByStore(ctx context.Context, storeID int64, limit int) ([]View, error)
}

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, header *Order, items []Item) (err error) {
	tx, beginErr := r.db.Begin(ctx)
	if beginErr != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", beginErr)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error().Err(rbErr).Str("order_number", header.OrderNumber).Msg("repository: failed to rollback after panic")
			}
			panic(p)
		} else if err != nil {
			log.Warn().Err(err).Str("order_number", header.OrderNumber).Msg("repository: rolling back order creation")
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error().Err(rbErr).Str("order_number", header.OrderNumber).Msg("repository: failed to rollback transaction")
			}
		} else {
			if commitErr := tx.Commit(ctx); commitErr != nil {
				err = fmt.Errorf("repository: failed to commit transaction: %w", commitErr)
			}
		}
	}()

	queryOrder := `
		INSERT INTO orders (order_number, store_id, table_id, session_id, status, total_amount, version, deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, FALSE, $7)
		RETURNING id
	`
	err = tx.QueryRow(ctx, queryOrder,
		header.OrderNumber,
		header.StoreID,
		header.TableID,
		header.SessionID,
		string(header.Status),
		header.TotalAmount,
		header.CreatedAt,
	).Scan(&header.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to insert order: %w", err)
	}

	queryItem := `
		INSERT INTO order_items (order_id, menu_id, menu_name, unit_price, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i := range items {
		item := &items[i]
		item.OrderID = header.ID

		err = tx.QueryRow(ctx, queryItem,
			item.OrderID,
			item.MenuID,
			item.MenuName,
			item.UnitPrice,
			item.Quantity,
			item.CreatedAt,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("repository: failed to insert order item for order %s: %w", header.OrderNumber, err)
		}
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*View, error) {
	queryOrder := `
		SELECT id, order_number, store_id, table_id, session_id, status, total_amount, created_at
		FROM orders
		WHERE id = $1 AND deleted = FALSE
	`

	var v View
	err := r.db.QueryRow(ctx, queryOrder, id).Scan(
		&v.ID,
		&v.OrderNumber,
		&v.StoreID,
		&v.TableID,
		&v.SessionID,
		&v.Status,
		&v.TotalAmount,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to select order by id %d: %w", id, err)
	}

	items, err := r.itemsForOrders(ctx, []int64{v.ID})
	if err != nil {
		return nil, err
	}
	v.Items = items[v.ID]

	return &v, nil
}

func (r *postgresRepository) GetBySession(ctx context.Context, sessionID string) ([]View, error) {
	query := `
		SELECT id, order_number, store_id, table_id, session_id, status, total_amount, created_at
		FROM orders
		WHERE session_id = $1 AND deleted = FALSE
		ORDER BY created_at DESC
	`
	return r.queryViews(ctx, query, sessionID)
}

func (r *postgresRepository) GetRecentByStore(ctx context.Context, storeID int64, limit int) ([]View, error) {
	query := `
		SELECT id, order_number, store_id, table_id, session_id, status, total_amount, created_at
		FROM orders
		WHERE store_id = $1 AND deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.queryViews(ctx, query, storeID, limit)
}

func (r *postgresRepository) queryViews(ctx context.Context, query string, args ...any) ([]View, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}
	defer rows.Close()

	viewsMap := make(map[int64]*View)
	var orderIDs []int64

	for rows.Next() {
		var v View
		err := rows.Scan(
			&v.ID,
			&v.OrderNumber,
			&v.StoreID,
			&v.TableID,
			&v.SessionID,
			&v.Status,
			&v.TotalAmount,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		v.Items = make([]ItemView, 0)
		viewsMap[v.ID] = &v
		orderIDs = append(orderIDs, v.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	if len(orderIDs) == 0 {
		return []View{}, nil
	}

	items, err := r.itemsForOrders(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	for orderID, orderItems := range items {
		if v, ok := viewsMap[orderID]; ok {
			v.Items = orderItems
		}
	}

	views := make([]View, 0, len(orderIDs))
	for _, id := range orderIDs {
		views = append(views, *viewsMap[id])
	}

	return views, nil
}

// itemsForOrders loads the lines of the given orders. The current menu name
// is joined in for display only; when the menu row has been removed the
// display name falls back to "Unknown" while the snapshot name and price
// stay untouched.
func (r *postgresRepository) itemsForOrders(ctx context.Context, orderIDs []int64) (map[int64][]ItemView, error) {
	query := `
		SELECT oi.order_id, COALESCE(oi.menu_id, 0), oi.menu_name, COALESCE(m.name, 'Unknown'), oi.unit_price, oi.quantity
		FROM order_items oi
		LEFT JOIN menus m ON m.id = oi.menu_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id
	`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query order items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]ItemView)
	for rows.Next() {
		var orderID int64
		var iv ItemView
		err := rows.Scan(
			&orderID,
			&iv.MenuID,
			&iv.MenuName,
			&iv.DisplayName,
			&iv.UnitPrice,
			&iv.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		iv.Subtotal = iv.UnitPrice * int64(iv.Quantity)
		items[orderID] = append(items[orderID], iv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return items, nil
}
