package order

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// Order is the persisted order header. It is immutable once the assembler
// returns; only status and version change later, outside this package's
// write paths.
type Order struct {
	ID          int64     `json:"id" db:"id"`
	OrderNumber string    `json:"order_number" db:"order_number"`
	StoreID     int64     `json:"store_id" db:"store_id"`
	TableID     int64     `json:"table_id" db:"table_id"`
	SessionID   string    `json:"session_id" db:"session_id"`
	Status      Status    `json:"status" db:"status"`
	TotalAmount int64     `json:"total_amount" db:"total_amount"`
	Version     int       `json:"version" db:"version"`
	Deleted     bool      `json:"-" db:"deleted"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Item is a persisted order line. MenuName and UnitPrice are snapshots taken
// at order time and never change afterwards, even if the referenced menu is
// repriced or deleted.
type Item struct {
	ID        int64     `json:"id" db:"id"`
	OrderID   int64     `json:"order_id" db:"order_id"`
	MenuID    int64     `json:"menu_id" db:"menu_id"`
	MenuName  string    `json:"menu_name" db:"menu_name"`
	UnitPrice int64     `json:"unit_price" db:"unit_price"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ItemView is an order line prepared for display. DisplayName carries the
// menu's current name and falls back to "Unknown" when the menu row is gone;
// MenuName and UnitPrice remain the authoritative snapshots.
type ItemView struct {
	MenuID      int64  `json:"menu_id"`
	MenuName    string `json:"menu_name"`
	DisplayName string `json:"display_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

// View is the hydrated order returned to callers.
type View struct {
	ID          int64      `json:"id"`
	OrderNumber string     `json:"order_number"`
	StoreID     int64      `json:"store_id"`
	TableID     int64      `json:"table_id"`
	SessionID   string     `json:"session_id"`
	Status      Status     `json:"status"`
	TotalAmount int64      `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	Items       []ItemView `json:"items"`
}

// RequestItem is a single line of an incoming order.
type RequestItem struct {
	MenuID   int64 `json:"menu_id"`
	Quantity int   `json:"quantity"`
}

// CreateRequest carries everything needed to create an order.
type CreateRequest struct {
	StoreID   int64         `json:"store_id"`
	TableID   int64         `json:"table_id"`
	SessionID string        `json:"session_id"`
	Items     []RequestItem `json:"items"`
}
