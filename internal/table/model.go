package table

import "time"

// Table binds a physical table to at most one active ordering session.
// SessionID is the opaque token handed to the customer; it is empty when no
// session has ever been started and stays populated (with SessionActive
// false) after a session ends.
type Table struct {
	ID            int64     `json:"id" db:"id"`
	StoreID       int64     `json:"store_id" db:"store_id"`
	TableNumber   string    `json:"table_number" db:"table_number"`
	SessionID     string    `json:"session_id" db:"session_id"`
	SessionActive bool      `json:"session_active" db:"session_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
