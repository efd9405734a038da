package menu

import "time"

// Menu is a single catalog item. Price is in the smallest currency unit.
// Deleted is a soft-delete flag: deleted menus are excluded from listings and
// reject new orders, but stay resolvable so historical orders can still show
// what was bought.
type Menu struct {
	ID        int64     `json:"id" db:"id"`
	StoreID   int64     `json:"store_id" db:"store_id"`
	Name      string    `json:"name" db:"name"`
	Price     int64     `json:"price" db:"price"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Deleted   bool      `json:"deleted" db:"deleted"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
