package order

import (
	"context"
	"fmt"

	"tableorder/internal/menu"
)

// MenuFinder is the read-only menu lookup the pricer depends on.
type MenuFinder interface {
	GetByID(ctx context.Context, id int64) (*menu.Menu, error)
}

// PricedLine is one validated order line carrying the menu's price and name
// as they were at lookup time. These values become the persisted snapshot.
type PricedLine struct {
	MenuID    int64
	Name      string
	UnitPrice int64
	Quantity  int
}

// Pricer validates requested items against the catalog and computes snapshot
// prices.
type Pricer struct {
	menus MenuFinder
}

func NewPricer(menus MenuFinder) *Pricer {
	return &Pricer{menus: menus}
}

// PriceItems resolves each requested item exactly once and returns the priced
// lines plus the order total. The single lookup per item is deliberate: the
// price used for validation is the same value that gets snapshotted, so a
// concurrent menu edit cannot slip a different price between the two.
func (p *Pricer) PriceItems(ctx context.Context, items []RequestItem) ([]PricedLine, int64, error) {
	if len(items) == 0 {
		return nil, 0, ErrEmptyOrder
	}

	lines := make([]PricedLine, 0, len(items))
	var total int64

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, 0, fmt.Errorf("%w: got %d for menu %d", ErrInvalidQuantity, item.Quantity, item.MenuID)
		}

		m, err := p.menus.GetByID(ctx, item.MenuID)
		if err != nil {
			return nil, 0, fmt.Errorf("menu %d: %w", item.MenuID, err)
		}

		if m.Deleted {
			return nil, 0, fmt.Errorf("%q (menu %d): %w", m.Name, m.ID, ErrMenuUnavailable)
		}

		lines = append(lines, PricedLine{
			MenuID:    m.ID,
			Name:      m.Name,
			UnitPrice: m.Price,
			Quantity:  item.Quantity,
		})
		total += m.Price * int64(item.Quantity)
	}

	return lines, total, nil
}
