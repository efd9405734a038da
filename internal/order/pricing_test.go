package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableorder/internal/menu"
	"tableorder/internal/order"
)

type mockMenuFinder struct {
	menus   map[int64]*menu.Menu
	lookups int
}

func (m *mockMenuFinder) GetByID(ctx context.Context, id int64) (*menu.Menu, error) {
	m.lookups++
	found, ok := m.menus[id]
	if !ok {
		return nil, menu.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

func menuFixture() *mockMenuFinder {
	return &mockMenuFinder{menus: map[int64]*menu.Menu{
		1: {ID: 1, StoreID: 1, Name: "Americano", Price: 4500},
		2: {ID: 2, StoreID: 1, Name: "Latte", Price: 5000},
		3: {ID: 3, StoreID: 1, Name: "Retired Blend", Price: 6000, Deleted: true},
	}}
}

func TestPricer_PriceItems(t *testing.T) {
	tests := []struct {
		name      string
		items     []order.RequestItem
		wantErrIs error
		wantTotal int64
		wantLines int
	}{
		{
			name:      "empty_order",
			items:     nil,
			wantErrIs: order.ErrEmptyOrder,
		},
		{
			name:      "zero_quantity",
			items:     []order.RequestItem{{MenuID: 1, Quantity: 0}},
			wantErrIs: order.ErrInvalidQuantity,
		},
		{
			name:      "negative_quantity",
			items:     []order.RequestItem{{MenuID: 1, Quantity: -2}},
			wantErrIs: order.ErrInvalidQuantity,
		},
		{
			name:      "unknown_menu",
			items:     []order.RequestItem{{MenuID: 404, Quantity: 1}},
			wantErrIs: menu.ErrNotFound,
		},
		{
			name:      "deleted_menu",
			items:     []order.RequestItem{{MenuID: 3, Quantity: 1}},
			wantErrIs: order.ErrMenuUnavailable,
		},
		{
			name: "valid_order_totals",
			items: []order.RequestItem{
				{MenuID: 1, Quantity: 2},
				{MenuID: 2, Quantity: 1},
			},
			wantTotal: 14000,
			wantLines: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricer := order.NewPricer(menuFixture())

			lines, total, err := pricer.PriceItems(context.Background(), tt.items)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, lines, tt.wantLines)

			var sum int64
			for _, l := range lines {
				sum += l.UnitPrice * int64(l.Quantity)
			}
			assert.Equal(t, total, sum, "total must equal the sum of line subtotals")
		})
	}
}

func TestPricer_SnapshotValues(t *testing.T) {
	pricer := order.NewPricer(menuFixture())

	lines, total, err := pricer.PriceItems(context.Background(), []order.RequestItem{{MenuID: 1, Quantity: 2}})
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, int64(1), lines[0].MenuID)
	assert.Equal(t, "Americano", lines[0].Name)
	assert.Equal(t, int64(4500), lines[0].UnitPrice)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(9000), total)
}

func TestPricer_OneLookupPerItem(t *testing.T) {
	finder := menuFixture()
	pricer := order.NewPricer(finder)

	items := []order.RequestItem{
		{MenuID: 1, Quantity: 1},
		{MenuID: 2, Quantity: 3},
	}
	_, _, err := pricer.PriceItems(context.Background(), items)
	require.NoError(t, err)

	assert.Equal(t, len(items), finder.lookups, "each menu must be resolved exactly once")
}
