package menu_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableorder/internal/cache"
	"tableorder/internal/menu"
)

type mockMenuRepository struct {
	getByIDFunc     func(ctx context.Context, id int64) (*menu.Menu, error)
	listByStoreFunc func(ctx context.Context, storeID int64) ([]menu.Menu, error)
	listCalls       int
}

func (m *mockMenuRepository) GetByID(ctx context.Context, id int64) (*menu.Menu, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockMenuRepository) ListByStore(ctx context.Context, storeID int64) ([]menu.Menu, error) {
	m.listCalls++
	return m.listByStoreFunc(ctx, storeID)
}

func TestMenuService_ListByStore_CachesResult(t *testing.T) {
	catalog := []menu.Menu{
		{ID: 1, StoreID: 1, Name: "Americano", Price: 4500},
		{ID: 2, StoreID: 1, Name: "Latte", Price: 5000},
	}
	repo := &mockMenuRepository{
		listByStoreFunc: func(ctx context.Context, storeID int64) ([]menu.Menu, error) {
			return catalog, nil
		},
	}
	svc := menu.NewService(repo, cache.New(), time.Minute)

	first, err := svc.ListByStore(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.ListByStore(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, catalog, first)
	assert.Equal(t, catalog, second)
	assert.Equal(t, 1, repo.listCalls, "second listing should be served from cache")
}

func TestMenuService_ListByStore_ExpiredEntryRefetches(t *testing.T) {
	repo := &mockMenuRepository{
		listByStoreFunc: func(ctx context.Context, storeID int64) ([]menu.Menu, error) {
			return []menu.Menu{{ID: 1, StoreID: 1, Name: "Americano", Price: 4500}}, nil
		},
	}
	svc := menu.NewService(repo, cache.New(), 5*time.Millisecond)

	_, err := svc.ListByStore(context.Background(), 1)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = svc.ListByStore(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestMenuService_ListByStore_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockMenuRepository{
		listByStoreFunc: func(ctx context.Context, storeID int64) ([]menu.Menu, error) {
			return nil, repoErr
		},
	}
	svc := menu.NewService(repo, cache.New(), time.Minute)

	_, err := svc.ListByStore(context.Background(), 1)
	assert.ErrorIs(t, err, repoErr)
}

func TestMenuService_GetByID_NotFound(t *testing.T) {
	repo := &mockMenuRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*menu.Menu, error) {
			return nil, menu.ErrNotFound
		},
	}
	svc := menu.NewService(repo, cache.New(), time.Minute)

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, menu.ErrNotFound)
}

func TestMenuService_GetByID_ResolvesDeletedMenu(t *testing.T) {
	repo := &mockMenuRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*menu.Menu, error) {
			return &menu.Menu{ID: id, StoreID: 1, Name: "Retired Blend", Price: 6000, Deleted: true}, nil
		},
	}
	svc := menu.NewService(repo, cache.New(), time.Minute)

	m, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, m.Deleted)
	assert.Equal(t, "Retired Blend", m.Name)
}
