package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tableorder/internal/cache"
	"tableorder/internal/handler"
	"tableorder/internal/menu"
	"tableorder/internal/order"
	"tableorder/internal/table"
)

// NewRouter assembles repositories, services and handlers on top of the pool
// and returns the HTTP routing tree. publisher may be nil when no broker is
// configured.
func NewRouter(pool *pgxpool.Pool, publisher order.Publisher, menuCacheTTL time.Duration) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	menuRepo := menu.NewRepository(pool)
	menuSvc := menu.NewService(menuRepo, cache.New(), menuCacheTTL)

	tableRepo := table.NewRepository(pool)
	sessions := table.NewSessions(tableRepo)

	orderRepo := order.NewRepository(pool)
	orderSvc := order.NewService(orderRepo, sessions, order.NewPricer(menuRepo), order.NewNumberGenerator(), publisher)

	menuHandler := handler.NewMenuHandler(menuSvc)
	tableHandler := handler.NewTableHandler(sessions)
	orderHandler := handler.NewOrderHandler(orderSvc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stores/{storeID}/menus", menuHandler.ListByStore)
		r.Get("/menus/{id}", menuHandler.GetByID)

		r.Post("/tables/{tableID}/session", tableHandler.StartSession)
		r.Delete("/tables/{tableID}/session", tableHandler.EndSession)

		r.Post("/stores/{storeID}/tables/{tableID}/orders", orderHandler.Create)
		r.Get("/orders/{id}", orderHandler.GetByID)
		r.Get("/sessions/{sessionID}/orders", orderHandler.GetBySession)
		r.Get("/stores/{storeID}/orders", orderHandler.GetRecent)
	})

	return r
}
