package order

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// SessionValidator confirms a submitted session id is the one bound to the
// table and that the session is active.
type SessionValidator interface {
	Validate(ctx context.Context, tableID int64, sessionID string) error
}

// Publisher emits an event after an order has been committed. Publishing is
// best-effort and must never fail the order.
type Publisher interface {
	OrderCreated(ctx context.Context, view *View) error
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*View, error)
	GetByID(ctx context.Context, id int64) (*View, error)
	GetBySession(ctx context.Context, sessionID string) ([]View, error)
	GetRecent(ctx context.Context, storeID int64, limit int) ([]View, error)
}

type service struct {
	repo      Repository
	sessions  SessionValidator
	pricer    *Pricer
	numbers   *NumberGenerator
	publisher Publisher
	now       func() time.Time
}

// NewService wires the order assembler. publisher may be nil to disable
// event emission.
func NewService(repo Repository, sessions SessionValidator, pricer *Pricer, numbers *NumberGenerator, publisher Publisher) Service {
	return &service{
		repo:      repo,
		sessions:  sessions,
		pricer:    pricer,
		numbers:   numbers,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create runs the full order-creation sequence: session validation, menu
// pricing, number assignment, the atomic header+items write, and response
// hydration. Validation failures abort before anything is written; the
// response is built from the in-memory snapshot so a menu edit racing the
// commit cannot leak into it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*View, error) {
	if err := s.sessions.Validate(ctx, req.TableID, req.SessionID); err != nil {
		log.Warn().Err(err).Int64("table_id", req.TableID).Msg("service: session validation failed")
		return nil, err
	}

	lines, total, err := s.pricer.PriceItems(ctx, req.Items)
	if err != nil {
		log.Warn().Err(err).Int64("table_id", req.TableID).Msg("service: item validation failed")
		return nil, err
	}

	number, err := s.numbers.Next()
	if err != nil {
		log.Error().Err(err).Msg("service: failed to assign order number")
		return nil, err
	}

	header := &Order{
		OrderNumber: number,
		StoreID:     req.StoreID,
		TableID:     req.TableID,
		SessionID:   req.SessionID,
		Status:      StatusPending,
		TotalAmount: total,
		CreatedAt:   s.now().UTC(),
	}

	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			MenuID:    l.MenuID,
			MenuName:  l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			CreatedAt: header.CreatedAt,
		})
	}

	if err := s.repo.Create(ctx, header, items); err != nil {
		log.Error().Err(err).Str("order_number", number).Msg("service: failed to persist order")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	view := &View{
		ID:          header.ID,
		OrderNumber: header.OrderNumber,
		StoreID:     header.StoreID,
		TableID:     header.TableID,
		SessionID:   header.SessionID,
		Status:      header.Status,
		TotalAmount: header.TotalAmount,
		CreatedAt:   header.CreatedAt,
		Items:       make([]ItemView, 0, len(lines)),
	}
	for _, l := range lines {
		view.Items = append(view.Items, ItemView{
			MenuID:      l.MenuID,
			MenuName:    l.Name,
			DisplayName: l.Name,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.UnitPrice * int64(l.Quantity),
		})
	}

	if s.publisher != nil {
		if err := s.publisher.OrderCreated(ctx, view); err != nil {
			log.Error().Err(err).Str("order_number", number).Msg("service: failed to publish order-created event")
		}
	}

	log.Info().
		Int64("order_id", view.ID).
		Str("order_number", view.OrderNumber).
		Int64("total_amount", view.TotalAmount).
		Msg("service: order created")

	return view, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*View, error) {
	view, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) GetBySession(ctx context.Context, sessionID string) ([]View, error) {
	views, err := s.repo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch session orders: %w", err)
	}
	return views, nil
}

// GetRecent clamps limit to [1, 100], defaulting to 20 when non-positive.
func (s *service) GetRecent(ctx context.Context, storeID int64, limit int) ([]View, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	views, err := s.repo.GetRecentByStore(ctx, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch recent orders: %w", err)
	}
	return views, nil
}
