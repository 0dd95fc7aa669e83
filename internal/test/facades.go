package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for admin order endpoints.
type OrderFacadeStub struct {
	OrdersFn func(context.Context, model.Actor) ([]model.Order, error)
	OrderFn  func(context.Context, model.Actor, int64) (*model.Order, error)
	UpdateFn func(context.Context, model.Actor, int64, string) (*model.Order, error)
}

// AdminOrders returns configured orders or a single pending one.
func (s OrderFacadeStub) AdminOrders(ctx context.Context, actor model.Actor) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, actor)
	}
	return []model.Order{SampleOrder(1, model.OrderStatusPending)}, nil
}

// AdminOrder returns configured order or a sample with the requested id.
func (s OrderFacadeStub) AdminOrder(ctx context.Context, actor model.Actor, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, actor, id)
	}
	order := SampleOrder(id, model.OrderStatusPending)
	return &order, nil
}

// UpdateOrderStatus echoes the requested status by default.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, actor model.Actor, id int64, status string) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, id, status)
	}
	order := SampleOrder(id, model.OrderStatus(status))
	return &order, nil
}

// StatsFacadeStub simulates reporting endpoints.
type StatsFacadeStub struct {
	DashboardFn func(context.Context, model.Actor) (*model.DashboardStats, error)
	InventoryFn func(context.Context, model.Actor) (*model.InventoryStatus, error)
	InsightsFn  func(context.Context, model.Actor) (*model.BusinessInsights, error)
	SummaryFn   func(context.Context, model.Actor, int64) (*model.AdminSummary, error)
	PlatformFn  func(context.Context, model.Actor) (*model.PlatformStats, error)
}

// Dashboard returns configured stats or an empty dashboard.
func (s StatsFacadeStub) Dashboard(ctx context.Context, actor model.Actor) (*model.DashboardStats, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, actor)
	}
	return &model.DashboardStats{SalesByCategory: map[string]decimal.Decimal{}}, nil
}

// InventoryStatus returns configured inventory or an empty one.
func (s StatsFacadeStub) InventoryStatus(ctx context.Context, actor model.Actor) (*model.InventoryStatus, error) {
	if s.InventoryFn != nil {
		return s.InventoryFn(ctx, actor)
	}
	return &model.InventoryStatus{}, nil
}

// BusinessInsights returns configured insights or zero windows.
func (s StatsFacadeStub) BusinessInsights(ctx context.Context, actor model.Actor) (*model.BusinessInsights, error) {
	if s.InsightsFn != nil {
		return s.InsightsFn(ctx, actor)
	}
	return &model.BusinessInsights{}, nil
}

// AdminSummary returns configured summary or an empty one for adminID.
func (s StatsFacadeStub) AdminSummary(ctx context.Context, actor model.Actor, adminID int64) (*model.AdminSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, actor, adminID)
	}
	return &model.AdminSummary{AdminID: adminID}, nil
}

// PlatformStats returns configured stats or an empty overview.
func (s StatsFacadeStub) PlatformStats(ctx context.Context, actor model.Actor) (*model.PlatformStats, error) {
	if s.PlatformFn != nil {
		return s.PlatformFn(ctx, actor)
	}
	return &model.PlatformStats{TotalRevenue: decimal.Zero}, nil
}

// StoreFacadeStub simulates the approval workflow.
type StoreFacadeStub struct {
	StoresFn func(context.Context, model.Actor, string) ([]model.Store, error)
	DecideFn func(context.Context, model.Actor, int64, bool) (*model.Store, error)
}

// Stores returns configured stores or one pending store.
func (s StoreFacadeStub) Stores(ctx context.Context, actor model.Actor, status string) ([]model.Store, error) {
	if s.StoresFn != nil {
		return s.StoresFn(ctx, actor, status)
	}
	return []model.Store{{ID: 1, OwnerID: 2, StoreName: "Momo", Status: model.StoreStatusPending}}, nil
}

// DecideStore returns the store with the decided status.
func (s StoreFacadeStub) DecideStore(ctx context.Context, actor model.Actor, id int64, approve bool) (*model.Store, error) {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, actor, id, approve)
	}
	status := model.StoreStatusRejected
	if approve {
		status = model.StoreStatusApproved
	}
	return &model.Store{ID: id, OwnerID: 2, StoreName: "Momo", Status: status}, nil
}

// HealthFacadeStub reports configured health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	StatsFacadeStub
	StoreFacadeStub
	HealthFacadeStub
}

// SampleOrder builds an order with two items worth 25 in total.
func SampleOrder(id int64, status model.OrderStatus) model.Order {
	return model.Order{
		ID:       id,
		UserID:   7,
		UserName: "Asha",
		CartItems: []model.CartItem{
			{ProductID: 1, Title: "Muffin", Price: decimal.NewFromInt(10), Quantity: 2, Image: "muffin.png"},
			{ProductID: 2, Title: "Momo", Price: decimal.NewFromInt(5), Quantity: 1},
		},
		Status:      status,
		TotalAmount: decimal.NewFromInt(25),
		OrderDate:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

// EventFacadeStub mimics dispatcher interactions with the application facade.
type EventFacadeStub struct {
	Batches   [][]model.Event
	ClaimFn   func(context.Context, int) ([]model.Event, error)
	DeliverFn func(context.Context, model.Event) error
	AckFn     func(context.Context, int64) error
	RetryFn   func(context.Context, int64) error

	Delivered []model.Event
	Acked     []int64
	Retried   []int64
	claims    int
	mu        sync.Mutex
}

// Lock exposes internal mutex for external synchronization.
func (s *EventFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *EventFacadeStub) Unlock() { s.mu.Unlock() }

// ClaimEvents returns batches from the configured queue, then nothing.
func (s *EventFacadeStub) ClaimEvents(ctx context.Context, limit int) ([]model.Event, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claims < len(s.Batches) {
		batch := s.Batches[s.claims]
		s.claims++
		return batch, nil
	}
	return nil, nil
}

// DeliverEvent records the event unless an override fails it.
func (s *EventFacadeStub) DeliverEvent(ctx context.Context, event model.Event) error {
	if s.DeliverFn != nil {
		if err := s.DeliverFn(ctx, event); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Delivered = append(s.Delivered, event)
	return nil
}

// AckEvent records acknowledged ids.
func (s *EventFacadeStub) AckEvent(ctx context.Context, id int64) error {
	if s.AckFn != nil {
		return s.AckFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Acked = append(s.Acked, id)
	return nil
}

// RetryEvent records released ids.
func (s *EventFacadeStub) RetryEvent(ctx context.Context, id int64) error {
	if s.RetryFn != nil {
		return s.RetryFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Retried = append(s.Retried, id)
	return nil
}

// PublisherStub records published events.
type PublisherStub struct {
	Err       error
	Published []model.Event
	Closed    bool
	mu        sync.Mutex
}

// Publish records the event and returns the configured error.
func (p *PublisherStub) Publish(_ context.Context, event model.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Published = append(p.Published, event)
	return nil
}

// Close marks the publisher closed.
func (p *PublisherStub) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Closed = true
	return nil
}
