package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/repository"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/usecase"
)

// EventPublisher hands outbox events to the notification transport.
type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

// PublishRecorder observes publish outcomes.
type PublishRecorder interface {
	RecordPublish(eventType model.EventType, err error)
}

// HealthChecker reports whether storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// FacadeParams lists the facade collaborators.
type FacadeParams struct {
	fx.In

	Auth      *usecase.AuthUseCase
	Orders    *usecase.OrderUseCase
	Stats     *usecase.StatsUseCase
	Stores    *usecase.StoreUseCase
	Events    repository.EventRepository
	Publisher EventPublisher
	Health    HealthChecker
	Recorder  PublishRecorder `optional:"true"`
}

// StorefrontFacade is the single entry point used by HTTP handlers and the event dispatcher.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.OrderUseCase
	stats     *usecase.StatsUseCase
	stores    *usecase.StoreUseCase
	events    repository.EventRepository
	publisher EventPublisher
	health    HealthChecker
	recorder  PublishRecorder
}

func NewStorefrontFacade(p FacadeParams) *StorefrontFacade {
	return &StorefrontFacade{
		auth:      p.Auth,
		orders:    p.Orders,
		stats:     p.Stats,
		stores:    p.Stores,
		events:    p.Events,
		publisher: p.Publisher,
		health:    p.Health,
		recorder:  p.Recorder,
	}
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, phone, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, phone, password)
}

func (f *StorefrontFacade) ParseToken(token string) (model.Actor, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) AdminOrders(ctx context.Context, actor model.Actor) ([]model.Order, error) {
	return f.orders.List(ctx, actor)
}

func (f *StorefrontFacade) AdminOrder(ctx context.Context, actor model.Actor, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, actor, id)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, actor model.Actor, id int64, status string) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, actor, id, status)
}

func (f *StorefrontFacade) Dashboard(ctx context.Context, actor model.Actor) (*model.DashboardStats, error) {
	return f.stats.Dashboard(ctx, actor)
}

func (f *StorefrontFacade) InventoryStatus(ctx context.Context, actor model.Actor) (*model.InventoryStatus, error) {
	return f.stats.Inventory(ctx, actor)
}

func (f *StorefrontFacade) BusinessInsights(ctx context.Context, actor model.Actor) (*model.BusinessInsights, error) {
	return f.stats.Insights(ctx, actor)
}

func (f *StorefrontFacade) AdminSummary(ctx context.Context, actor model.Actor, adminID int64) (*model.AdminSummary, error) {
	return f.stats.AdminSummary(ctx, actor, adminID)
}

func (f *StorefrontFacade) PlatformStats(ctx context.Context, actor model.Actor) (*model.PlatformStats, error) {
	return f.stats.Platform(ctx, actor)
}

func (f *StorefrontFacade) Stores(ctx context.Context, actor model.Actor, status string) ([]model.Store, error) {
	return f.stores.List(ctx, actor, status)
}

func (f *StorefrontFacade) DecideStore(ctx context.Context, actor model.Actor, id int64, approve bool) (*model.Store, error) {
	return f.stores.Decide(ctx, actor, id, approve)
}

func (f *StorefrontFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *StorefrontFacade) ClaimEvents(ctx context.Context, limit int) ([]model.Event, error) {
	return f.events.ClaimBatch(ctx, limit)
}

func (f *StorefrontFacade) DeliverEvent(ctx context.Context, event model.Event) error {
	err := f.publisher.Publish(ctx, event)
	if f.recorder != nil {
		f.recorder.RecordPublish(event.Type, err)
	}
	return err
}

func (f *StorefrontFacade) AckEvent(ctx context.Context, id int64) error {
	return f.events.MarkSent(ctx, id)
}

func (f *StorefrontFacade) RetryEvent(ctx context.Context, id int64) error {
	return f.events.Release(ctx, id)
}
