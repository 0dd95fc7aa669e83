package handlers

import (
	"context"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(ctx context.Context, phone, password string) (*model.User, string, error)
	ParseToken(token string) (model.Actor, error)
}

// OrderFacade encapsulates admin order operations exposed via HTTP.
type OrderFacade interface {
	AdminOrders(ctx context.Context, actor model.Actor) ([]model.Order, error)
	AdminOrder(ctx context.Context, actor model.Actor, id int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, actor model.Actor, id int64, status string) (*model.Order, error)
}

// StatsFacade provides reporting operations.
type StatsFacade interface {
	Dashboard(ctx context.Context, actor model.Actor) (*model.DashboardStats, error)
	InventoryStatus(ctx context.Context, actor model.Actor) (*model.InventoryStatus, error)
	BusinessInsights(ctx context.Context, actor model.Actor) (*model.BusinessInsights, error)
	AdminSummary(ctx context.Context, actor model.Actor, adminID int64) (*model.AdminSummary, error)
	PlatformStats(ctx context.Context, actor model.Actor) (*model.PlatformStats, error)
}

// StoreFacade provides the store approval workflow.
type StoreFacade interface {
	Stores(ctx context.Context, actor model.Actor, status string) ([]model.Store, error)
	DecideStore(ctx context.Context, actor model.Actor, id int64, approve bool) (*model.Store, error)
}

type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	OrderFacade
	StatsFacade
	StoreFacade
	HealthFacade
}
