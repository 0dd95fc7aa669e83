package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/repository"
)

// TransitionRecorder observes applied status changes.
type TransitionRecorder interface {
	RecordTransition(from, to model.OrderStatus)
}

// OrderUseCase exposes admin-scoped order access and the status lifecycle.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	stores   repository.StoreRepository
	recorder TransitionRecorder
	logger   *slog.Logger
	newID    func() string
}

// NewOrderUseCase constructs OrderUseCase. recorder may be nil.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	stores repository.StoreRepository,
	recorder TransitionRecorder,
	logger *slog.Logger,
) *OrderUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderUseCase{
		orders:   orders,
		products: products,
		stores:   stores,
		recorder: recorder,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// List returns the orders visible to the actor, newest first.
// Admins see only their own items and a total recomputed over them.
func (u *OrderUseCase) List(ctx context.Context, actor model.Actor) ([]model.Order, error) {
	if !actor.Staff() {
		return nil, errStaffOnly
	}
	if actor.Role == model.RoleAdmin {
		ok, err := hasStore(ctx, u.stores, actor.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domainErrors.Reason(domainErrors.ErrNotFound, "store not found")
		}
	}

	scope, _, err := scopeFor(ctx, u.products, actor)
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.List(ctx, orderFilter(scope))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if scope.Includes(o) {
			views = append(views, scope.View(o))
		}
	}
	return views, nil
}

// Get returns one order as seen by the actor.
func (u *OrderUseCase) Get(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error) {
	order, scope, err := u.load(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	view := scope.View(*order)
	return &view, nil
}

// UpdateStatus moves an order to requested if the lifecycle allows it.
// The change is applied only if nobody else changed the status in between.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor model.Actor, orderID int64, requested string) (*model.Order, error) {
	if !actor.Staff() {
		return nil, errStaffOnly
	}
	next, ok := model.ParseOrderStatus(requested)
	if !ok {
		return nil, domainErrors.Reason(domainErrors.ErrValidation, fmt.Sprintf("invalid order status %q", requested))
	}

	order, scope, err := u.load(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	current := order.Status
	if err := Transition(current, next); err != nil {
		return nil, err
	}

	event, err := u.statusEvent(actor, order, next)
	if err != nil {
		return nil, err
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, current, next, event); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrConflict):
			return nil, domainErrors.Reason(domainErrors.ErrConflict, "order status was changed by another request, reload and retry")
		case errors.Is(err, domainErrors.ErrNotFound):
			return nil, domainErrors.Reason(domainErrors.ErrNotFound, "order not found")
		}
		return nil, fmt.Errorf("update order %d status: %w", order.ID, err)
	}

	u.logger.Info("order status changed",
		slog.Int64("order_id", order.ID),
		slog.String("from", string(current)),
		slog.String("to", string(next)),
		slog.Int64("actor_id", actor.ID),
		slog.String("actor_role", string(actor.Role)),
	)
	if u.recorder != nil {
		u.recorder.RecordTransition(current, next)
	}

	order.Status = next
	view := scope.View(*order)
	return &view, nil
}

// load fetches an order and checks that the actor may act on it.
// A missing order is reported before any store or ownership check.
func (u *OrderUseCase) load(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, model.Scope, error) {
	if !actor.Staff() {
		return nil, model.Scope{}, errStaffOnly
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, model.Scope{}, domainErrors.Reason(domainErrors.ErrNotFound, "order not found")
		}
		return nil, model.Scope{}, fmt.Errorf("get order %d: %w", orderID, err)
	}

	if actor.Role == model.RoleAdmin {
		ok, err := hasStore(ctx, u.stores, actor.ID)
		if err != nil {
			return nil, model.Scope{}, err
		}
		if !ok {
			return nil, model.Scope{}, domainErrors.Reason(domainErrors.ErrForbidden, "you need a store to manage orders")
		}
	}

	scope, _, err := scopeFor(ctx, u.products, actor)
	if err != nil {
		return nil, model.Scope{}, err
	}
	if !scope.Includes(*order) {
		return nil, model.Scope{}, domainErrors.Reason(domainErrors.ErrForbidden, "order does not contain your products")
	}
	return order, scope, nil
}

func (u *OrderUseCase) statusEvent(actor model.Actor, order *model.Order, next model.OrderStatus) (*model.Event, error) {
	payload, err := json.Marshal(model.OrderStatusChanged{
		OrderID:   order.ID,
		UserID:    order.UserID,
		From:      order.Status,
		To:        next,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("encode status event: %w", err)
	}

	recipient := order.UserID
	return &model.Event{
		EventID:     u.newID(),
		Type:        model.EventOrderStatusChanged,
		AggregateID: order.ID,
		RecipientID: &recipient,
		Payload:     payload,
	}, nil
}
