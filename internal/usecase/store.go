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

// StoreUseCase runs the store approval workflow.
type StoreUseCase struct {
	stores repository.StoreRepository
	logger *slog.Logger
	newID  func() string
}

// NewStoreUseCase constructs StoreUseCase.
func NewStoreUseCase(stores repository.StoreRepository, logger *slog.Logger) *StoreUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreUseCase{stores: stores, logger: logger, newID: uuid.NewString}
}

// List returns stores, optionally only those with the given status.
func (u *StoreUseCase) List(ctx context.Context, actor model.Actor, status string) ([]model.Store, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, errSuperAdminOnly
	}

	var filter *model.StoreStatus
	if status != "" {
		parsed, ok := model.ParseStoreStatus(status)
		if !ok {
			return nil, domainErrors.Reason(domainErrors.ErrValidation, fmt.Sprintf("invalid store status %q", status))
		}
		filter = &parsed
	}

	stores, err := u.stores.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

// Decide approves or rejects a store and notifies its owner.
func (u *StoreUseCase) Decide(ctx context.Context, actor model.Actor, storeID int64, approve bool) (*model.Store, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, errSuperAdminOnly
	}

	store, err := u.stores.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.Reason(domainErrors.ErrNotFound, "store not found")
		}
		return nil, fmt.Errorf("get store %d: %w", storeID, err)
	}

	status, eventType := model.StoreStatusRejected, model.EventStoreRejected
	if approve {
		status, eventType = model.StoreStatusApproved, model.EventStoreApproved
	}

	payload, err := json.Marshal(model.StoreDecision{
		StoreID:   store.ID,
		OwnerID:   store.OwnerID,
		StoreName: store.StoreName,
		Status:    status,
		ActorID:   actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("encode store event: %w", err)
	}
	owner := store.OwnerID
	event := &model.Event{
		EventID:     u.newID(),
		Type:        eventType,
		AggregateID: store.ID,
		RecipientID: &owner,
		Payload:     payload,
	}

	if err := u.stores.UpdateStatus(ctx, store.ID, status, event); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.Reason(domainErrors.ErrNotFound, "store not found")
		}
		return nil, fmt.Errorf("update store %d: %w", store.ID, err)
	}

	u.logger.Info("store status changed",
		slog.Int64("store_id", store.ID),
		slog.String("status", string(status)),
		slog.Int64("actor_id", actor.ID),
	)
	store.Status = status
	return store, nil
}
