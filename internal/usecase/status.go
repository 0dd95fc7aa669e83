package usecase

import (
	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// transitions lists the allowed next statuses for every canonical status.
// rejected is terminal.
var transitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusRejected},
	model.OrderStatusConfirmed:  {model.OrderStatusInProcess, model.OrderStatusRejected},
	model.OrderStatusInProcess:  {model.OrderStatusInShipping, model.OrderStatusRejected},
	model.OrderStatusInShipping: {model.OrderStatusDelivered, model.OrderStatusRejected},
	model.OrderStatusDelivered:  {model.OrderStatusRejected},
	model.OrderStatusRejected:   {},
}

// AllowedTransitions returns the statuses reachable from current.
// Legacy statuses follow their canonical counterparts.
func AllowedTransitions(current model.OrderStatus) []model.OrderStatus {
	return transitions[current.Normalize()]
}

// Transition checks that requested may follow current.
func Transition(current, requested model.OrderStatus) error {
	if !requested.Canonical() {
		return domainErrors.ErrValidation
	}

	allowed := AllowedTransitions(current)
	for _, next := range allowed {
		if next == requested {
			return nil
		}
	}

	names := make([]string, 0, len(allowed))
	for _, next := range allowed {
		names = append(names, string(next))
	}
	return &domainErrors.InvalidTransitionError{From: string(current), To: string(requested), Allowed: names}
}
