package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/repository"
)

var (
	errStaffOnly      = domainErrors.Reason(domainErrors.ErrForbidden, "access denied, admin role required")
	errSuperAdminOnly = domainErrors.Reason(domainErrors.ErrForbidden, "access denied, superadmin role required")
)

// scopeFor resolves which cart items the actor may see, together with the products behind that scope.
func scopeFor(ctx context.Context, products repository.ProductRepository, actor model.Actor) (model.Scope, []model.Product, error) {
	switch actor.Role {
	case model.RoleSuperAdmin:
		all, err := products.ListAll(ctx)
		if err != nil {
			return model.Scope{}, nil, fmt.Errorf("list products: %w", err)
		}
		return model.UnrestrictedScope(), all, nil
	case model.RoleAdmin:
		owned, err := products.ListByAdmin(ctx, actor.ID)
		if err != nil {
			return model.Scope{}, nil, fmt.Errorf("list products of admin %d: %w", actor.ID, err)
		}
		return model.AdminScope(actor.ID, owned), owned, nil
	default:
		return model.Scope{}, nil, errStaffOnly
	}
}

// orderFilter pushes the scope down to the order store.
func orderFilter(scope model.Scope) repository.OrderFilter {
	if scope.Unrestricted {
		return repository.OrderFilter{}
	}
	return repository.OrderFilter{Restricted: true, ProductIDs: scope.Products.IDs()}
}

// hasStore reports whether an admin has registered a store.
func hasStore(ctx context.Context, stores repository.StoreRepository, adminID int64) (bool, error) {
	_, err := stores.GetByOwner(ctx, adminID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domainErrors.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("get store of admin %d: %w", adminID, err)
	}
}
