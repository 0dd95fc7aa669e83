package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ProductSet is a set of product identifiers.
type ProductSet map[int64]struct{}

// NewProductSet collects ids of the given products.
func NewProductSet(products []Product) ProductSet {
	set := make(ProductSet, len(products))
	for _, p := range products {
		set[p.ID] = struct{}{}
	}
	return set
}

// IDs returns the members in ascending order.
func (s ProductSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Scope restricts orders and revenue to the products of one admin.
// An unrestricted scope sees every cart item.
type Scope struct {
	Unrestricted bool
	AdminID      int64
	Products     ProductSet
}

// UnrestrictedScope is the superadmin view.
func UnrestrictedScope() Scope {
	return Scope{Unrestricted: true}
}

// AdminScope limits the view to the products owned by adminID.
func AdminScope(adminID int64, products []Product) Scope {
	return Scope{AdminID: adminID, Products: NewProductSet(products)}
}

// Owns reports whether a cart item with productID counts towards the scope.
func (s Scope) Owns(productID int64) bool {
	if s.Unrestricted {
		return true
	}
	_, ok := s.Products[productID]
	return ok
}

// Includes reports whether at least one item of the order is in scope.
func (s Scope) Includes(o Order) bool {
	for _, item := range o.CartItems {
		if s.Owns(item.ProductID) {
			return true
		}
	}
	return false
}

// Items returns the order items in scope, preserving order.
func (s Scope) Items(o Order) []CartItem {
	if s.Unrestricted {
		return o.CartItems
	}
	items := make([]CartItem, 0, len(o.CartItems))
	for _, item := range o.CartItems {
		if s.Owns(item.ProductID) {
			items = append(items, item)
		}
	}
	return items
}

// Revenue sums price times quantity over the in-scope items.
func (s Scope) Revenue(o Order) decimal.Decimal {
	return SumItems(s.Items(o))
}

// View returns a copy of the order with items and total reduced to the scope.
// Unrestricted views keep the stored total.
func (s Scope) View(o Order) Order {
	if s.Unrestricted {
		return o
	}
	items := s.Items(o)
	o.CartItems = items
	o.TotalAmount = SumItems(items)
	return o
}
