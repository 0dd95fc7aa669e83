package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusRejected   OrderStatus = "rejected"
	OrderStatusInProcess  OrderStatus = "inProcess"
	OrderStatusInShipping OrderStatus = "inShipping"
	OrderStatusDelivered  OrderStatus = "delivered"

	// Legacy values still present on stored orders. They are never accepted as targets.
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
)

// CanonicalOrderStatuses lists the statuses a transition may target.
var CanonicalOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusRejected,
	OrderStatusInProcess,
	OrderStatusInShipping,
	OrderStatusDelivered,
}

// ParseOrderStatus accepts canonical status names only.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	if status.Canonical() {
		return status, true
	}
	return "", false
}

// Canonical reports whether the status is one of the six lifecycle states.
func (s OrderStatus) Canonical() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusRejected,
		OrderStatusInProcess, OrderStatusInShipping, OrderStatusDelivered:
		return true
	}
	return false
}

// Known reports whether the status can appear on a stored order.
func (s OrderStatus) Known() bool {
	return s.Canonical() || s == OrderStatusProcessing || s == OrderStatusShipped
}

// Normalize maps legacy statuses onto their canonical counterparts.
func (s OrderStatus) Normalize() OrderStatus {
	switch s {
	case OrderStatusProcessing:
		return OrderStatusInProcess
	case OrderStatusShipped:
		return OrderStatusInShipping
	}
	return s
}

// CartItem is a purchased line captured at checkout.
type CartItem struct {
	ProductID int64
	Title     string
	Price     decimal.Decimal
	Quantity  int
	Image     string
}

// Subtotal returns price multiplied by quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order describes a customer purchase spanning products of one or more admins.
type Order struct {
	ID          int64
	UserID      int64
	UserName    string
	CartItems   []CartItem
	Status      OrderStatus
	TotalAmount decimal.Decimal
	OrderDate   time.Time
}

// SumItems totals price times quantity over the given items.
func SumItems(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
