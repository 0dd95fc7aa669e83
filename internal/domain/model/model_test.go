package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"confirmed", OrderStatusConfirmed, "confirmed"},
		{"rejected", OrderStatusRejected, "rejected"},
		{"in process", OrderStatusInProcess, "inProcess"},
		{"in shipping", OrderStatusInShipping, "inShipping"},
		{"delivered", OrderStatusDelivered, "delivered"},
		{"processing", OrderStatusProcessing, "processing"},
		{"shipped", OrderStatusShipped, "shipped"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, status := range CanonicalOrderStatuses {
		got, ok := ParseOrderStatus(string(status))
		if !ok || got != status {
			t.Fatalf("expected %s to parse, got %q ok=%v", status, got, ok)
		}
	}

	for _, raw := range []string{"processing", "shipped", "PENDING", "", "cancelled"} {
		if _, ok := ParseOrderStatus(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestOrderStatusNormalize(t *testing.T) {
	if OrderStatusProcessing.Normalize() != OrderStatusInProcess {
		t.Fatalf("processing should normalize to inProcess")
	}
	if OrderStatusShipped.Normalize() != OrderStatusInShipping {
		t.Fatalf("shipped should normalize to inShipping")
	}
	if OrderStatusConfirmed.Normalize() != OrderStatusConfirmed {
		t.Fatalf("canonical status should be unchanged")
	}
	if !OrderStatusShipped.Known() || OrderStatus("lost").Known() {
		t.Fatalf("unexpected Known result")
	}
}

func TestParseStoreStatus(t *testing.T) {
	if s, ok := ParseStoreStatus("approved"); !ok || s != StoreStatusApproved {
		t.Fatalf("expected approved, got %q ok=%v", s, ok)
	}
	if _, ok := ParseStoreStatus("open"); ok {
		t.Fatal("expected unknown store status to be rejected")
	}
}

func TestRoleAndActor(t *testing.T) {
	if !RoleAdmin.Valid() || Role("root").Valid() {
		t.Fatalf("unexpected role validity")
	}
	if (Actor{Role: RoleUser}).Staff() {
		t.Fatalf("user must not be staff")
	}
	if !(Actor{Role: RoleSuperAdmin}).Staff() || !(Actor{Role: RoleAdmin}).Staff() {
		t.Fatalf("admins must be staff")
	}
}

func TestScopeView(t *testing.T) {
	order := Order{
		ID: 1,
		CartItems: []CartItem{
			{ProductID: 1, Price: decimal.NewFromInt(10), Quantity: 2},
			{ProductID: 2, Price: decimal.NewFromInt(5), Quantity: 1},
		},
		Status:      OrderStatusConfirmed,
		TotalAmount: decimal.NewFromInt(25),
	}

	adminA := AdminScope(7, []Product{{ID: 1, AdminID: 7}})
	if !adminA.Includes(order) {
		t.Fatalf("expected order to be in scope")
	}
	view := adminA.View(order)
	if !view.TotalAmount.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected scoped total 20, got %s", view.TotalAmount)
	}
	if len(view.CartItems) != 1 || view.CartItems[0].ProductID != 1 {
		t.Fatalf("unexpected scoped items: %+v", view.CartItems)
	}
	if len(order.CartItems) != 2 {
		t.Fatalf("view must not modify the source order")
	}

	other := AdminScope(9, []Product{{ID: 3, AdminID: 9}})
	if other.Includes(order) {
		t.Fatalf("order without owned items must not be in scope")
	}
	if !other.Revenue(order).IsZero() {
		t.Fatalf("expected zero revenue outside scope")
	}

	all := UnrestrictedScope()
	if got := all.View(order); !got.TotalAmount.Equal(decimal.NewFromInt(25)) || len(got.CartItems) != 2 {
		t.Fatalf("unrestricted view should keep the order, got %+v", got)
	}
	if !all.Revenue(order).Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected unrestricted revenue 25, got %s", all.Revenue(order))
	}
}

func TestProductSetIDs(t *testing.T) {
	set := NewProductSet([]Product{{ID: 3}, {ID: 1}, {ID: 2}})
	ids := set.IDs()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
