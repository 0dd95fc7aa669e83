package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry owned by exactly one admin.
type Product struct {
	ID         int64
	AdminID    int64
	StoreID    int64
	Title      string
	Category   string
	Price      decimal.Decimal
	TotalStock int
	Image      string
}

// StoreStatus tracks the approval workflow of a store.
type StoreStatus string

const (
	StoreStatusPending  StoreStatus = "pending"
	StoreStatusApproved StoreStatus = "approved"
	StoreStatusRejected StoreStatus = "rejected"
)

// ParseStoreStatus validates a store status filter value.
func ParseStoreStatus(s string) (StoreStatus, bool) {
	switch status := StoreStatus(s); status {
	case StoreStatusPending, StoreStatusApproved, StoreStatusRejected:
		return status, true
	}
	return "", false
}

// Store is the storefront an admin registers before selling.
type Store struct {
	ID               int64
	OwnerID          int64
	StoreName        string
	StoreDescription string
	Status           StoreStatus
	CreatedAt        time.Time
}
