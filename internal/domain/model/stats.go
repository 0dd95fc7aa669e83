package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopProduct is a product ranked by quantity sold.
type TopProduct struct {
	ProductID  int64
	Title      string
	Price      decimal.Decimal
	Image      string
	TotalStock int
	SoldCount  int
}

// RecentOrder is a scoped summary of one of the newest orders.
type RecentOrder struct {
	ID          int64
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount decimal.Decimal
	UserName    string
}

// DailySales is the gross scoped revenue of one calendar day.
type DailySales struct {
	Date   string
	Amount decimal.Decimal
}

// DashboardStats is the admin dashboard aggregate.
type DashboardStats struct {
	TotalProducts       int
	LowStockProducts    int
	TotalOrders         int
	PendingOrders       int
	ProcessingOrders    int
	InFulfillmentOrders int
	CompletedOrders     int
	// TotalRevenue counts confirmed orders only.
	TotalRevenue decimal.Decimal
	// GrossRevenue counts every status.
	GrossRevenue       decimal.Decimal
	TopSellingProducts []TopProduct
	RecentOrders       []RecentOrder
	SalesByCategory    map[string]decimal.Decimal
	Last7DaysSales     []DailySales
}

// InventoryStatus splits scoped products by stock level, lowest stock first.
type InventoryStatus struct {
	LowStock      []Product
	OutOfStock    []Product
	HealthyStock  []Product
	TotalProducts int
}

// WindowStats is order volume and gross revenue inside a time window.
type WindowStats struct {
	Orders  int
	Revenue decimal.Decimal
}

// BusinessInsights compares calendar windows.
type BusinessInsights struct {
	Today         WindowStats
	Yesterday     WindowStats
	ThisWeek      WindowStats
	LastWeek      WindowStats
	ThisMonth     WindowStats
	LastMonth     WindowStats
	DailyGrowth   float64
	WeeklyGrowth  float64
	MonthlyGrowth float64
}

// AdminSummary is the per-admin figure set shown to superadmins.
type AdminSummary struct {
	AdminID       int64
	ProductsCount int
	OrdersCount   int
	Revenue       decimal.Decimal
}

// PlatformStats is the marketplace-wide overview shown to superadmins.
type PlatformStats struct {
	TotalUsers    int
	TotalAdmins   int
	PendingAdmins int
	TotalProducts int
	TotalOrders   int
	TotalRevenue  decimal.Decimal
}
