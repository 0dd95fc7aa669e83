package dto

import (
	"time"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

type TopProductResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
	TotalStock int     `json:"totalStock"`
	SoldCount  int     `json:"soldCount"`
}

type RecentOrderResponse struct {
	ID          int64     `json:"id"`
	OrderDate   time.Time `json:"orderDate"`
	OrderStatus string    `json:"orderStatus"`
	TotalAmount float64   `json:"totalAmount"`
	UserName    string    `json:"userName"`
}

type DailySalesResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// DashboardResponse is the body of GET /api/admin/stats.
type DashboardResponse struct {
	TotalProducts       int                   `json:"totalProducts"`
	LowStockProducts    int                   `json:"lowStockProducts"`
	TotalOrders         int                   `json:"totalOrders"`
	PendingOrders       int                   `json:"pendingOrders"`
	ProcessingOrders    int                   `json:"processingOrders"`
	InFulfillmentOrders int                   `json:"inFulfillmentOrders"`
	CompletedOrders     int                   `json:"completedOrders"`
	TotalRevenue        float64               `json:"totalRevenue"`
	GrossRevenue        float64               `json:"grossRevenue"`
	TopSellingProducts  []TopProductResponse  `json:"topSellingProducts"`
	RecentOrders        []RecentOrderResponse `json:"recentOrders"`
	SalesByCategory     map[string]float64    `json:"salesByCategory"`
	Last7DaysSales      []DailySalesResponse  `json:"last7DaysSales"`
}

func NewDashboardResponse(s *model.DashboardStats) DashboardResponse {
	resp := DashboardResponse{
		TotalProducts:       s.TotalProducts,
		LowStockProducts:    s.LowStockProducts,
		TotalOrders:         s.TotalOrders,
		PendingOrders:       s.PendingOrders,
		ProcessingOrders:    s.ProcessingOrders,
		InFulfillmentOrders: s.InFulfillmentOrders,
		CompletedOrders:     s.CompletedOrders,
		TotalRevenue:        s.TotalRevenue.InexactFloat64(),
		GrossRevenue:        s.GrossRevenue.InexactFloat64(),
		TopSellingProducts:  make([]TopProductResponse, 0, len(s.TopSellingProducts)),
		RecentOrders:        make([]RecentOrderResponse, 0, len(s.RecentOrders)),
		SalesByCategory:     make(map[string]float64, len(s.SalesByCategory)),
		Last7DaysSales:      make([]DailySalesResponse, 0, len(s.Last7DaysSales)),
	}
	for _, p := range s.TopSellingProducts {
		resp.TopSellingProducts = append(resp.TopSellingProducts, TopProductResponse{
			ID:         p.ProductID,
			Title:      p.Title,
			Price:      p.Price.InexactFloat64(),
			Image:      p.Image,
			TotalStock: p.TotalStock,
			SoldCount:  p.SoldCount,
		})
	}
	for _, o := range s.RecentOrders {
		resp.RecentOrders = append(resp.RecentOrders, RecentOrderResponse{
			ID:          o.ID,
			OrderDate:   o.OrderDate,
			OrderStatus: string(o.Status),
			TotalAmount: o.TotalAmount.InexactFloat64(),
			UserName:    o.UserName,
		})
	}
	for category, amount := range s.SalesByCategory {
		resp.SalesByCategory[category] = amount.InexactFloat64()
	}
	for _, d := range s.Last7DaysSales {
		resp.Last7DaysSales = append(resp.Last7DaysSales, DailySalesResponse{Date: d.Date, Amount: d.Amount.InexactFloat64()})
	}
	return resp
}

type ProductResponse struct {
	ID         int64   `json:"id"`
	StoreID    int64   `json:"storeId"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	TotalStock int     `json:"totalStock"`
	Image      string  `json:"image,omitempty"`
}

// InventoryResponse is the body of GET /api/admin/inventory-status.
type InventoryResponse struct {
	LowStock      []ProductResponse `json:"lowStock"`
	OutOfStock    []ProductResponse `json:"outOfStock"`
	HealthyStock  []ProductResponse `json:"healthyStock"`
	TotalProducts int               `json:"totalProducts"`
}

func NewInventoryResponse(s *model.InventoryStatus) InventoryResponse {
	return InventoryResponse{
		LowStock:      productResponses(s.LowStock),
		OutOfStock:    productResponses(s.OutOfStock),
		HealthyStock:  productResponses(s.HealthyStock),
		TotalProducts: s.TotalProducts,
	}
}

func productResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:         p.ID,
			StoreID:    p.StoreID,
			Title:      p.Title,
			Category:   p.Category,
			Price:      p.Price.InexactFloat64(),
			TotalStock: p.TotalStock,
			Image:      p.Image,
		})
	}
	return out
}

type WindowResponse struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// InsightsResponse is the body of GET /api/admin/business-insights.
type InsightsResponse struct {
	Today         WindowResponse `json:"today"`
	Yesterday     WindowResponse `json:"yesterday"`
	ThisWeek      WindowResponse `json:"thisWeek"`
	LastWeek      WindowResponse `json:"lastWeek"`
	ThisMonth     WindowResponse `json:"thisMonth"`
	LastMonth     WindowResponse `json:"lastMonth"`
	DailyGrowth   float64        `json:"dailyGrowth"`
	WeeklyGrowth  float64        `json:"weeklyGrowth"`
	MonthlyGrowth float64        `json:"monthlyGrowth"`
}

func NewInsightsResponse(i *model.BusinessInsights) InsightsResponse {
	return InsightsResponse{
		Today:         window(i.Today),
		Yesterday:     window(i.Yesterday),
		ThisWeek:      window(i.ThisWeek),
		LastWeek:      window(i.LastWeek),
		ThisMonth:     window(i.ThisMonth),
		LastMonth:     window(i.LastMonth),
		DailyGrowth:   i.DailyGrowth,
		WeeklyGrowth:  i.WeeklyGrowth,
		MonthlyGrowth: i.MonthlyGrowth,
	}
}

func window(w model.WindowStats) WindowResponse {
	return WindowResponse{Orders: w.Orders, Revenue: w.Revenue.InexactFloat64()}
}

// AdminSummaryResponse is the body of GET /api/superadmin/admins/:id/stats.
type AdminSummaryResponse struct {
	AdminID       int64   `json:"adminId"`
	ProductsCount int     `json:"productsCount"`
	OrdersCount   int     `json:"ordersCount"`
	Revenue       float64 `json:"revenue"`
}

func NewAdminSummaryResponse(s *model.AdminSummary) AdminSummaryResponse {
	return AdminSummaryResponse{
		AdminID:       s.AdminID,
		ProductsCount: s.ProductsCount,
		OrdersCount:   s.OrdersCount,
		Revenue:       s.Revenue.InexactFloat64(),
	}
}

// PlatformStatsResponse is the body of GET /api/superadmin/stats.
type PlatformStatsResponse struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalAdmins   int     `json:"totalAdmins"`
	PendingAdmins int     `json:"pendingAdmins"`
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

func NewPlatformStatsResponse(s *model.PlatformStats) PlatformStatsResponse {
	return PlatformStatsResponse{
		TotalUsers:    s.TotalUsers,
		TotalAdmins:   s.TotalAdmins,
		PendingAdmins: s.PendingAdmins,
		TotalProducts: s.TotalProducts,
		TotalOrders:   s.TotalOrders,
		TotalRevenue:  s.TotalRevenue.InexactFloat64(),
	}
}
