package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/repository"
)

const (
	lowStockThreshold = 5
	topProductsLimit  = 5
	recentOrdersLimit = 5
	salesDays         = 7
	anonymousUserName = "Anonymous"
)

// StatsUseCase aggregates orders and products into dashboard figures.
type StatsUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
	stores   repository.StoreRepository
	now      func() time.Time
}

// NewStatsUseCase constructs StatsUseCase using the wall clock.
func NewStatsUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	stores repository.StoreRepository,
) *StatsUseCase {
	return &StatsUseCase{orders: orders, products: products, users: users, stores: stores, now: time.Now}
}

// Dashboard computes the dashboard over every order visible to the actor.
func (u *StatsUseCase) Dashboard(ctx context.Context, actor model.Actor) (*model.DashboardStats, error) {
	scope, products, err := scopeFor(ctx, u.products, actor)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.List(ctx, orderFilter(scope))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	byID := make(map[int64]model.Product, len(products))
	stats := &model.DashboardStats{
		TotalProducts:   len(products),
		TotalOrders:     len(orders),
		TotalRevenue:    decimal.Zero,
		GrossRevenue:    decimal.Zero,
		SalesByCategory: map[string]decimal.Decimal{},
	}
	for _, p := range products {
		byID[p.ID] = p
		if p.TotalStock <= lowStockThreshold {
			stats.LowStockProducts++
		}
	}

	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusPending:
			stats.PendingOrders++
		case model.OrderStatusProcessing, model.OrderStatusShipped:
			stats.ProcessingOrders++
		case model.OrderStatusInProcess, model.OrderStatusInShipping:
			stats.InFulfillmentOrders++
		case model.OrderStatusDelivered:
			stats.CompletedOrders++
		}

		revenue := scope.Revenue(o)
		stats.GrossRevenue = stats.GrossRevenue.Add(revenue)
		if o.Status == model.OrderStatusConfirmed {
			stats.TotalRevenue = stats.TotalRevenue.Add(revenue)
		}

		for _, item := range scope.Items(o) {
			p, ok := byID[item.ProductID]
			if !ok || p.Category == "" {
				continue
			}
			stats.SalesByCategory[p.Category] = stats.SalesByCategory[p.Category].Add(item.Subtotal())
		}
	}

	stats.TopSellingProducts = topSelling(scope, orders, byID)
	stats.RecentOrders = recent(scope, orders)
	stats.Last7DaysSales = dailySales(scope, orders, u.now())
	return stats, nil
}

// Inventory splits the actor's products by stock level.
func (u *StatsUseCase) Inventory(ctx context.Context, actor model.Actor) (*model.InventoryStatus, error) {
	_, products, err := scopeFor(ctx, u.products, actor)
	if err != nil {
		return nil, err
	}

	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TotalStock < sorted[j].TotalStock })

	status := &model.InventoryStatus{
		LowStock:      []model.Product{},
		OutOfStock:    []model.Product{},
		HealthyStock:  []model.Product{},
		TotalProducts: len(sorted),
	}
	for _, p := range sorted {
		if p.TotalStock <= lowStockThreshold {
			status.LowStock = append(status.LowStock, p)
		} else {
			status.HealthyStock = append(status.HealthyStock, p)
		}
		if p.TotalStock == 0 {
			status.OutOfStock = append(status.OutOfStock, p)
		}
	}
	return status, nil
}

// Insights compares calendar windows ending now. Weeks start on Sunday.
func (u *StatsUseCase) Insights(ctx context.Context, actor model.Actor) (*model.BusinessInsights, error) {
	scope, _, err := scopeFor(ctx, u.products, actor)
	if err != nil {
		return nil, err
	}

	w := calendarFor(u.now())
	since := w.lastMonth
	if w.lastWeek.Before(since) {
		since = w.lastWeek
	}

	filter := orderFilter(scope)
	filter.Since = &since
	orders, err := u.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders since %s: %w", since.Format(time.RFC3339), err)
	}

	insights := &model.BusinessInsights{
		Today:     windowStats(scope, orders, w.today, time.Time{}),
		Yesterday: windowStats(scope, orders, w.yesterday, w.today),
		ThisWeek:  windowStats(scope, orders, w.thisWeek, time.Time{}),
		LastWeek:  windowStats(scope, orders, w.lastWeek, w.thisWeek),
		ThisMonth: windowStats(scope, orders, w.thisMonth, time.Time{}),
		LastMonth: windowStats(scope, orders, w.lastMonth, w.thisMonth),
	}
	insights.DailyGrowth = growth(insights.Today.Revenue, insights.Yesterday.Revenue)
	insights.WeeklyGrowth = growth(insights.ThisWeek.Revenue, insights.LastWeek.Revenue)
	insights.MonthlyGrowth = growth(insights.ThisMonth.Revenue, insights.LastMonth.Revenue)
	return insights, nil
}

// AdminSummary reports one admin's catalog size, orders and confirmed revenue.
func (u *StatsUseCase) AdminSummary(ctx context.Context, actor model.Actor, adminID int64) (*model.AdminSummary, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, errSuperAdminOnly
	}

	admin, err := u.users.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.Reason(domainErrors.ErrNotFound, "admin not found")
		}
		return nil, fmt.Errorf("get admin %d: %w", adminID, err)
	}
	if admin.Role != model.RoleAdmin {
		return nil, domainErrors.Reason(domainErrors.ErrNotFound, "admin not found")
	}

	scope, products, err := scopeFor(ctx, u.products, model.Actor{ID: adminID, Role: model.RoleAdmin})
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.List(ctx, orderFilter(scope))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	summary := &model.AdminSummary{
		AdminID:       adminID,
		ProductsCount: len(products),
		OrdersCount:   len(orders),
		Revenue:       decimal.Zero,
	}
	for _, o := range orders {
		if o.Status == model.OrderStatusConfirmed {
			summary.Revenue = summary.Revenue.Add(scope.Revenue(o))
		}
	}
	return summary, nil
}

// Platform summarizes the whole marketplace for a superadmin.
// Admins count once their store is approved; pending stores count as pending admins.
func (u *StatsUseCase) Platform(ctx context.Context, actor model.Actor) (*model.PlatformStats, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, errSuperAdminOnly
	}

	counts, err := u.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	approved, err := u.storeCount(ctx, model.StoreStatusApproved)
	if err != nil {
		return nil, err
	}
	pending, err := u.storeCount(ctx, model.StoreStatusPending)
	if err != nil {
		return nil, err
	}
	products, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	orders, err := u.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	stats := &model.PlatformStats{
		TotalUsers:    counts[model.RoleUser],
		TotalAdmins:   approved,
		PendingAdmins: pending,
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalRevenue:  decimal.Zero,
	}
	for _, o := range orders {
		if o.Status == model.OrderStatusConfirmed {
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		}
	}
	return stats, nil
}

func (u *StatsUseCase) storeCount(ctx context.Context, status model.StoreStatus) (int, error) {
	stores, err := u.stores.List(ctx, &status)
	if err != nil {
		return 0, fmt.Errorf("list %s stores: %w", status, err)
	}
	return len(stores), nil
}

// topSelling ranks in-scope products by quantity; ties keep first-seen order.
func topSelling(scope model.Scope, orders []model.Order, byID map[int64]model.Product) []model.TopProduct {
	index := map[int64]int{}
	ranked := []model.TopProduct{}
	for _, o := range orders {
		for _, item := range scope.Items(o) {
			if i, ok := index[item.ProductID]; ok {
				ranked[i].SoldCount += item.Quantity
				continue
			}
			entry := model.TopProduct{
				ProductID: item.ProductID,
				Title:     item.Title,
				Price:     item.Price,
				Image:     item.Image,
				SoldCount: item.Quantity,
			}
			if p, ok := byID[item.ProductID]; ok {
				entry.Image = p.Image
				entry.TotalStock = p.TotalStock
			}
			index[item.ProductID] = len(ranked)
			ranked = append(ranked, entry)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].SoldCount > ranked[j].SoldCount })
	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}
	return ranked
}

// recent summarizes the newest orders. orders must already be sorted newest first.
func recent(scope model.Scope, orders []model.Order) []model.RecentOrder {
	n := len(orders)
	if n > recentOrdersLimit {
		n = recentOrdersLimit
	}
	out := make([]model.RecentOrder, 0, n)
	for _, o := range orders[:n] {
		name := o.UserName
		if name == "" {
			name = anonymousUserName
		}
		out = append(out, model.RecentOrder{
			ID:          o.ID,
			OrderDate:   o.OrderDate,
			Status:      o.Status,
			TotalAmount: scope.View(o).TotalAmount,
			UserName:    name,
		})
	}
	return out
}

// dailySales buckets gross revenue into the last seven local calendar days, oldest first.
func dailySales(scope model.Scope, orders []model.Order, now time.Time) []model.DailySales {
	today := midnight(now)
	out := make([]model.DailySales, 0, salesDays)
	for i := salesDays - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1)
		out = append(out, model.DailySales{
			Date:   fmt.Sprintf("%d/%d", start.Day(), int(start.Month())),
			Amount: windowStats(scope, orders, start, end).Revenue,
		})
	}
	return out
}

// windowStats counts orders dated in [from, to). A zero to leaves the window open.
func windowStats(scope model.Scope, orders []model.Order, from, to time.Time) model.WindowStats {
	stats := model.WindowStats{Revenue: decimal.Zero}
	for _, o := range orders {
		if o.OrderDate.Before(from) {
			continue
		}
		if !to.IsZero() && !o.OrderDate.Before(to) {
			continue
		}
		stats.Orders++
		stats.Revenue = stats.Revenue.Add(scope.Revenue(o))
	}
	return stats
}

// growth is the percentage change from prev to cur, or 0 when prev is not positive.
func growth(cur, prev decimal.Decimal) float64 {
	if !prev.IsPositive() {
		return 0
	}
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

type calendar struct {
	today, yesterday     time.Time
	thisWeek, lastWeek   time.Time
	thisMonth, lastMonth time.Time
}

func calendarFor(now time.Time) calendar {
	today := midnight(now)
	thisWeek := today.AddDate(0, 0, -int(today.Weekday()))
	thisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return calendar{
		today:     today,
		yesterday: today.AddDate(0, 0, -1),
		thisWeek:  thisWeek,
		lastWeek:  thisWeek.AddDate(0, 0, -7),
		thisMonth: thisMonth,
		lastMonth: thisMonth.AddDate(0, -1, 0),
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
