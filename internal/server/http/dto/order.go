package dto

import (
	"time"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// UpdateOrderStatusRequest is the body of PUT /api/admin/orders/:id.
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

// CartItemResponse mirrors a purchased line.
type CartItemResponse struct {
	ProductID int64   `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// OrderResponse is an order as seen by the caller.
type OrderResponse struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"userId"`
	UserName    string             `json:"userName,omitempty"`
	CartItems   []CartItemResponse `json:"cartItems"`
	OrderStatus string             `json:"orderStatus"`
	TotalAmount float64            `json:"totalAmount"`
	OrderDate   time.Time          `json:"orderDate"`
}

// NewOrderResponse converts a domain order.
func NewOrderResponse(o model.Order) OrderResponse {
	items := make([]CartItemResponse, 0, len(o.CartItems))
	for _, item := range o.CartItems {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price.InexactFloat64(),
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}
	return OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		UserName:    o.UserName,
		CartItems:   items,
		OrderStatus: string(o.Status),
		TotalAmount: o.TotalAmount.InexactFloat64(),
		OrderDate:   o.OrderDate,
	}
}
