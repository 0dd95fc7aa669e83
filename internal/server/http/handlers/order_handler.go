package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/dto"
)

// OrderHandler manages admin order endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// List handles GET /api/admin/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.AdminOrders(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.NewOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OK(response))
}

// Get handles GET /api/admin/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.AdminOrder(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewOrderResponse(*order)))
}

// UpdateStatus handles PUT /api/admin/orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("orderStatus is required"))
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), CurrentActor(c), id, req.OrderStatus)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Data:    dto.NewOrderResponse(*order),
		Message: "order status updated to " + string(order.Status),
	})
}
