package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/dto"
)

// StoreHandler serves the superadmin store approval endpoints.
type StoreHandler struct {
	facade StoreFacade
	logger *slog.Logger
}

func NewStoreHandler(facade StoreFacade, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{facade: facade, logger: logger}
}

// List handles GET /api/superadmin/stores.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.facade.Stores(c.Request.Context(), CurrentActor(c), c.Query("status"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		response = append(response, dto.NewStoreResponse(s))
	}
	c.JSON(http.StatusOK, dto.OK(response))
}

// Approve handles PUT /api/superadmin/stores/:id/approve.
func (h *StoreHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject handles PUT /api/superadmin/stores/:id/reject.
func (h *StoreHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *StoreHandler) decide(c *gin.Context, approve bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	store, err := h.facade.DecideStore(c.Request.Context(), CurrentActor(c), id, approve)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Data:    dto.NewStoreResponse(*store),
		Message: "store " + string(store.Status),
	})
}
