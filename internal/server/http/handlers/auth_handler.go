package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/dto"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/middleware"
)

// AuthHandler processes login.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("phoneNumber and password are required"))
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.OK(dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, UserName: user.UserName, Role: string(user.Role)},
	}))
}
