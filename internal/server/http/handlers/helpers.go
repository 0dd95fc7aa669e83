package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/dto"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/middleware"
)

// CurrentActor extracts the authenticated actor from context.
func CurrentActor(c *gin.Context) model.Actor {
	actor, _ := middleware.CurrentActor(c)
	return actor
}

// respondError maps domain errors to status codes. Unexpected errors are logged and hidden.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail("invalid phone number or password"))
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(err.Error()))
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, domainErrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	default:
		logger.Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", c.GetString(middleware.RequestIDContextKey)),
			slog.Any("error", err),
		)
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}

// pathID parses a positive numeric path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid "+name))
		return 0, false
	}
	return id, true
}
