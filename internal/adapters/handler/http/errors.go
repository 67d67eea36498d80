package http

import (
	"errors"
	"net/http"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrUnknownPreference),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrRangeTooLarge),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrPasscodeTooShort),
		errors.Is(err, domain.ErrPasscodeTooLong):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDayNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrGoalReached),
		errors.Is(err, domain.ErrProfileExists):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrQuotesHidden):
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreWrite):
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "failed to save data, please try again"})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
