package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/pkg/apperrors"
	"github.com/cankurt/commune/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Every handler
// funnels its errors through here so the status codes and envelope stay
// consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrNotCommunityOwner),
		errors.Is(err, apperrors.ErrNotAllowedAccess):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrMissingToken),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
	case apperrors.IsConflict(err), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error().Err(err).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}
}

// HandleValidationError reports request binding failures. Gin's binding
// errors are wordy, so the response keeps a stable message and the
// details go to the log.
func HandleValidationError(c *gin.Context, err error) {
	logger.Debug().Err(err).Msg("Request validation failed")
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.ErrValidationFailed.Error()))
}
