package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/pkg/apperrors"
	"github.com/studyhub/backend/internal/pkg/logger"
)

// HandleAPIError converts service errors to HTTP responses. Store
// failures never leak detail to the client; they are logged and
// reported as a generic internal error.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail("invalid username or password"))
	case errors.Is(err, apperrors.ErrTokenMissing),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenMalformed),
		errors.Is(err, apperrors.ErrRoleMismatch):
		c.JSON(http.StatusUnauthorized, dto.Fail("authentication required"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.Fail(messageOf(err, "permission denied")))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword):
		c.JSON(http.StatusBadRequest, dto.Fail(messageOf(err, "validation failed")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.Fail(messageOf(err, "already exists")))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(messageOf(err, "not found")))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}

// messageOf prefers the wrapped CustomError message when present.
func messageOf(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
