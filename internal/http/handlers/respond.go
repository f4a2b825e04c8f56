package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/geocoder89/videomatch/internal/catalog"
	"github.com/geocoder89/videomatch/internal/domain/event"
	"github.com/geocoder89/videomatch/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	if id := ctx.GetString(middlewares.CtxRequestID); id != "" {
		return id
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"error": APIError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
			Details:   details,
		},
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, "not_found", message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}

func RespondConflict(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusConflict, code, message, nil)
}

func RespondUnauthorized(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusUnauthorized, "unauthorized", message, nil)
}

// respondCatalogError maps catalog read failures onto the envelope.
func respondCatalogError(ctx *gin.Context, err error, fallback string) {
	var paramErr *catalog.ParamError

	switch {
	case errors.As(err, &paramErr):
		RespondBadRequest(ctx, "Invalid query parameter", gin.H{
			"param":  paramErr.Param,
			"value":  paramErr.Value,
			"reason": paramErr.Reason,
		})
	case errors.Is(err, catalog.ErrInvalidParameter):
		RespondBadRequest(ctx, "Invalid query parameter", nil)
	case errors.Is(err, event.ErrNotFound):
		RespondNotFound(ctx, "Event not found")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		RespondError(ctx, http.StatusServiceUnavailable, "unavailable", "Request cancelled", nil)
	default:
		_ = ctx.Error(err)
		RespondInternal(ctx, fallback)
	}
}
