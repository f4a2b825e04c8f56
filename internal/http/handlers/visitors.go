package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type VisitorIssuer interface {
	IssueVisitor() (visitorID, token string, expiresAt time.Time, err error)
}

type VisitorsHandler struct {
	issuer VisitorIssuer
}

func NewVisitorsHandler(issuer VisitorIssuer) *VisitorsHandler {
	return &VisitorsHandler{issuer: issuer}
}

// Create mints an anonymous visitor identity. The token scopes joined and
// saved lists the way browser storage would.
func (h *VisitorsHandler) Create(ctx *gin.Context) {
	visitorID, token, expiresAt, err := h.issuer.IssueVisitor()
	if err != nil {
		slog.Default().ErrorContext(ctx.Request.Context(), "issue visitor token failed", "err", err)
		RespondInternal(ctx, "Could not create visitor")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"visitorId": visitorID,
		"token":     token,
		"tokenType": "Bearer",
		"expiresAt": expiresAt,
	})
}
