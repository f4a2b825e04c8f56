package middlewares

import (
	"net/http"
	"strings"

	"github.com/geocoder89/videomatch/internal/actorctx"
	"github.com/geocoder89/videomatch/internal/auth"
	"github.com/gin-gonic/gin"
)

// TokenVerifier is satisfied by *auth.Manager.
type TokenVerifier interface {
	VerifyVisitorToken(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	jwt TokenVerifier
}

func NewAuthMiddleware(jwt TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

func (m *AuthMiddleware) RequireVisitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if raw == "" {
			abortWithError(c, http.StatusUnauthorized, "unauthorized", "Missing visitor token")
			return
		}

		claims, err := m.jwt.VerifyVisitorToken(raw)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "unauthorized", "Invalid or expired visitor token")
			return
		}

		visitorID := claims.VisitorID()
		c.Set(CtxVisitorID, visitorID)
		c.Request = c.Request.WithContext(actorctx.WithVisitorID(c.Request.Context(), visitorID))

		c.Next()
	}
}

func VisitorIDFromContext(c *gin.Context) (string, bool) {
	id := c.GetString(CtxVisitorID)
	return id, id != ""
}
