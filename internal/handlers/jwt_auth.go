package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/auth"
	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/models"
)

// JWTAuthMiddleware authenticates requests with bearer tokens and places
// the resulting actor in the gin context.
type JWTAuthMiddleware struct {
	tokens *auth.TokenService
}

func NewJWTAuthMiddleware(tokens *auth.TokenService) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{tokens: tokens}
}

// AuthMiddleware rejects requests without a valid token. The rejection
// uses the same not-found envelope as a denied operation.
func (m *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondDenied(c)
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			respondDenied(c)
			c.Abort()
			return
		}

		role, _ := models.RoleFromID(claims.RoleID)
		c.Set("actor", authz.Actor{UserID: claims.UserID, Role: role})
		c.Next()
	}
}

// OptionalAuth resolves the actor when a token is present but lets
// anonymous requests through. Used on the open registration route so a
// logged-in caller still gets its identity attached.
func (m *JWTAuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			if claims, err := m.tokens.Verify(token); err == nil {
				role, _ := models.RoleFromID(claims.RoleID)
				c.Set("actor", authz.Actor{UserID: claims.UserID, Role: role})
			}
		}
		c.Next()
	}
}
