package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/erpre/backoffice/internal/domain/model"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
)

const (
	// EmployeeIDContextKey is a gin context key for the authenticated employee id.
	EmployeeIDContextKey = "employeeID"
	// RoleContextKey is a gin context key for the authenticated employee role.
	RoleContextKey = "employeeRole"
	// TokenContextKey is a gin context key for the raw session token.
	TokenContextKey = "sessionToken"

	authCookieName = "erpre_token"
)

// Authorizer validates a session token and returns its identity.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*pkgAuth.TokenClaims, error)
}

// AuthRequired ensures the request carries a valid session before
// reaching the handler.
func AuthRequired(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := auth.Authorize(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(EmployeeIDContextKey, claims.EmployeeID)
		c.Set(RoleContextKey, claims.Role)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

// AdminRequired rejects requests whose session does not carry the admin
// role. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(RoleContextKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		role, _ := val.(model.Role)
		if role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

// ExtractToken reads the session token from the Authorization header or
// the session cookie.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
