package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seminar-portal/backend/internal/auth"
	"github.com/seminar-portal/backend/pkg/response"
)

const (
	// ContextRole is the key for the session role in gin context.
	ContextRole = "session_role"
	// ContextTenant is the key for the session tenant scope in gin context.
	// Empty means a global admin session.
	ContextTenant = "session_tenant"
)

// AdminAuth returns a middleware that validates the admin session token from
// the session cookie (or a Bearer header for non-browser clients) and sets
// the role and tenant scope in context. Missing, malformed and expired
// tokens all produce the same 401.
func AdminAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		claims, err := jwtService.Validate(token)
		if err != nil {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		c.Set(ContextRole, claims.Role)
		c.Set(ContextTenant, claims.Tenant)
		c.Next()
	}
}

// RequireTenantScope returns a middleware for routes with a :tenant segment.
// A tenant-scoped session only passes its own tenant's routes; a global
// session (no tenant claim) passes all of them.
func RequireTenantScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := c.Get(ContextTenant)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		tenantScope, _ := scope.(string)
		if tenantScope != "" && tenantScope != c.Param("tenant") {
			response.Forbidden(c, "tenant scope mismatch")
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
