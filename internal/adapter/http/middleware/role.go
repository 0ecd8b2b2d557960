package middleware

import (
	"net/http"
	"strings"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleHeader carries the caller's role. Identity is resolved upstream (API gateway); this
// service only authorizes by role.
const RoleHeader = "X-User-Role"

const roleContextKey = "user_role"

// RequireRole rejects requests without a known role and stores it in the gin context.
func RequireRole(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.ToLower(strings.TrimSpace(c.GetHeader(RoleHeader)))
		if raw == "" {
			appErr := pkg.NewDomainErrorSimple("MISSING_ROLE", "Missing "+RoleHeader+" header", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		role := entities.Role(raw)
		if !role.IsValid() {
			logger.Info("[http][middleware] unknown role", zap.String("role", raw), zap.String("path", c.Request.URL.Path))
			appErr := pkg.NewDomainErrorSimple("INVALID_ROLE", "Unknown role", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(roleContextKey, role)
		c.Next()
	}
}

// Role returns the role stored by RequireRole, or "" when the route is not behind it.
func Role(c *gin.Context) entities.Role {
	v, ok := c.Get(roleContextKey)
	if !ok {
		return ""
	}
	role, _ := v.(entities.Role)
	return role
}

// SetRole is used by tests that mount handlers without the middleware.
func SetRole(c *gin.Context, role entities.Role) {
	c.Set(roleContextKey, role)
}
