package middleware

import (
	"net/http"
	"strings"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/auth"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	ContextAdminID    = "admin_id"
	ContextAdminEmail = "admin_email"
	ContextAdminRole  = "admin_role"
)

// AdminOnly validates the bearer token and requires the admin role.
// Anything short of a valid admin token is rejected: missing or malformed
// credentials are treated the same as a non-admin identity.
func AdminOnly(tokens *auth.JWTService) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid authorization header"})
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		if claims.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextAdminEmail, claims.Email)
		c.Set(ContextAdminRole, claims.Role)

		c.Next()
	}
}
