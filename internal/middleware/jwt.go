package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
	"github.com/painel-adm/revendas-api/pkg/response"
)

// ContextAdminKey is the gin context key storing the validated claims.
const ContextAdminKey = "currentAdmin"

// TokenValidator is the single session-validation contract shared by the
// server gate here and by the client-side guard.
type TokenValidator interface {
	ValidateToken(token string) (*models.AdminClaims, error)
}

// JWT protects routes by requiring a valid bearer token. Requests are
// rejected before reaching the handler, so no persistence access happens on
// unauthenticated calls.
func JWT(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrMissingToken)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the validated claims stored by JWT, or nil.
func ClaimsFromContext(c *gin.Context) *models.AdminClaims {
	value, exists := c.Get(ContextAdminKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.AdminClaims)
	if !ok {
		return nil
	}
	return claims
}
