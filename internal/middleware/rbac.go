package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
	"github.com/painel-adm/revendas-api/pkg/response"
)

// SelfMarker allows a route for the admin whose :id matches the caller.
const SelfMarker = "SELF"

// RequireNivel enforces access-level control for routes. Accepts nivel
// values and the SELF marker.
func RequireNivel(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			response.Error(c, appErrors.ErrMissingToken)
			c.Abort()
			return
		}

		allowSelf := false
		allowedNiveis := make(map[models.NivelAcesso]struct{})

		for _, a := range allowed {
			if a == SelfMarker {
				allowSelf = true
				continue
			}
			allowedNiveis[models.NivelAcesso(a)] = struct{}{}
		}

		if _, ok := allowedNiveis[claims.NivelAcesso]; ok {
			c.Next()
			return
		}

		if allowSelf {
			if targetID := c.Param("id"); targetID != "" && targetID == claims.AdminID {
				c.Next()
				return
			}
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}
