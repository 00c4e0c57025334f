package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/painel-adm/revendas-api/internal/service"
	"github.com/painel-adm/revendas-api/pkg/response"
)

// DashboardHandler exposes the aggregate panel summary.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Resumo godoc
// @Summary Resumo do painel
// @Description Totais de revendas e administradores, logs do dia e séries agregadas
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardResumo
// @Failure 401 {object} response.ErrorBody
// @Router /dashboard [get]
func (h *DashboardHandler) Resumo(c *gin.Context) {
	resumo, cached, err := h.dashboard.Resumo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	response.JSON(c, http.StatusOK, resumo)
}
