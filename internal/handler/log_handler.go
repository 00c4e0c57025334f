package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/painel-adm/revendas-api/internal/models"
	"github.com/painel-adm/revendas-api/internal/service"
	"github.com/painel-adm/revendas-api/pkg/response"
)

// LogHandler exposes the audit trail read endpoints.
type LogHandler struct {
	logs *service.LogService
}

// NewLogHandler constructs LogHandler.
func NewLogHandler(logs *service.LogService) *LogHandler {
	return &LogHandler{logs: logs}
}

func logFilterFromQuery(c *gin.Context) models.LogFilter {
	var filter models.LogFilter
	filter.AdminID = strings.TrimSpace(c.Query("admin_id"))
	filter.Acao = strings.TrimSpace(c.Query("acao"))
	filter.Recurso = strings.TrimSpace(c.Query("recurso"))
	if from := c.Query("de"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.From = &t
		}
	}
	if to := c.Query("ate"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.To = &t
		}
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		filter.PageSize = size
	}
	return filter
}

// List godoc
// @Summary Listar logs de auditoria
// @Tags Logs
// @Produce json
// @Param admin_id query string false "Filtro por administrador"
// @Param acao query string false "Filtro por ação"
// @Param recurso query string false "Filtro por recurso"
// @Param de query string false "Início do período (RFC3339)"
// @Param ate query string false "Fim do período (RFC3339)"
// @Param page query int false "Página"
// @Param limit query int false "Tamanho da página"
// @Success 200 {object} response.ListEnvelope
// @Failure 401 {object} response.ErrorBody
// @Router /logs [get]
func (h *LogHandler) List(c *gin.Context) {
	logs, pagination, err := h.logs.List(c.Request.Context(), logFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, logs, pagination)
}

// Get godoc
// @Summary Detalhar registro de auditoria
// @Tags Logs
// @Produce json
// @Param id path string true "ID do registro"
// @Success 200 {object} models.LogRegistro
// @Failure 404 {object} response.ErrorBody
// @Router /logs/{id} [get]
func (h *LogHandler) Get(c *gin.Context) {
	log, err := h.logs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, log)
}

// Export godoc
// @Summary Exportar logs de auditoria
// @Description Gera um arquivo CSV ou PDF com os registros filtrados
// @Tags Logs
// @Produce text/csv
// @Produce application/pdf
// @Param formato query string false "csv ou pdf" default(csv)
// @Param admin_id query string false "Filtro por administrador"
// @Param acao query string false "Filtro por ação"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /logs/export [get]
func (h *LogHandler) Export(c *gin.Context) {
	result, err := h.logs.Export(c.Request.Context(), logFilterFromQuery(c), c.Query("formato"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
