package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/painel-adm/revendas-api/internal/models"
	"github.com/painel-adm/revendas-api/internal/service"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
	"github.com/painel-adm/revendas-api/pkg/response"
)

// RevendaHandler exposes reseller endpoints.
type RevendaHandler struct {
	revendas *service.RevendaService
}

// NewRevendaHandler constructs RevendaHandler.
func NewRevendaHandler(revendas *service.RevendaService) *RevendaHandler {
	return &RevendaHandler{revendas: revendas}
}

// List godoc
// @Summary Listar revendas
// @Tags Revendas
// @Produce json
// @Param search query string false "Busca por nome, CNPJ ou email"
// @Param estado query string false "Filtro por UF"
// @Param ativo query bool false "Filtro por situação"
// @Param page query int false "Página"
// @Param limit query int false "Tamanho da página"
// @Success 200 {object} response.ListEnvelope
// @Failure 401 {object} response.ErrorBody
// @Router /revendas [get]
func (h *RevendaHandler) List(c *gin.Context) {
	var filter models.RevendaFilter
	filter.Search = strings.TrimSpace(c.Query("search"))
	filter.Estado = strings.ToUpper(strings.TrimSpace(c.Query("estado")))
	if ativo := c.Query("ativo"); ativo != "" {
		if v, err := strconv.ParseBool(ativo); err == nil {
			filter.Ativo = &v
		}
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	revendas, pagination, err := h.revendas.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, revendas, pagination)
}

// Get godoc
// @Summary Detalhar revenda
// @Tags Revendas
// @Produce json
// @Param id path string true "ID da revenda"
// @Success 200 {object} models.Revenda
// @Failure 404 {object} response.ErrorBody
// @Router /revendas/{id} [get]
func (h *RevendaHandler) Get(c *gin.Context) {
	revenda, err := h.revendas.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, revenda)
}

// Create godoc
// @Summary Cadastrar revenda
// @Tags Revendas
// @Accept json
// @Produce json
// @Param payload body service.CreateRevendaRequest true "Dados da revenda"
// @Success 201 {object} models.Revenda
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /revendas [post]
func (h *RevendaHandler) Create(c *gin.Context) {
	var req service.CreateRevendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "dados da revenda inválidos"))
		return
	}

	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}

	revenda, err := h.revendas.Create(c.Request.Context(), req, claims.AdminID, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, revenda)
}

// Update godoc
// @Summary Atualizar revenda
// @Tags Revendas
// @Accept json
// @Produce json
// @Param id path string true "ID da revenda"
// @Param payload body service.UpdateRevendaRequest true "Dados da revenda"
// @Success 200 {object} models.Revenda
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /revendas/{id} [put]
func (h *RevendaHandler) Update(c *gin.Context) {
	var req service.UpdateRevendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "dados da revenda inválidos"))
		return
	}

	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}

	revenda, err := h.revendas.Update(c.Request.Context(), c.Param("id"), req, claims.AdminID, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, revenda)
}

// Delete godoc
// @Summary Remover revenda
// @Description Desativa a revenda; o registro é mantido para auditoria
// @Tags Revendas
// @Produce json
// @Param id path string true "ID da revenda"
// @Success 204 "sem conteúdo"
// @Failure 404 {object} response.ErrorBody
// @Router /revendas/{id} [delete]
func (h *RevendaHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}

	if err := h.revendas.Delete(c.Request.Context(), c.Param("id"), claims.AdminID, requestMeta(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
