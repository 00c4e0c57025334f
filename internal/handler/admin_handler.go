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

// AdminHandler exposes administrator management endpoints.
type AdminHandler struct {
	admins *service.AdminService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admins *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// List godoc
// @Summary Listar administradores
// @Tags Administradores
// @Produce json
// @Param search query string false "Busca por nome ou email"
// @Param nivel_acesso query string false "Filtro por nível de acesso"
// @Param ativo query bool false "Filtro por situação"
// @Param page query int false "Página"
// @Param limit query int false "Tamanho da página"
// @Success 200 {object} response.ListEnvelope
// @Failure 401 {object} response.ErrorBody
// @Router /admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	var filter models.AdminFilter
	filter.Search = strings.TrimSpace(c.Query("search"))
	if nivel := c.Query("nivel_acesso"); nivel != "" {
		v := models.NivelAcesso(nivel)
		filter.NivelAcesso = &v
	}
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

	admins, pagination, err := h.admins.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, admins, pagination)
}

// Get godoc
// @Summary Detalhar administrador
// @Tags Administradores
// @Produce json
// @Param id path string true "ID do administrador"
// @Success 200 {object} models.Admin
// @Failure 404 {object} response.ErrorBody
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.admins.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admin)
}

// Create godoc
// @Summary Cadastrar administrador
// @Tags Administradores
// @Accept json
// @Produce json
// @Param payload body service.CreateAdminRequest true "Dados do administrador"
// @Success 201 {object} models.Admin
// @Failure 400 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /admins [post]
func (h *AdminHandler) Create(c *gin.Context) {
	var req service.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "dados do administrador inválidos"))
		return
	}

	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}

	admin, err := h.admins.Create(c.Request.Context(), req, claims.AdminID, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, admin)
}

// Update godoc
// @Summary Atualizar administrador
// @Tags Administradores
// @Accept json
// @Produce json
// @Param id path string true "ID do administrador"
// @Param payload body service.UpdateAdminRequest true "Dados do administrador"
// @Success 200 {object} models.Admin
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /admins/{id} [put]
func (h *AdminHandler) Update(c *gin.Context) {
	var req service.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "dados do administrador inválidos"))
		return
	}

	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}

	admin, err := h.admins.Update(c.Request.Context(), c.Param("id"), req, claims.AdminID, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admin)
}

// Delete godoc
// @Summary Remover administrador
// @Description Desativa a conta; a própria conta não pode ser removida
// @Tags Administradores
// @Produce json
// @Param id path string true "ID do administrador"
// @Success 204 "sem conteúdo"
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /admins/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}

	if err := h.admins.Delete(c.Request.Context(), c.Param("id"), claims.AdminID, requestMeta(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
