package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/painel-adm/revendas-api/internal/models"
	"github.com/painel-adm/revendas-api/internal/service"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
	"github.com/painel-adm/revendas-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Autenticar administrador
// @Description Autentica um administrador por email e senha
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credenciais"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "email e senha são obrigatórios"))
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Validate godoc
// @Summary Validar sessão
// @Description Retorna a identidade do administrador autenticado
// @Tags Autenticação
// @Produce json
// @Success 200 {object} models.AdminIdentity
// @Failure 401 {object} response.ErrorBody
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}

	identity := models.AdminIdentity{
		ID:          claims.AdminID,
		Nome:        claims.Nome,
		Email:       claims.Email,
		NivelAcesso: claims.NivelAcesso,
	}

	response.JSON(c, http.StatusOK, identity)
}

// Logout godoc
// @Summary Encerrar sessão
// @Description Registra o logout; o token é descartado pelo cliente
// @Tags Autenticação
// @Produce json
// @Success 204 "sem conteúdo"
// @Failure 401 {object} response.ErrorBody
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrMissingToken)
		return
	}

	h.service.Logout(c.Request.Context(), claims, requestMeta(c))
	response.NoContent(c)
}
