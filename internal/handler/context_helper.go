package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/painel-adm/revendas-api/internal/middleware"
	"github.com/painel-adm/revendas-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.AdminClaims {
	return middleware.ClaimsFromContext(c)
}

func requestMeta(c *gin.Context) models.RequestMeta {
	return models.RequestMeta{IP: c.ClientIP(), UserAgent: c.GetHeader("User-Agent")}
}
