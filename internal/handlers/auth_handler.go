package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

type AuthHandler struct {
	BaseHandler
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req validator.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Inicio de sesión exitoso", result)
}

// Me returns the calling account with its entity row.
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.service.Me(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Perfil obtenido exitosamente", profile)
}
