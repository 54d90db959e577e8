package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	service *services.UserService
}

func NewUserHandler(service *services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	filters := repositories.UserFilters{}
	if raw := c.Query("id_tipo_usuario"); raw != "" {
		if roleID, err := strconv.Atoi(raw); err == nil {
			filters.RoleID = roleID
		}
	}
	if raw := c.Query("estado_usuario"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filters.Active = &active
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filters.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			filters.Offset = offset
		}
	}

	users, total, err := h.service.List(c.Request.Context(), actorFromContext(c), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Usuarios obtenidos exitosamente", gin.H{
		"usuarios": users,
		"total":    total,
	})
}
