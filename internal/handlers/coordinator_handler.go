package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

type CoordinatorHandler struct {
	BaseHandler
	service *services.CoordinatorService
}

func NewCoordinatorHandler(service *services.CoordinatorService, logger utils.Logger) *CoordinatorHandler {
	return &CoordinatorHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *CoordinatorHandler) List(c *gin.Context) {
	h.LogRequest(c, "Listing coordinators")

	coordinators, err := h.service.List(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Coordinadores obtenidos exitosamente", coordinators)
}

func (h *CoordinatorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	coordinator, err := h.service.Get(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Coordinador obtenido exitosamente", coordinator)
}

func (h *CoordinatorHandler) Create(c *gin.Context) {
	var req validator.CoordinatorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	coordinator, err := h.service.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusCreated, "Coordinador creado exitosamente", coordinator)
}

func (h *CoordinatorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validator.CoordinatorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	coordinator, err := h.service.Update(c.Request.Context(), actorFromContext(c), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Coordinador actualizado exitosamente", coordinator)
}

func (h *CoordinatorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFromContext(c), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Coordinador eliminado exitosamente", nil)
}
