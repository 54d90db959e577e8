package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

type ProjectHandler struct {
	BaseHandler
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService, logger utils.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	h.LogRequest(c, "Listing projects")

	filters := repositories.ProjectFilters{
		Status: models.ProjectStatus(c.Query("estado")),
	}
	if raw := c.Query("id_empresa"); raw != "" {
		if companyID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filters.CompanyID = uint(companyID)
		}
	}

	projects, err := h.service.List(c.Request.Context(), actorFromContext(c), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Proyectos obtenidos exitosamente", projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.service.Get(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Proyecto obtenido exitosamente", project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req validator.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	project, err := h.service.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusCreated, "Proyecto publicado exitosamente", project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validator.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	project, err := h.service.Update(c.Request.Context(), actorFromContext(c), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Proyecto actualizado exitosamente", project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFromContext(c), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Proyecto eliminado exitosamente", nil)
}
