package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

type CompanyHandler struct {
	BaseHandler
	service *services.CompanyService
}

func NewCompanyHandler(service *services.CompanyService, logger utils.Logger) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	h.LogRequest(c, "Listing companies")

	companies, err := h.service.List(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Empresas obtenidas exitosamente", companies)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	company, err := h.service.Get(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Empresa obtenida exitosamente", company)
}

// GetByProject resolves the company behind a published project.
func (h *CompanyHandler) GetByProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	company, err := h.service.GetByProject(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Empresa obtenida exitosamente", company)
}

// Create is the open self-registration endpoint.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req validator.CompanyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	registration, err := h.service.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusCreated, "Empresa registrada exitosamente", registration)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validator.CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	company, err := h.service.Update(c.Request.Context(), actorFromContext(c), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Empresa actualizada exitosamente", company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFromContext(c), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Empresa eliminada exitosamente", nil)
}
