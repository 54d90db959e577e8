package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
)

// LookupHandler serves the reference tables behind the registration
// forms. These endpoints are public.
type LookupHandler struct {
	BaseHandler
	service *services.LookupService
}

func NewLookupHandler(service *services.LookupService, logger utils.Logger) *LookupHandler {
	return &LookupHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *LookupHandler) Careers(c *gin.Context) {
	careers, err := h.service.Careers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Carreras obtenidas exitosamente", careers)
}

func (h *LookupHandler) Sectors(c *gin.Context) {
	sectors, err := h.service.Sectors(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Sectores obtenidos exitosamente", sectors)
}
