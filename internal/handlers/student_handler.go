package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
	"github.com/UES-FIA-2024/placement-service/internal/validator"
)

type StudentHandler struct {
	BaseHandler
	service *services.StudentService
}

func NewStudentHandler(service *services.StudentService, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *StudentHandler) List(c *gin.Context) {
	h.LogRequest(c, "Listing students")

	students, err := h.service.List(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Estudiantes obtenidos exitosamente", students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	student, err := h.service.Get(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Estudiante obtenido exitosamente", student)
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req validator.StudentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	student, err := h.service.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusCreated, "Estudiante creado exitosamente", student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validator.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondFailure(c, http.StatusBadRequest, "Solicitud inválida", nil)
		return
	}

	student, err := h.service.Update(c.Request.Context(), actorFromContext(c), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Estudiante actualizado exitosamente", student)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFromContext(c), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.respondSuccess(c, http.StatusOK, "Estudiante eliminado exitosamente", nil)
}
