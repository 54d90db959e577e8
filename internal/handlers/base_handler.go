package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/authz"
	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
)

// Response is the envelope every endpoint answers with: a human message,
// a status flag, and either data or per-field errors.
type Response struct {
	Message string              `json:"message"`
	Status  bool                `json:"status"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string) {
	utils.LoggerFromContext(c, h.logger).Debug(msg, "path", c.Request.URL.Path)
}

func (h *BaseHandler) respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Message: message, Status: true, Data: data})
}

func (h *BaseHandler) respondFailure(c *gin.Context, status int, message string, fieldErrors map[string][]string) {
	c.JSON(status, Response{Message: message, Status: false, Errors: fieldErrors})
}

// respondDenied hides forbidden resources behind the not-found message,
// always with HTTP 200, so probing callers cannot map the route table.
func respondDenied(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Message: authz.DenialMessage, Status: false})
}

// handleServiceError maps service sentinels onto the response envelope.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationFailedError
	switch {
	case errors.Is(err, services.ErrNotAllowed):
		respondDenied(c)
	case errors.Is(err, services.ErrNotFound):
		h.respondFailure(c, http.StatusNotFound, "Recurso no encontrado", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		h.respondFailure(c, http.StatusUnauthorized, "Credenciales inválidas", nil)
	case errors.As(err, &vErr):
		h.respondFailure(c, http.StatusBadRequest, "Los datos proporcionados no son válidos", vErr.Fields)
	default:
		utils.LoggerFromContext(c, h.logger).Error("request failed", "error", err, "path", c.Request.URL.Path)
		h.respondFailure(c, http.StatusInternalServerError, "Error interno del servidor", nil)
	}
}

// pathID parses the numeric :id segment. A non-numeric id gets the same
// treatment as an unknown route.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondDenied(c)
		return 0, false
	}
	return uint(id), true
}

// actorFromContext rebuilds the authenticated actor placed by the auth
// middleware. A missing actor reads as anonymous.
func actorFromContext(c *gin.Context) authz.Actor {
	v, ok := c.Get("actor")
	if !ok {
		return authz.Actor{}
	}
	actor, ok := v.(authz.Actor)
	if !ok {
		return authz.Actor{}
	}
	return actor
}
