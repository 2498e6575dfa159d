package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/service"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		dto.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		dto.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		dto.Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		dto.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		dto.Error(c, http.StatusConflict, err.Error())
	default:
		dto.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
