package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"business-catalog-api/internal/catalog"
	"business-catalog-api/internal/repositories"
	"business-catalog-api/internal/services"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusOf maps service and repository errors to HTTP status codes
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, catalog.ErrUnknownDomain),
		errors.Is(err, catalog.ErrUnknownResource),
		errors.Is(err, catalog.ErrUnknownPath),
		errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, repositories.ErrDuplicateEntry):
		return http.StatusConflict, "Already exists"
	case errors.Is(err, services.ErrInvalidRequest),
		errors.Is(err, services.ErrInvalidPayload),
		errors.Is(err, repositories.ErrValidation),
		errors.Is(err, repositories.ErrInvalidID):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, services.ErrLintFailed):
		return http.StatusUnprocessableEntity, "Catalog has lint errors"
	case errors.Is(err, services.ErrSnapshotsDisabled):
		return http.StatusServiceUnavailable, "Snapshot store unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes err as an ErrorResponse. Internal errors are attached
// to the context for the error tracker and their detail is not exposed.
func respondError(c *gin.Context, err error) {
	status, title := statusOf(err)
	if status >= http.StatusInternalServerError {
		c.Error(err).SetType(gin.ErrorTypePrivate)
		c.JSON(status, ErrorResponse{Error: title, Message: "An internal error occurred"})
		return
	}
	c.JSON(status, ErrorResponse{Error: title, Message: err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Message: message})
}
