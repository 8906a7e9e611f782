package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"easypark/internal/repository"
	"easypark/internal/security"
	"easypark/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidVehicleID),
		errors.Is(err, service.ErrInvalidPlate),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrEntryInFuture),
		errors.Is(err, service.ErrInvalidOperationID),
		errors.Is(err, service.ErrInvalidDebtID),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidRecordKind),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidSubscriber),
		errors.Is(err, service.ErrInvalidIncident),
		errors.Is(err, service.ErrInvalidRegistration),
		errors.Is(err, service.ErrInvalidSettings):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrVehicleNotInside),
		errors.Is(err, service.ErrVehicleAlreadyInside),
		errors.Is(err, service.ErrParkingFull),
		errors.Is(err, service.ErrOperationAlreadyOpen),
		errors.Is(err, service.ErrOperationNotOpen),
		errors.Is(err, service.ErrOperationLocked),
		errors.Is(err, service.ErrDebtAlreadyPaid),
		errors.Is(err, service.ErrIncidentResolved),
		errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		return http.StatusUnauthorized

	// Forbidden
	case errors.Is(err, service.ErrUserInactive):
		return http.StatusForbidden

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
