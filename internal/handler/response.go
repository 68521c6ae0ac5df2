package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cropai/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		// Missing or discarded profile: the client redirects to onboarding.
		return http.StatusNotFound, "ONBOARDING_REQUIRED", "no farm profile found; onboarding required"
	case errors.Is(err, domain.ErrProfileExists):
		return http.StatusConflict, "PROFILE_EXISTS", "a farm profile already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "INVALID_ROLE", "invalid role; allowed: farmer, technician, supplier"
	case errors.Is(err, domain.ErrInvalidProfile):
		return http.StatusBadRequest, "INVALID_PROFILE", "profile details do not match the declared role"
	case errors.Is(err, domain.ErrRoleForbidden):
		return http.StatusForbidden, "ROLE_FORBIDDEN", "record kind not available for this role"
	case errors.Is(err, domain.ErrInvalidRecordKind):
		return http.StatusBadRequest, "INVALID_RECORD_KIND", "invalid record kind; allowed: sales, invoices"
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "RECORD_NOT_FOUND", "record not found"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "review session not found"
	case errors.Is(err, domain.ErrNothingExtracted):
		return http.StatusUnprocessableEntity, "NOTHING_EXTRACTED", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
