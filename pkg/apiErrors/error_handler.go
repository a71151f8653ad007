package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to clients.
const (
	// Authentication errors (AUTH_xxx)
	ErrInvalidCredentials = "AUTH_001"
	ErrUserDisabled       = "AUTH_002"
	ErrUserNotFound       = "AUTH_003"
	ErrInvalidToken       = "AUTH_004"
	ErrExpiredToken       = "AUTH_005"
	ErrUserAlreadyExists  = "AUTH_006"
	ErrPlatformAuth       = "AUTH_007" // marketplace credential rejected or expired

	// Validation errors (VAL_xxx)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrUnknownPlatform     = "VAL_004"

	// Server errors (SRV_xxx)
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrUserDisabled:        http.StatusForbidden,
	ErrUserNotFound:        http.StatusNotFound,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrUserAlreadyExists:   http.StatusBadRequest,
	ErrPlatformAuth:        http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnknownPlatform:     http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError is the standardized error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
