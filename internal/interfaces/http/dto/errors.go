package dto

import (
	"net/http"
	"strings"
)

// API error codes returned in the error envelope.
const (
	ErrCodeInternal              = "ERR_INTERNAL"
	ErrCodeBadRequest            = "ERR_BAD_REQUEST"
	ErrCodeValidation            = "ERR_VALIDATION"
	ErrCodeNotFound              = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists         = "ERR_ALREADY_EXISTS"
	ErrCodeUnresolvedPlaceholder = "ERR_UNRESOLVED_PLACEHOLDER"
	ErrCodePayloadTooLarge       = "ERR_PAYLOAD_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps API error codes to HTTP status codes.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:              http.StatusInternalServerError,
	ErrCodeBadRequest:            http.StatusBadRequest,
	ErrCodeValidation:            http.StatusBadRequest,
	ErrCodeNotFound:              http.StatusNotFound,
	ErrCodeAlreadyExists:         http.StatusConflict,
	ErrCodeUnresolvedPlaceholder: http.StatusBadRequest,
	ErrCodePayloadTooLarge:       http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode maps domain error codes to API error codes.
func NormalizeErrorCode(code string) string {
	switch code {
	case "NOT_FOUND":
		return ErrCodeNotFound
	case "ALREADY_EXISTS":
		return ErrCodeAlreadyExists
	case "UNRESOLVED_PLACEHOLDER":
		return ErrCodeUnresolvedPlaceholder
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasPrefix(code, "MISSING_") {
		return ErrCodeValidation
	}
	if strings.HasPrefix(code, "ERR_") {
		return code
	}
	return ErrCodeInternal
}
