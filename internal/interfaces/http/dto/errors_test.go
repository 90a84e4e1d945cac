package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"validation", ErrCodeValidation, http.StatusBadRequest},
		{"conflict", ErrCodeAlreadyExists, http.StatusConflict},
		{"placeholder", ErrCodeUnresolvedPlaceholder, http.StatusBadRequest},
		{"payload too large", ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown defaults to 500", "ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"not found", "NOT_FOUND", ErrCodeNotFound},
		{"already exists", "ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"unresolved placeholder", "UNRESOLVED_PLACEHOLDER", ErrCodeUnresolvedPlaceholder},
		{"invalid prefix", "INVALID_SLUG", ErrCodeValidation},
		{"invalid parent", "INVALID_PARENT", ErrCodeValidation},
		{"missing prefix", "MISSING_FIELD", ErrCodeValidation},
		{"already normalized", ErrCodeNotFound, ErrCodeNotFound},
		{"unknown maps to internal", "DB_ERROR", ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeErrorCode(tt.code))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 41, 2, 20)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
