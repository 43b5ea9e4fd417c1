package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{"NOT_FOUND", http.StatusNotFound},
		{"VENDOR_NOT_ALLOWED", http.StatusForbidden},
		{"EMPTY_SELECTION", http.StatusBadRequest},
		{"OUR_CATEGORY_NOT_FOUND", http.StatusNotFound},
		{"MAPPING_NOT_FOUND", http.StatusNotFound},
		{"VENDOR_INACTIVE", http.StatusUnprocessableEntity},
		{"HAS_CHILDREN", http.StatusConflict},
		{"INVALID_TRANSITION", http.StatusUnprocessableEntity},
		{"COUPON_NOT_USABLE", http.StatusUnprocessableEntity},
		{"SOMETHING_UNMAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestResponses(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		resp := NewSuccessResponse(map[string]string{"k": "v"})
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Error)
		assert.Nil(t, resp.Meta)
	})

	t.Run("success with meta rounds total pages up", func(t *testing.T) {
		resp := NewSuccessResponseWithMeta(nil, 45, 1, 20)
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.Meta.TotalPages)
		assert.Equal(t, int64(45), resp.Meta.Total)
	})

	t.Run("error", func(t *testing.T) {
		resp := NewErrorResponse("NOT_FOUND", "missing")
		assert.False(t, resp.Success)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
		assert.Equal(t, "missing", resp.Error.Message)
	})
}
