package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
)

func TestStatusFor(t *testing.T) {
	cause := errors.New("driver failure")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid identifier", domain.NewInvalidIdentifierError("x", nil), http.StatusBadRequest},
		{"invalid owner", domain.NewInvalidOwnerReferenceError("x", nil), http.StatusBadRequest},
		{"validation", domain.NewValidationError("start time is required"), http.StatusBadRequest},
		{"not found", domain.NewNotFoundError("booking", "1"), http.StatusNotFound},
		{"duplicate", domain.NewDuplicateKeyError("booking", cause), http.StatusConflict},
		{"unavailable", domain.NewStorageUnavailableError("save booking", cause), http.StatusServiceUnavailable},
		{"query failed", fmt.Errorf("wrapped: %w", domain.NewQueryFailedError("list", cause)), http.StatusServiceUnavailable},
		{"canceled", domain.NewCanceledError("save booking", cause), StatusClientClosedRequest},
		{"unknown", cause, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestError_MasksStorageDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cause := errors.New(`pq: relation "bookings" does not exist`)

	tests := []struct {
		name   string
		err    error
		status int
		hidden bool
	}{
		{"query failed", domain.NewQueryFailedError("list active bookings", cause), http.StatusServiceUnavailable, true},
		{"unavailable", domain.NewStorageUnavailableError("save owner", cause), http.StatusServiceUnavailable, true},
		{"unknown", cause, http.StatusInternalServerError, true},
		{"validation", domain.NewValidationError("start time is required"), http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			if tt.hidden {
				assert.NotContains(t, body.Error, "bookings")
				assert.NotContains(t, body.Error, "pq:")
			} else {
				assert.Equal(t, tt.err.Error(), body.Error)
			}
		})
	}
}
