package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "created",
			body: map[string]any{
				"first_name": "Ada", "last_name": "Lovelace",
				"email": "ada@example.com", "password": "s3cret",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "bad email",
			body: map[string]any{
				"first_name": "Ada", "last_name": "Lovelace",
				"email": "not-an-email", "password": "s3cret",
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "missing password",
			body: map[string]any{
				"first_name": "Ada", "last_name": "Lovelace",
				"email": "ada@example.com",
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			w := ts.do(t, http.MethodPost, "/customers", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["error"].(map[string]any)["code"])
			} else {
				data := body["data"].(map[string]any)
				assert.EqualValues(t, 1, data["id"])
				assert.NotContains(t, data, "password", "password must never be serialized")
			}
		})
	}
}

func TestCustomerGetAndDelete(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/customers", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace",
		"email": "ada@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/customers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", body["error"].(map[string]any)["code"])
}

func TestCustomerUpdate(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/customers", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace",
		"email": "ada@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodPut, "/customers/1", map[string]any{
		"first_name": "Ada", "last_name": "King",
		"email": "ada.king@example.com", "password": "n3wpass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "King", body["data"].(map[string]any)["last_name"])

	w = ts.do(t, http.MethodPut, "/customers/2", map[string]any{
		"first_name": "Ada", "last_name": "King",
		"email": "ada.king@example.com", "password": "n3wpass",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
