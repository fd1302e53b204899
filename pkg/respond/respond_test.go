package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		data     interface{}
		wantCode int
		wantBody interface{}
	}{
		{
			name:     "created task",
			code:     http.StatusCreated,
			data:     map[string]interface{}{"id": 1, "message": "buy milk"},
			wantCode: http.StatusCreated,
			wantBody: map[string]interface{}{"id": float64(1), "message": "buy milk"}, // числа в JSON - float64
		},
		{
			name:     "empty list stays an array",
			code:     http.StatusOK,
			data:     []string{},
			wantCode: http.StatusOK,
			wantBody: []interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			require.NoError(t, JSON(w, r, tt.code, tt.data))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var got interface{}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPatch, "/api/tasks/abc/done", nil)

	require.NoError(t, Error(w, r, http.StatusBadRequest, "invalid task id"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "invalid task id", got["error"])
}

func TestStatus(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)

	require.NoError(t, Status(w, r, "ok"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestJSON_EncodeError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)

	err := JSON(w, r, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestJSON_WriteError(t *testing.T) {
	w := failingWriter{httptest.NewRecorder()}
	r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)

	err := JSON(w, r, http.StatusOK, []string{})

	assert.EqualError(t, err, "connection reset")
}
