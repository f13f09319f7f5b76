package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gohttp "github.com/km-arc/go-beans/framework/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newResponse(t *testing.T) (*gohttp.Response, *httptest.ResponseRecorder) {
	t.Helper()
	rr := httptest.NewRecorder()
	return gohttp.NewResponse(rr), rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&m))
	return m
}

// ── JSON ──────────────────────────────────────────────────────────────────────

func TestResponse_JSON(t *testing.T) {
	res, rr := newResponse(t)
	res.JSON(http.StatusAccepted, map[string]any{"key": "val"})

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "val", decodeJSON(t, rr)["key"])
}

func TestResponse_Success(t *testing.T) {
	res, rr := newResponse(t)
	res.Success(map[string]any{"id": 1})

	assert.Equal(t, http.StatusOK, rr.Code)
	data, ok := decodeJSON(t, rr)["data"].(map[string]any)
	require.True(t, ok, "expected data envelope")
	assert.Equal(t, float64(1), data["id"])
}

func TestResponse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		send    func(*gohttp.Response)
		status  int
		message string
	}{
		{"Error", func(r *gohttp.Response) { r.Error(http.StatusTeapot, "short and stout") }, http.StatusTeapot, "short and stout"},
		{"NotFound default", func(r *gohttp.Response) { r.NotFound() }, http.StatusNotFound, "Not found."},
		{"NotFound custom", func(r *gohttp.Response) { r.NotFound("no greeting") }, http.StatusNotFound, "no greeting"},
		{"ServerError default", func(r *gohttp.Response) { r.ServerError() }, http.StatusInternalServerError, "Server Error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rr := newResponse(t)
			tt.send(res)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.message, decodeJSON(t, rr)["message"])
		})
	}
}
