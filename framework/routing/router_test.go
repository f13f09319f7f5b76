package routing_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beans/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Verbs(t *testing.T) {
	r := routing.New()
	r.Get("/users", okHandler)
	r.Post("/users", okHandler)
	r.Put("/users/{id}", okHandler)
	r.Patch("/users/{id}", okHandler)
	r.Delete("/users/{id}", okHandler)

	tests := []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/users"},
		{http.MethodPut, "/users/1"},
		{http.MethodPatch, "/users/1"},
		{http.MethodDelete, "/users/1"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, do(t, r, tt.method, tt.path).Code)
		})
	}

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/not-registered").Code)
}

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(routing.Param(req, "id")))
	})

	rr := do(t, r, http.MethodGet, "/users/42")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "42", rr.Body.String())
}

// ── Prefix / Group ───────────────────────────────────────────────────────────

func TestRouter_PrefixAndGroup(t *testing.T) {
	called := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	r := routing.New()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Group(func(g *routing.Router) {
			g.Middleware(mw)
			g.Get("/users", okHandler)
		})
	})

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/v1/users").Code)
	assert.True(t, called)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/users").Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := routing.New()
	r.Middleware(routing.RequestLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	r.Get("/ping", okHandler)

	do(t, r, http.MethodGet, "/ping")

	assert.Contains(t, buf.String(), "path=/ping")
	assert.Contains(t, buf.String(), "status=200")
}

// ── Resource routes ───────────────────────────────────────────────────────────

type stubResource struct{}

func (s *stubResource) Index(w http.ResponseWriter, r *http.Request)   { w.WriteHeader(200) }
func (s *stubResource) Store(w http.ResponseWriter, r *http.Request)   { w.WriteHeader(201) }
func (s *stubResource) Show(w http.ResponseWriter, r *http.Request)    { w.WriteHeader(200) }
func (s *stubResource) Update(w http.ResponseWriter, r *http.Request)  { w.WriteHeader(200) }
func (s *stubResource) Destroy(w http.ResponseWriter, r *http.Request) { w.WriteHeader(204) }

func TestRouter_Resource(t *testing.T) {
	r := routing.New()
	r.Resource("/photos", &stubResource{})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/photos", 200},
		{"POST", "/photos", 201},
		{"GET", "/photos/1", 200},
		{"PUT", "/photos/1", 200},
		{"PATCH", "/photos/1", 200},
		{"DELETE", "/photos/1", 204},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, do(t, r, tt.method, tt.path).Code)
		})
	}
}

// ── Controllers ───────────────────────────────────────────────────────────────

type pingController struct{}

func (*pingController) Routes(r *routing.Router) { r.Get("/ping", okHandler) }

type photoController struct{ stubResource }

func (c *photoController) Routes(r *routing.Router) { r.Resource("/photos", c) }

type notAController struct{}

func TestMountControllers(t *testing.T) {
	r := routing.New()
	n, err := routing.MountControllers(r, map[reflect.Type]any{
		reflect.TypeFor[*pingController]():  &pingController{},
		reflect.TypeFor[*photoController](): &photoController{},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/ping").Code)
	assert.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/photos").Code)
}

func TestMountControllers_RejectsNonController(t *testing.T) {
	r := routing.New()
	_, err := routing.MountControllers(r, map[reflect.Type]any{
		reflect.TypeFor[*pingController]():  &pingController{},
		reflect.TypeFor[*notAController](): &notAController{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notAController")

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/ping").Code, "nothing is mounted on error")
}

func TestMountControllers_Empty(t *testing.T) {
	n, err := routing.MountControllers(routing.New(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
