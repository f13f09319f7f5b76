package routing

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router wraps chi.Router with Laravel-style helpers.
type Router struct {
	mux chi.Router
}

// New creates a Router with sane defaults (RequestID, RealIP, Recoverer).
// Request logging is opt-in through Middleware(RequestLogger(log)).
func New() *Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	return &Router{mux: r}
}

// ── HTTP verbs ───────────────────────────────────────────────────────────────

func (r *Router) Get(pattern string, h http.HandlerFunc)    { r.mux.Get(pattern, h) }
func (r *Router) Post(pattern string, h http.HandlerFunc)   { r.mux.Post(pattern, h) }
func (r *Router) Put(pattern string, h http.HandlerFunc)    { r.mux.Put(pattern, h) }
func (r *Router) Patch(pattern string, h http.HandlerFunc)  { r.mux.Patch(pattern, h) }
func (r *Router) Delete(pattern string, h http.HandlerFunc) { r.mux.Delete(pattern, h) }

// ── Groups & Prefixes ────────────────────────────────────────────────────────

// Group creates an inline group sharing middleware.
func (r *Router) Group(fn func(r *Router)) {
	r.mux.Group(func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// Prefix creates a sub-router with a URL prefix.
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// ── Middleware ───────────────────────────────────────────────────────────────

// Middleware adds one or more middleware to the router.
func (r *Router) Middleware(mw ...func(http.Handler) http.Handler) {
	r.mux.Use(mw...)
}

// RequestLogger logs one line per request through log.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)
			log.Info("request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("elapsed", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(req.Context())),
			)
		})
	}
}

// ── Resource routes ──────────────────────────────────────────────────────────

// ResourceController handles the standard RESTful routes of a resource.
//
//	GET    /photos           → c.Index
//	POST   /photos           → c.Store
//	GET    /photos/{id}      → c.Show
//	PUT    /photos/{id}      → c.Update
//	DELETE /photos/{id}      → c.Destroy
type ResourceController interface {
	Index(w http.ResponseWriter, r *http.Request)
	Store(w http.ResponseWriter, r *http.Request)
	Show(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Destroy(w http.ResponseWriter, r *http.Request)
}

func (r *Router) Resource(pattern string, c ResourceController) {
	r.mux.Get(pattern, c.Index)
	r.mux.Post(pattern, c.Store)
	r.mux.Get(pattern+"/{id}", c.Show)
	r.mux.Put(pattern+"/{id}", c.Update)
	r.mux.Patch(pattern+"/{id}", c.Update)
	r.mux.Delete(pattern+"/{id}", c.Destroy)
}

// ── Controllers ──────────────────────────────────────────────────────────────

// Controller is a bean that registers its own routes.
type Controller interface {
	Routes(r *Router)
}

// MountControllers calls Routes on every controller in beans, ordered by
// type name so that route registration is deterministic. A bean that does not
// implement Controller is an error and nothing is mounted.
//
//	routing.MountControllers(router, app.Controllers())
func MountControllers(r *Router, beans map[reflect.Type]any) (int, error) {
	types := make([]reflect.Type, 0, len(beans))
	for t := range beans {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	controllers := make([]Controller, 0, len(types))
	for _, t := range types {
		ctrl, ok := beans[t].(Controller)
		if !ok {
			return 0, fmt.Errorf("routing: [%s] is marked as a controller but has no Routes method", t)
		}
		controllers = append(controllers, ctrl)
	}
	for _, ctrl := range controllers {
		ctrl.Routes(r)
	}
	return len(controllers), nil
}

// ── Params ───────────────────────────────────────────────────────────────────

// Param extracts a URL param.
func Param(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// ── Serve ────────────────────────────────────────────────────────────────────

// ServeHTTP implements http.Handler so Router can be passed to http.ListenAndServe.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Handler returns the underlying http.Handler (for testing etc.).
func (r *Router) Handler() http.Handler {
	return r.mux
}
