package greeting_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beans/app/greeting"
	"github.com/km-arc/go-beans/framework/app"
	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
)

func newApp(t *testing.T) *app.Application {
	t.Helper()
	cfg := &config.Config{
		App:       config.AppConfig{Name: "test", Env: "testing"},
		Container: config.ContainerConfig{Eager: true, Strict: true},
	}
	a := app.NewWithConfig(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, a.Register(&greeting.Provider{}))
	return a
}

func get(t *testing.T, h http.Handler, path string) (int, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return rr.Code, body
}

func TestService_Greet(t *testing.T) {
	svc := greeting.NewService(greeting.NewMemoryRepository(), slog.New(slog.DiscardHandler))

	msg, err := svc.Greet("fr", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour, Ana!", msg)

	msg, err = svc.Greet("en", "")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", msg)

	_, err = svc.Greet("xx", "Ana")
	assert.ErrorIs(t, err, greeting.ErrUnknownLanguage)

	assert.Equal(t, []string{"de", "en", "es", "fr", "ko"}, svc.Languages())
}

func TestProvider_WiresRepositoryThroughInterface(t *testing.T) {
	a := newApp(t)
	require.NoError(t, a.Boot())
	c := a.Container()

	repo, err := container.Resolve[greeting.Repository](c)
	require.NoError(t, err)
	mem, err := container.Resolve[*greeting.MemoryRepository](c)
	require.NoError(t, err)
	assert.Same(t, mem, repo.(*greeting.MemoryRepository))

	controllers := c.Controllers()
	assert.Len(t, controllers, 1)
}

func TestController_Routes(t *testing.T) {
	a := newApp(t)
	h, err := a.Handler()
	require.NoError(t, err)

	code, body := get(t, h, "/greetings/fr?name=Ana")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"greeting": "Bonjour, Ana!"}, body["data"])

	code, body = get(t, h, "/greetings/xx")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body["message"], "unknown language")

	code, body = get(t, h, "/greetings/")
	require.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]any)
	assert.Len(t, data["languages"], 5)
}
