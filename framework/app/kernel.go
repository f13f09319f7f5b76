package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/logging"
	"github.com/km-arc/go-beans/framework/providers"
	"github.com/km-arc/go-beans/framework/routing"
)

// Application is the top-level application kernel. It owns the provider
// registry and, once booted, the container and the router built from it.
type Application struct {
	Providers *container.ProviderRegistry

	config    *config.Config
	log       *slog.Logger
	container *container.Container
	router    *routing.Router
	booted    bool
}

// New loads configuration from envFiles and creates the application.
func New(envFiles ...string) *Application {
	cfg := config.Load(envFiles...)
	return NewWithConfig(cfg, logging.New(cfg.Log, os.Stderr))
}

// NewWithConfig creates the application from an already loaded config.
func NewWithConfig(cfg *config.Config, log *slog.Logger) *Application {
	a := &Application{
		Providers: container.NewProviderRegistry(),
		config:    cfg,
		log:       log,
	}

	// Framework core providers; registration on a fresh registry cannot fail.
	_ = a.Providers.Register(&providers.ConfigServiceProvider{Config: cfg})
	_ = a.Providers.Register(&providers.LoggingServiceProvider{Logger: log})
	_ = a.Providers.Register(&providers.RoutingServiceProvider{})

	return a
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot builds the container, eagerly initializes it when configured, boots
// every provider and mounts the controllers on the router.
func (a *Application) Boot() error {
	if a.booted {
		return nil
	}

	c, err := a.Providers.Build(container.WithLogger(a.log))
	if err != nil {
		return fmt.Errorf("app: building container: %w", err)
	}
	a.container = c

	if a.config.Container.Eager {
		if err := c.Initialize(); err != nil {
			if a.config.Container.Strict {
				return err
			}
			a.log.Warn("eager initialization failed, continuing lazily", slog.Any("error", err))
		}
	}

	if err := a.Providers.Boot(); err != nil {
		return err
	}

	router, err := container.Resolve[*routing.Router](c)
	if err != nil {
		return err
	}
	controllers, err := a.controllers()
	if err != nil {
		return err
	}
	n, err := routing.MountControllers(router, controllers)
	if err != nil {
		return err
	}
	a.router = router
	a.booted = true

	a.log.Info("application booted", slog.Int("beans", c.Len()), slog.Int("controllers", n))
	return nil
}

// controllers builds every controller-marked candidate (routes must exist
// before serving, even in lazy mode) and returns the cached controllers.
func (a *Application) controllers() (map[reflect.Type]any, error) {
	for _, d := range a.container.Candidates().Descriptors() {
		if d.Abstract || !d.HasMarker(container.MarkerController) {
			continue
		}
		if _, err := a.container.Get(d.Type); err != nil {
			return nil, err
		}
	}
	return a.container.Controllers(), nil
}

// Booted reports whether Boot has succeeded.
func (a *Application) Booted() bool { return a.booted }

// Config returns the loaded configuration.
func (a *Application) Config() *config.Config { return a.config }

// Container returns the container, or nil before Boot.
func (a *Application) Container() *container.Container { return a.container }

// Handler returns the HTTP handler, booting the application if needed.
func (a *Application) Handler() (http.Handler, error) {
	if err := a.Boot(); err != nil {
		return nil, err
	}
	return a.router, nil
}

// Run boots the application (if needed) and serves HTTP on APP_PORT until
// ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + a.config.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	color.New(color.FgGreen, color.Bold).Fprintf(os.Stdout, "🚀  %s running on http://localhost%s  [%s]\n",
		a.config.App.Name, srv.Addr, a.config.App.Env)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// PrintBeans writes one line per candidate: its type, whether it has been
// built, and its markers.
func (a *Application) PrintBeans(w io.Writer) {
	if a.container == nil {
		fmt.Fprintln(w, "container not built")
		return
	}

	built := color.New(color.FgGreen).SprintFunc()
	lazy := color.New(color.FgYellow).SprintFunc()
	abstract := color.New(color.FgCyan).SprintFunc()
	tag := color.New(color.FgMagenta).SprintFunc()

	descs := a.container.Candidates().Descriptors()
	slices.SortFunc(descs, func(x, y container.Descriptor) int {
		return strings.Compare(x.Type.String(), y.Type.String())
	})

	for _, d := range descs {
		var status string
		switch {
		case d.Abstract:
			status = abstract("abstract")
		case a.container.Resolved(d.Type):
			status = built("built")
		default:
			status = lazy("lazy")
		}

		markers := make([]string, len(d.Markers))
		for i, m := range d.Markers {
			markers[i] = string(m)
		}
		line := fmt.Sprintf("%-10s %s", status, d.Type)
		if len(markers) > 0 {
			line += " " + tag("["+strings.Join(markers, ",")+"]")
		}
		fmt.Fprintln(w, line)
	}
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.config.App.Debug }
