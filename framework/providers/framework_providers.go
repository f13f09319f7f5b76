package providers

import (
	"log/slog"

	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider exposes the loaded configuration as a bean so that
// components can take *config.Config as a constructor parameter.
//
// Components:
//   - *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(cat *container.Catalog) {
	cfg := p.Config
	cat.Include(container.Describe[*config.Config](
		container.Default(func() *config.Config { return cfg }),
	))
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider exposes the application logger.
//
// Components:
//   - *slog.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
	Logger *slog.Logger
}

func (p *LoggingServiceProvider) Register(cat *container.Catalog) {
	log := p.Logger
	cat.Include(container.Describe[*slog.Logger](
		container.Default(func() *slog.Logger { return log }),
	))
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router, with request logging
// installed before any controller adds routes.
//
// Components:
//   - *routing.Router  (depends on *slog.Logger)
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(cat *container.Catalog) {
	cat.Include(container.Describe[*routing.Router](
		container.Inject(func(log *slog.Logger) *routing.Router {
			r := routing.New()
			r.Middleware(routing.RequestLogger(log))
			return r
		}),
	))
}
