package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider contributes components to the container and gets a chance
// to use them once the container exists.
//
// Register runs before the container is built, so it may only describe
// components. Boot runs afterwards and may resolve anything.
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(cat *container.Catalog) {
//	    cat.Include(container.Describe[*Mailer](container.Inject(NewMailer)))
//	}
//
//	func (p *AppServiceProvider) Boot(app *container.Container) error {
//	    _, err := container.Resolve[*Mailer](app)
//	    return err
//	}
type ServiceProvider interface {
	// Register adds descriptors to the catalog.
	Register(cat *Catalog)

	// Boot is called after the container is built.
	Boot(app *Container) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(cat *container.Catalog) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry collects providers, builds the container from everything
// they registered, then boots them in registration order.
type ProviderRegistry struct {
	catalog    *Catalog
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	app        *Container
	booted     bool
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		catalog:    NewCatalog(),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method. Registering the
// same provider twice is a no-op; registering after Build is an error
// because the candidate set is already frozen.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	if r.app != nil {
		return fmt.Errorf("container: provider %T registered after the container was built", provider)
	}
	r.registered[provider] = true
	provider.Register(r.catalog)
	r.providers = append(r.providers, provider)
	return nil
}

// Build freezes the catalog and creates the container. Later calls return
// the same container.
func (r *ProviderRegistry) Build(opts ...Option) (*Container, error) {
	if r.app != nil {
		return r.app, nil
	}
	set, err := r.catalog.Freeze()
	if err != nil {
		return nil, err
	}
	r.app = New(set, opts...)
	return r.app, nil
}

// Boot calls Boot on every provider and stops at the first error.
// It requires Build and is a no-op once it has succeeded.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	if r.app == nil {
		return fmt.Errorf("container: Boot called before Build")
	}
	for _, provider := range r.providers {
		if err := provider.Boot(r.app); err != nil {
			return fmt.Errorf("container: booting %T: %w", provider, err)
		}
	}
	r.booted = true
	return nil
}

// Booted returns true once Boot has succeeded.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }

// Container returns the built container, or nil before Build.
func (r *ProviderRegistry) Container() *Container { return r.app }
