// Package container provides a singleton dependency-injection container
// that builds a fully wired object graph from a fixed set of candidate types.
//
// # Overview
//
// Each candidate is described by a Descriptor: its type, whether it is
// abstract, the interfaces it satisfies, its constructors and its markers.
// The container consumes a frozen CandidateSet of descriptors and, on
// request, builds each concrete type exactly once, resolving constructor
// parameters recursively. It mirrors a BeanFactory: getBean, initialize and
// a marker filter over the beans built so far.
//
// # Container Lifecycle
//
//  1. Describe:   cat.Include(container.Describe[*Svc](container.Inject(NewSvc)))
//  2. Freeze:     set, err := cat.Freeze()
//  3. Create:     c := container.New(set)
//  4. Resolve:    svc, err := container.Resolve[*Svc](c)   // or c.Initialize()
//  5. Discard the container; instances live as long as it does.
//
// # Describing components
//
//	// Injectable constructor: its parameters are resolved by the container.
//	container.Describe[*UserService](
//	    container.Inject(NewUserService),   // func(UserRepository) *UserService
//	    container.As[UserFinder](),
//	)
//
//	// Zero-argument constructor, used when nothing is marked injectable.
//	container.Describe[*Clock](container.Default(NewClock))
//
//	// Markers are opaque tags used only for filtering.
//	container.Describe[*UserController](
//	    container.Inject(NewUserController),
//	    container.Marked(container.MarkerController),
//	)
//
// # Resolution rules
//
// A concrete candidate is built with its single injectable constructor, or
// its zero-argument constructor when none is injectable. Requesting any
// other type (typically an interface) resolves to the one concrete
// candidate declaring it with As; zero matches is a NotFoundError, several
// is an AmbiguousBindingError. Dependencies are built before dependents,
// and a dependency cycle is reported as CyclicDependencyError. Every failure
// reaches the caller wrapped in BeanCreationError and leaves no cache entry.
//
// # Markers
//
//	controllers := c.WithMarker(container.MarkerController) // cached beans only
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(cat *container.Catalog) {
//	    cat.Include(container.Describe[*Mailer](container.Inject(NewMailer)))
//	}
//
//	registry := container.NewProviderRegistry()
//	_ = registry.Register(&AppServiceProvider{})
//	c, err := registry.Build()
//	err = registry.Boot()
package container
