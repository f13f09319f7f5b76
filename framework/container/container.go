package container

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// ── Options ───────────────────────────────────────────────────────────────────

// Option configures a Container.
type Option func(*Container)

// WithLogger routes container diagnostics to l. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container builds singleton instances for the types of a CandidateSet.
//
// Each concrete type is constructed at most once. Instances are cached for the
// lifetime of the Container and never replaced; requests for an abstract type
// are aliased to the concrete instance that satisfies it.
//
// Construction runs under a single build lock held for a whole dependency
// subgraph. Constructors therefore must not call back into the Container that
// is building them.
type Container struct {
	mu sync.RWMutex

	// concrete type → singleton instance
	instances map[reflect.Type]any

	// requested (abstract) type → concrete type
	aliases map[reflect.Type]reflect.Type

	initialized bool

	// build serializes every check-then-create sequence.
	build sync.Mutex

	candidates *CandidateSet
	id         uuid.UUID
	log        *slog.Logger
}

// New creates a container over candidates. A nil set behaves as empty.
func New(candidates *CandidateSet, opts ...Option) *Container {
	if candidates == nil {
		candidates = &CandidateSet{byType: map[reflect.Type]*Descriptor{}}
	}
	c := &Container{
		instances:  make(map[reflect.Type]any),
		aliases:    make(map[reflect.Type]reflect.Type),
		candidates: candidates,
		id:         uuid.New(),
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(slog.String("container", c.id.String()))
	return c
}

// ID identifies this container in logs.
func (c *Container) ID() uuid.UUID { return c.id }

// Candidates returns the set the container was built from.
func (c *Container) Candidates() *CandidateSet { return c.candidates }

// ── Resolution ────────────────────────────────────────────────────────────────

// Get returns the singleton for t, building it and its dependencies first if
// needed. Failures are reported as *BeanCreationError wrapping the cause.
func (c *Container) Get(t reflect.Type) (any, error) {
	if t == nil {
		return nil, &BeanCreationError{Cause: &NotFoundError{}}
	}
	if inst, ok := c.cached(t); ok {
		return inst, nil
	}

	c.build.Lock()
	defer c.build.Unlock()

	r := &resolution{c: c}
	inst, err := r.resolve(t)
	if err != nil {
		c.log.Error("bean creation failed", slog.String("type", typeName(t)), slog.Any("error", err))
		return nil, err
	}
	return inst, nil
}

// Initialize eagerly builds every candidate in registration order and stops
// at the first failure. Instances built before the failure stay cached, but
// Initialized keeps reporting false.
func (c *Container) Initialize() error {
	for _, t := range c.candidates.order {
		if _, err := c.Get(t); err != nil {
			return fmt.Errorf("container: initialize: %w", err)
		}
	}

	c.mu.Lock()
	c.initialized = true
	n := len(c.instances)
	c.mu.Unlock()

	c.log.Info("container initialized", slog.Int("candidates", c.candidates.Len()), slog.Int("instances", n))
	return nil
}

// Initialized reports whether Initialize completed successfully.
func (c *Container) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// resolution is the state of one top-level Get: the chain of types currently
// being built, used to detect cycles.
type resolution struct {
	c    *Container
	path []reflect.Type
}

func (r *resolution) resolve(t reflect.Type) (any, error) {
	if inst, ok := r.c.cached(t); ok {
		return inst, nil
	}
	if err := r.enter(t); err != nil {
		return nil, err
	}
	defer r.leave()

	inst, err := r.create(t)
	if err != nil {
		return nil, &BeanCreationError{Type: t, Cause: err}
	}
	return inst, nil
}

func (r *resolution) create(t reflect.Type) (any, error) {
	d, err := r.c.candidates.resolveConcrete(t)
	if err != nil {
		return nil, err
	}

	if d.Type != t {
		// Already built through another request: only record the alias.
		if inst, ok := r.c.cached(d.Type); ok {
			r.c.store(d.Type, t, inst)
			return inst, nil
		}
		if err := r.enter(d.Type); err != nil {
			return nil, err
		}
		defer r.leave()
	}

	ctor, err := selectConstructor(d)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(ctor.Params))
	for i, p := range ctor.Params {
		arg, err := r.resolve(p)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	inst, err := invoke(ctor, args)
	if err != nil {
		return nil, err
	}

	r.c.store(d.Type, t, inst)
	r.c.log.Debug("bean created", slog.String("type", typeName(d.Type)), slog.Int("deps", len(args)))
	return inst, nil
}

func (r *resolution) enter(t reflect.Type) error {
	if i := slices.Index(r.path, t); i >= 0 {
		cycle := append(slices.Clone(r.path[i:]), t)
		return &CyclicDependencyError{Cycle: cycle}
	}
	r.path = append(r.path, t)
	return nil
}

func (r *resolution) leave() { r.path = r.path[:len(r.path)-1] }

// invoke runs ctor, turning panics and nil results into errors.
func invoke(ctor *Constructor, args []any) (inst any, err error) {
	if ctor.New == nil {
		return nil, errors.New("constructor has no function")
	}
	defer func() {
		if rec := recover(); rec != nil {
			inst = nil
			err = fmt.Errorf("constructor panicked: %v", rec)
		}
	}()

	inst, err = ctor.New(args)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, errors.New("constructor returned nil")
	}
	return inst, nil
}

// ── Instance cache ────────────────────────────────────────────────────────────

func (c *Container) cached(t reflect.Type) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if inst, ok := c.instances[t]; ok {
		return inst, true
	}
	if concrete, ok := c.aliases[t]; ok {
		inst, ok := c.instances[concrete]
		return inst, ok
	}
	return nil, false
}

// store publishes inst under concrete and, when different, aliases requested
// to it. An existing entry is never overwritten.
func (c *Container) store(concrete, requested reflect.Type, inst any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.instances[concrete]; !ok {
		c.instances[concrete] = inst
	}
	if requested != concrete {
		c.aliases[requested] = concrete
	}
}

// Resolved reports whether t (concrete or alias) already has an instance.
func (c *Container) Resolved(t reflect.Type) bool {
	_, ok := c.cached(t)
	return ok
}

// Len returns the number of cached concrete instances.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.instances)
}

// Snapshot returns a copy of the cache keyed by concrete type.
func (c *Container) Snapshot() map[reflect.Type]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[reflect.Type]any, len(c.instances))
	for t, inst := range c.instances {
		out[t] = inst
	}
	return out
}

// ── Capability filter ─────────────────────────────────────────────────────────

// WithMarker returns the cached instances whose descriptor carries m.
// It never builds anything.
func (c *Container) WithMarker(m Marker) map[reflect.Type]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[reflect.Type]any)
	for t, inst := range c.instances {
		if d, ok := c.candidates.descriptor(t); ok && d.HasMarker(m) {
			out[t] = inst
		}
	}
	return out
}

// Controllers returns the cached instances marked as request handlers.
func (c *Container) Controllers() map[reflect.Type]any {
	return c.WithMarker(MarkerController)
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Get and type-asserts the result.
//
//	repo, err := container.Resolve[UserRepository](c)
func Resolve[T any](c *Container) (T, error) {
	var zero T
	t := reflect.TypeFor[T]()
	inst, err := c.Get(t)
	if err != nil {
		return zero, err
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%s]: resolved to %T", typeName(t), inst)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure.
// Useful in bootstrap code where a missing bean is fatal.
func MustResolve[T any](c *Container) T {
	typed, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return typed
}
