package reflection

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/devskio/typo3/validation"
)

// Registry holds the managed object model: every type the framework touches
// is registered once at application startup, and schemas are built lazily on
// first request and cached for the process lifetime.
//
// Registration is the Go substitute for loading a type by name: the registry
// maps fully-qualified names back to reflect types, which is what makes
// type-not-found a detectable condition and what lets aggregate-root
// classification discover repository types.
type Registry struct {
	mu          sync.RWMutex
	types       map[string]registration
	schemas     sync.Map // type name -> *ClassSchema
	conventions Conventions
	resolver    *validation.Resolver
	cache       *SchemaCache
	logger      *zap.Logger
}

type registration struct {
	typ  reflect.Type
	ctor any
}

// Option configures a Registry.
type Option func(*Registry)

// WithConventions overrides the default naming conventions.
func WithConventions(c Conventions) Option {
	return func(r *Registry) { r.conventions = c }
}

// WithResolver overrides the validator resolver.
func WithResolver(resolver *validation.Resolver) Option {
	return func(r *Registry) { r.resolver = resolver }
}

// WithCache shares a materialization cache between registries. Sharing is
// only sound between registries with identical conventions.
func WithCache(cache *SchemaCache) Option {
	return func(r *Registry) { r.cache = cache }
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		types:       make(map[string]registration),
		conventions: DefaultConventions(),
		resolver:    validation.NewResolver(),
		cache:       NewSchemaCache(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterOption configures a single type registration.
type RegisterOption func(*registration)

// WithConstructor attaches a constructor function whose parameters are
// introspected as dependency-injection candidates.
func WithConstructor(ctor any) RegisterOption {
	return func(reg *registration) { reg.ctor = ctor }
}

// Register adds a managed type to the object model. The instance may be a
// value, a pointer, or a reflect.Type; it must resolve to a struct.
// Registering the same type twice is an error.
func (r *Registry) Register(instance any, opts ...RegisterOption) error {
	t, err := StructType(instance)
	if err != nil {
		return err
	}
	reg := registration{typ: t}
	for _, opt := range opts {
		opt(&reg)
	}

	name := QualifiedName(t)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		return fmt.Errorf("type %s is already registered", name)
	}
	r.types[name] = reg
	r.logger.Debug("registered managed type", zap.String("type", name))
	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (r *Registry) MustRegister(instance any, opts ...RegisterOption) {
	if err := r.Register(instance, opts...); err != nil {
		panic(err)
	}
}

// HasType reports whether a type name is registered.
func (r *Registry) HasType(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// TypeNames returns the registered type names, sorted.
func (r *Registry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SchemaFor returns the schema for a registered type name, building and
// caching it on first request. Concurrent first requests may race to build;
// first-writer-wins and every caller observes the same fully-built schema.
func (r *Registry) SchemaFor(name string) (*ClassSchema, error) {
	if cached, ok := r.schemas.Load(name); ok {
		return cached.(*ClassSchema), nil
	}

	r.mu.RLock()
	reg, ok := r.types[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &TypeNotFoundError{TypeName: name}
	}

	builder := &schemaBuilder{
		conventions: r.conventions,
		resolver:    r.resolver,
		logger:      r.logger,
		hasType:     r.HasType,
		cache:       r.cache,
	}
	schema, err := builder.build(reg.typ, reg.ctor)
	if err != nil {
		return nil, fmt.Errorf("building schema for %s: %w", name, err)
	}

	actual, loaded := r.schemas.LoadOrStore(name, schema)
	if loaded {
		r.logger.Warn("discarded redundant schema build", zap.String("type", name))
	}
	return actual.(*ClassSchema), nil
}

// SchemaOf returns the schema for the type of the given instance.
func (r *Registry) SchemaOf(instance any) (*ClassSchema, error) {
	t, err := StructType(instance)
	if err != nil {
		return nil, err
	}
	return r.SchemaFor(QualifiedName(t))
}

// Global registry, wired at application startup like the runtime metadata
// registry of the surrounding framework.
var (
	defaultRegistry   = NewRegistry()
	defaultRegistryMu sync.RWMutex
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultRegistryMu.RLock()
	defer defaultRegistryMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide registry. Intended for hosts that
// build a configured registry at startup, and for tests.
func SetDefault(r *Registry) {
	defaultRegistryMu.Lock()
	defer defaultRegistryMu.Unlock()
	defaultRegistry = r
}

// Register adds a managed type to the process-wide registry.
func Register(instance any, opts ...RegisterOption) error {
	return Default().Register(instance, opts...)
}

// SchemaFor returns a schema from the process-wide registry.
func SchemaFor(name string) (*ClassSchema, error) {
	return Default().SchemaFor(name)
}

// SchemaOf returns a schema from the process-wide registry by instance.
func SchemaOf(instance any) (*ClassSchema, error) {
	return Default().SchemaOf(instance)
}
