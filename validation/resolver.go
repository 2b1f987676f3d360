package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"sync"
)

// Factory builds a configured validator from decoded marker options.
type Factory func(options Options) (Validator, error)

// NoSuchValidatorError reports a validator short name with no registered
// implementation.
type NoSuchValidatorError struct {
	Name string
}

func (e *NoSuchValidatorError) Error() string {
	return fmt.Sprintf("no validator registered for name %q", e.Name)
}

// Resolver maps validator short names to implementations. Resolution yields
// both a configured instance and the implementation's type identity, which
// the schema layer records in validator specifications.
type Resolver struct {
	mu        sync.RWMutex
	factories map[string]Factory
	identity  map[string]reflect.Type
}

// NewResolver returns a resolver preloaded with the built-in validators.
func NewResolver() *Resolver {
	r := &Resolver{
		factories: make(map[string]Factory),
		identity:  make(map[string]reflect.Type),
	}
	r.register("NotEmpty", &NotEmptyValidator{}, func(Options) (Validator, error) {
		return &NotEmptyValidator{}, nil
	})
	r.register("StringLength", &StringLengthValidator{}, func(o Options) (Validator, error) {
		min, err := o.intOption("minimum", 0)
		if err != nil {
			return nil, err
		}
		max, err := o.intOption("maximum", 0)
		if err != nil {
			return nil, err
		}
		return &StringLengthValidator{Minimum: min, Maximum: max}, nil
	})
	r.register("EmailAddress", &EmailAddressValidator{}, func(Options) (Validator, error) {
		return &EmailAddressValidator{}, nil
	})
	r.register("NumberRange", &NumberRangeValidator{}, func(o Options) (Validator, error) {
		min, err := o.floatOption("minimum", 0)
		if err != nil {
			return nil, err
		}
		max, err := o.floatOption("maximum", 0)
		if err != nil {
			return nil, err
		}
		return &NumberRangeValidator{Minimum: min, Maximum: max}, nil
	})
	r.register("RegularExpression", &RegularExpressionValidator{}, func(o Options) (Validator, error) {
		raw, ok := o["regularExpression"]
		if !ok {
			return nil, fmt.Errorf("RegularExpression requires a regularExpression option")
		}
		pattern, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		return &RegularExpressionValidator{Pattern: pattern}, nil
	})
	r.register("Uuid", &UuidValidator{}, func(Options) (Validator, error) {
		return &UuidValidator{}, nil
	})
	return r
}

func (r *Resolver) register(name string, prototype Validator, factory Factory) {
	r.factories[name] = factory
	r.identity[name] = reflect.TypeOf(prototype).Elem()
}

// Register adds or replaces a custom validator under the given short name.
func (r *Resolver) Register(name string, prototype Validator, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(name, prototype, factory)
}

// Resolve returns a configured validator and its implementation identity for
// the given short name. Unknown names yield a NoSuchValidatorError.
func (r *Resolver) Resolve(name string, options Options) (Validator, reflect.Type, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	identity := r.identity[name]
	r.mu.RUnlock()
	if !ok {
		return nil, nil, &NoSuchValidatorError{Name: name}
	}
	validator, err := factory(options)
	if err != nil {
		return nil, nil, fmt.Errorf("validator %s: %w", name, err)
	}
	return validator, identity, nil
}

// Has reports whether a validator is registered under the given short name.
func (r *Resolver) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered validator short names, sorted.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
