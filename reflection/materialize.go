package reflection

import "sync"

// Property is the immutable, materialized view of one declared property.
// Instances are built once per type name and shared by every holder of that
// type's schema.
type Property struct {
	descriptor *propertyDescriptor
}

// Name returns the property name.
func (p *Property) Name() string { return p.descriptor.name }

// TypeName returns the declared type name, or the empty string when the
// declaration carries no usable type.
func (p *Property) TypeName() string { return p.descriptor.typeName }

// ElementTypeName returns the element class of a typed collection, or the
// empty string for plain properties and unparameterized collections.
func (p *Property) ElementTypeName() string { return p.descriptor.elementTypeName }

// DefaultValue returns the declared default and whether one was declared,
// distinguishing absent from an explicit null.
func (p *Property) DefaultValue() (any, bool) {
	return p.descriptor.defaultValue, p.descriptor.hasDefault
}

// Cascade returns the cascade-delete directive, or the empty string.
func (p *Property) Cascade() string { return p.descriptor.cascade }

// Validators returns the declared validator specifications in order.
func (p *Property) Validators() []ValidatorSpec {
	out := make([]ValidatorSpec, len(p.descriptor.validators))
	copy(out, p.descriptor.validators)
	return out
}

// Characteristics returns the raw characteristics bit-set.
func (p *Property) Characteristics() PropertyCharacteristics { return p.descriptor.characteristics }

// Visibility returns the property's single visibility.
func (p *Property) Visibility() Visibility { return p.descriptor.characteristics.Visibility() }

// IsStatic reports the static bit. Carried for descriptor compatibility.
func (p *Property) IsStatic() bool { return p.descriptor.characteristics.Has(CharacteristicStatic) }

// IsLazy reports whether the property is marked for lazy loading.
func (p *Property) IsLazy() bool { return p.descriptor.characteristics.Has(CharacteristicLazy) }

// IsTransient reports whether the property is excluded from persistence.
func (p *Property) IsTransient() bool {
	return p.descriptor.characteristics.Has(CharacteristicTransient)
}

// IsInjectable reports whether the property is a dependency-injection target.
func (p *Property) IsInjectable() bool {
	return p.descriptor.characteristics.Has(CharacteristicInjectable)
}

// Method is the immutable, materialized view of one declared method.
type Method struct {
	descriptor *methodDescriptor
	parameters []*Parameter
}

// Name returns the method name.
func (m *Method) Name() string { return m.descriptor.name }

// Visibility returns the method's visibility.
func (m *Method) Visibility() Visibility { return m.descriptor.visibility }

// IsStatic reports the static bit. Carried for descriptor compatibility.
func (m *Method) IsStatic() bool { return m.descriptor.static }

// IsAbstract reports the abstract bit. Carried for descriptor compatibility.
func (m *Method) IsAbstract() bool { return m.descriptor.abstract }

// IsAction reports whether the method name follows the action convention.
func (m *Method) IsAction() bool { return m.descriptor.action }

// IsConstructor reports whether this is the registered constructor.
func (m *Method) IsConstructor() bool { return m.descriptor.constructor }

// IsInjectMethod reports whether the method qualifies as an injection setter.
func (m *Method) IsInjectMethod() bool { return m.descriptor.injectMethod }

// Parameters returns the method's parameters in declaration order.
func (m *Method) Parameters() []*Parameter {
	out := make([]*Parameter, len(m.parameters))
	copy(out, m.parameters)
	return out
}

// Parameter returns the named parameter, or nil.
func (m *Method) Parameter(name string) *Parameter {
	for _, p := range m.parameters {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// IgnoresValidationFor reports whether the named argument carries an
// ignore-validation marker.
func (m *Method) IgnoresValidationFor(argument string) bool {
	return m.descriptor.ignoredArgs[argument]
}

// Parameter is the immutable, materialized view of one method parameter.
type Parameter struct {
	descriptor *parameterDescriptor
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.descriptor.name }

// Position returns the zero-based declaration position.
func (p *Parameter) Position() int { return p.descriptor.position }

// TypeName returns the resolved type name, or the empty string when no
// source could resolve one.
func (p *Parameter) TypeName() string { return p.descriptor.typeName }

// ByReference reports whether the parameter is passed by reference.
func (p *Parameter) ByReference() bool { return p.descriptor.byReference }

// IsArray reports the slice/variadic flag. Carried for descriptor
// compatibility.
func (p *Parameter) IsArray() bool { return p.descriptor.array }

// Optional reports whether the parameter may be omitted.
func (p *Parameter) Optional() bool { return p.descriptor.optional }

// AllowsNull reports whether nil inhabits the parameter type.
func (p *Parameter) AllowsNull() bool { return p.descriptor.allowsNull }

// DefaultValue returns the declared default, if any.
func (p *Parameter) DefaultValue() any { return p.descriptor.defaultValue }

// DependencyClass returns the class this parameter injects, or the empty
// string for non-injection parameters.
func (p *Parameter) DependencyClass() string { return p.descriptor.dependencyClass }

// IgnoreValidation reports whether validation is skipped for this argument.
func (p *Parameter) IgnoreValidation() bool { return p.descriptor.ignoreValidation }

// Validators returns the validator specifications bound to this parameter.
func (p *Parameter) Validators() []ValidatorSpec {
	out := make([]ValidatorSpec, len(p.descriptor.validators))
	copy(out, p.descriptor.validators)
	return out
}

// SchemaCache owns the materialized Property and Method objects of one
// registry, keyed by type name. Each per-type set is built exactly once on
// first access, fully populated before publication, and shared read-only by
// every caller thereafter. Entries are never mutated or evicted.
//
// Descriptors depend on the registry's conventions, so a cache must never
// span registries with different conventions; every registry gets its own
// cache by default and sharing via WithCache is opt-in.
//
// Concurrent first accesses for the same key may race to build; LoadOrStore
// gives first-writer-wins and every caller observes one consistent value.
// Redundant builds are wasteful but not incorrect since descriptors are pure
// functions of the type's static declaration and the conventions.
type SchemaCache struct {
	properties sync.Map // type name -> map[string]*Property
	methods    sync.Map // type name -> map[string]*Method
}

// NewSchemaCache returns an empty cache.
func NewSchemaCache() *SchemaCache {
	return &SchemaCache{}
}

func (c *SchemaCache) propertiesFor(schema *ClassSchema) map[string]*Property {
	if cached, ok := c.properties.Load(schema.name); ok {
		return cached.(map[string]*Property)
	}
	built := make(map[string]*Property, len(schema.properties))
	for name, descriptor := range schema.properties {
		built[name] = &Property{descriptor: descriptor}
	}
	actual, _ := c.properties.LoadOrStore(schema.name, built)
	return actual.(map[string]*Property)
}

func (c *SchemaCache) methodsFor(schema *ClassSchema) map[string]*Method {
	if cached, ok := c.methods.Load(schema.name); ok {
		return cached.(map[string]*Method)
	}
	built := make(map[string]*Method, len(schema.methods))
	for name, descriptor := range schema.methods {
		method := &Method{descriptor: descriptor}
		for _, param := range descriptor.parameters {
			method.parameters = append(method.parameters, &Parameter{descriptor: param})
		}
		built[name] = method
	}
	actual, _ := c.methods.LoadOrStore(schema.name, built)
	return actual.(map[string]*Method)
}
