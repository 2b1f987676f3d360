package reflection

import "reflect"

// ValidatorSpec describes one check declared against a property or method
// argument: the validator's short name, its decoded options, and the
// implementation identity the name resolved to.
type ValidatorSpec struct {
	Name           string
	Options        map[string]string
	Implementation reflect.Type
}

// propertyDescriptor is the raw, builder-produced record of one declared
// property. Materialized Property objects are built from it lazily.
type propertyDescriptor struct {
	name            string
	typeName        string
	elementTypeName string
	defaultValue    any
	hasDefault      bool
	cascade         string
	validators      []ValidatorSpec
	characteristics PropertyCharacteristics
}

// parameterDescriptor is the raw record of one method parameter.
type parameterDescriptor struct {
	name             string
	position         int
	byReference      bool
	array            bool // slice/variadic flag, kept for descriptor compatibility
	optional         bool
	allowsNull       bool
	typeName         string
	defaultValue     any
	dependencyClass  string
	ignoreValidation bool
	validators       []ValidatorSpec
}

// methodDescriptor is the raw record of one declared method.
type methodDescriptor struct {
	name         string
	visibility   Visibility
	static       bool
	abstract     bool
	action       bool
	constructor  bool
	injectMethod bool
	parameters   []*parameterDescriptor
	ignoredArgs  map[string]bool
}

func (d *methodDescriptor) parameter(name string) *parameterDescriptor {
	for _, p := range d.parameters {
		if p.name == name {
			return p
		}
	}
	return nil
}

// ClassSchema is the complete, immutable metadata description of one managed
// type. It is created on first request, cached for the process lifetime, and
// reflects the type's static declaration only.
type ClassSchema struct {
	name          string
	typ           reflect.Type
	traits        ClassTrait
	ancestry      []string
	properties    map[string]*propertyDescriptor
	propertyOrder []string
	methods       map[string]*methodDescriptor
	methodOrder   []string
	injectMethods []string
	cache         *SchemaCache
}

// Name returns the fully-qualified type name, the schema's identity.
func (s *ClassSchema) Name() string { return s.name }

// Type returns the underlying struct type.
func (s *ClassSchema) Type() reflect.Type { return s.typ }

// Traits returns the classification bit-set.
func (s *ClassSchema) Traits() ClassTrait { return s.traits }

// Ancestry returns the embedded-base chain in declaration order.
func (s *ClassSchema) Ancestry() []string {
	out := make([]string, len(s.ancestry))
	copy(out, s.ancestry)
	return out
}

// IsEntity reports whether the type has identity-based semantics.
func (s *ClassSchema) IsEntity() bool { return s.traits.Has(TraitEntity) }

// IsValueObject reports whether the type has value-based semantics.
func (s *ClassSchema) IsValueObject() bool { return s.traits.Has(TraitValueObject) }

// IsModel reports whether the type is an entity or a value object.
func (s *ClassSchema) IsModel() bool { return s.IsEntity() || s.IsValueObject() }

// IsAggregateRoot reports whether the type is an entity reachable through a
// registered repository.
func (s *ClassSchema) IsAggregateRoot() bool { return s.traits.Has(TraitAggregateRoot) }

// IsController reports whether the type is an action controller.
func (s *ClassSchema) IsController() bool { return s.traits.Has(TraitController) }

// IsSingleton reports whether the type has singleton scope.
func (s *ClassSchema) IsSingleton() bool { return s.traits.Has(TraitSingleton) }

// HasConstructor reports whether a constructor function was registered.
func (s *ClassSchema) HasConstructor() bool { return s.traits.Has(TraitHasConstructor) }

// HasInjectMethods reports whether any qualifying injection-setter exists.
func (s *ClassSchema) HasInjectMethods() bool { return s.traits.Has(TraitHasInjectMethods) }

// HasInjectProperties reports whether any property is marked injectable.
func (s *ClassSchema) HasInjectProperties() bool { return s.traits.Has(TraitHasInjectProperties) }

// HasProperty reports whether the schema declares the named property.
func (s *ClassSchema) HasProperty(name string) bool {
	_, ok := s.properties[name]
	return ok
}

// Property returns the named property or a NoSuchPropertyError.
func (s *ClassSchema) Property(name string) (*Property, error) {
	props := s.cache.propertiesFor(s)
	prop, ok := props[name]
	if !ok {
		return nil, &NoSuchPropertyError{TypeName: s.name, Property: name}
	}
	return prop, nil
}

// Properties returns all declared properties in declaration order.
func (s *ClassSchema) Properties() []*Property {
	props := s.cache.propertiesFor(s)
	out := make([]*Property, 0, len(s.propertyOrder))
	for _, name := range s.propertyOrder {
		out = append(out, props[name])
	}
	return out
}

// InjectProperties returns the properties marked injectable, in declaration
// order.
func (s *ClassSchema) InjectProperties() []*Property {
	var out []*Property
	for _, prop := range s.Properties() {
		if prop.IsInjectable() {
			out = append(out, prop)
		}
	}
	return out
}

// HasMethod reports whether the schema declares the named method.
func (s *ClassSchema) HasMethod(name string) bool {
	_, ok := s.methods[name]
	return ok
}

// Method returns the named method or a NoSuchMethodError.
func (s *ClassSchema) Method(name string) (*Method, error) {
	methods := s.cache.methodsFor(s)
	method, ok := methods[name]
	if !ok {
		return nil, &NoSuchMethodError{TypeName: s.name, Method: name}
	}
	return method, nil
}

// Methods returns all declared methods, constructor included, in stable
// order.
func (s *ClassSchema) Methods() []*Method {
	methods := s.cache.methodsFor(s)
	out := make([]*Method, 0, len(s.methodOrder))
	for _, name := range s.methodOrder {
		out = append(out, methods[name])
	}
	return out
}

// InjectMethods returns the qualifying injection-setter methods in the order
// they were recognized.
func (s *ClassSchema) InjectMethods() []*Method {
	methods := s.cache.methodsFor(s)
	out := make([]*Method, 0, len(s.injectMethods))
	for _, name := range s.injectMethods {
		out = append(out, methods[name])
	}
	return out
}

// Constructor returns the registered constructor, if any.
func (s *ClassSchema) Constructor() (*Method, bool) {
	for _, name := range s.methodOrder {
		if s.methods[name].constructor {
			method, err := s.Method(name)
			return method, err == nil
		}
	}
	return nil, false
}

// ConstructorParameters returns the constructor's parameters in declaration
// order, or nil when no constructor is registered.
func (s *ClassSchema) ConstructorParameters() []*Parameter {
	ctor, ok := s.Constructor()
	if !ok {
		return nil
	}
	return ctor.Parameters()
}
