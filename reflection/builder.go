package reflection

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/devskio/typo3/reflection/markers"
	"github.com/devskio/typo3/validation"
)

// schemaBuilder assembles one ClassSchema from the three metadata sources.
// Construction is sequential and atomic: it either returns a fully-built
// schema or an error, never a partial one.
type schemaBuilder struct {
	conventions Conventions
	resolver    *validation.Resolver
	introspect  Introspector
	logger      *zap.Logger
	hasType     func(name string) bool
	cache       *SchemaCache
}

func (b *schemaBuilder) build(t reflect.Type, ctor any) (*ClassSchema, error) {
	name := QualifiedName(t)
	b.logger.Debug("building class schema", zap.String("type", name))

	schema := &ClassSchema{
		name:       name,
		typ:        t,
		ancestry:   b.introspect.Ancestry(t),
		properties: make(map[string]*propertyDescriptor),
		methods:    make(map[string]*methodDescriptor),
		cache:      b.cache,
	}

	traits, err := b.classify(t, name)
	if err != nil {
		return nil, err
	}

	for _, field := range b.introspect.DeclaredFields(t) {
		descriptor, err := b.buildProperty(name, field)
		if err != nil {
			return nil, err
		}
		schema.properties[descriptor.name] = descriptor
		schema.propertyOrder = append(schema.propertyOrder, descriptor.name)
		if descriptor.characteristics.Has(CharacteristicInjectable) {
			traits |= TraitHasInjectProperties
		}
	}

	classMeta := classAnnotations(t)
	controller := traits.Has(TraitController)

	for _, method := range b.introspect.DeclaredMethods(t) {
		methodMeta, _ := classMeta.Method(method.Name)
		descriptor, err := b.buildMethod(name, method, methodMeta, controller)
		if err != nil {
			return nil, err
		}
		schema.methods[descriptor.name] = descriptor
		schema.methodOrder = append(schema.methodOrder, descriptor.name)
		if descriptor.injectMethod {
			schema.injectMethods = append(schema.injectMethods, descriptor.name)
			traits |= TraitHasInjectMethods
		}
	}

	if ctor != nil {
		descriptor, err := b.buildConstructor(name, ctor, classMeta)
		if err != nil {
			return nil, err
		}
		if _, exists := schema.methods[descriptor.name]; exists {
			return nil, fmt.Errorf("constructor %s collides with a declared method of %s", descriptor.name, name)
		}
		schema.methods[descriptor.name] = descriptor
		schema.methodOrder = append(schema.methodOrder, descriptor.name)
		traits |= TraitHasConstructor
	}

	schema.traits = traits
	return schema, nil
}

// classify computes the class-level trait bits from the embedded marker
// bases, the aggregate marker interface, and the repository lookup.
func (b *schemaBuilder) classify(t reflect.Type, name string) (ClassTrait, error) {
	var traits ClassTrait

	entity := b.introspect.EmbedsBase(t, entityBase)
	valueObject := b.introspect.EmbedsBase(t, valueObjectBase)
	if entity && valueObject {
		return 0, fmt.Errorf("type %s declares both entity and value object semantics", name)
	}
	if entity {
		traits |= TraitEntity
	}
	if valueObject {
		traits |= TraitValueObject
	}
	if b.introspect.EmbedsBase(t, singletonBase) {
		traits |= TraitSingleton
	}
	if b.introspect.EmbedsBase(t, controllerBase) {
		traits |= TraitController
	}

	// Aggregate root: an aggregate-marked entity whose repository exists.
	if entity && b.introspect.ImplementsAggregate(t) &&
		b.hasType(b.conventions.RepositoryNameFor(name)) {
		traits |= TraitAggregateRoot
	}

	return traits, nil
}

// classAnnotations returns the declared class metadata, if the type (or its
// pointer) implements the Annotated interface.
func classAnnotations(t reflect.Type) markers.ClassMeta {
	if annotated, ok := reflect.New(t).Interface().(markers.Annotated); ok {
		return annotated.ClassAnnotations()
	}
	return markers.ClassMeta{}
}
