package reflection

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/devskio/typo3/reflection/markers"
)

// Struct tag keys recognized on managed type fields.
const (
	tagFlow     = "flow"     // comma-separated characteristic flags
	tagValidate = "validate" // semicolon-separated validator markers
	tagCascade  = "cascade"  // cascade-delete directive
	tagDefault  = "default"  // declared default value
)

// buildProperty merges introspection, markers, and defaults into one raw
// property descriptor.
func (b *schemaBuilder) buildProperty(typeName string, field reflect.StructField) (*propertyDescriptor, error) {
	descriptor := &propertyDescriptor{name: field.Name}

	characteristics, err := b.buildCharacteristics(field)
	if err != nil {
		return nil, err
	}
	descriptor.characteristics = characteristics

	descriptor.typeName, descriptor.elementTypeName = inferPropertyTypes(field.Type)

	if raw, ok := field.Tag.Lookup(tagDefault); ok {
		value, err := convertDefault(raw, field.Type)
		if err != nil {
			return nil, &markers.MalformedMarkerError{
				Input:  fmt.Sprintf("default:%q on %s.%s", raw, typeName, field.Name),
				Reason: err.Error(),
			}
		}
		descriptor.defaultValue = value
		descriptor.hasDefault = true
	}

	if raw, ok := field.Tag.Lookup(tagValidate); ok {
		specs, err := b.buildValidatorSpecs(raw)
		if err != nil {
			return nil, fmt.Errorf("property %s.%s: %w", typeName, field.Name, err)
		}
		descriptor.validators = specs
	}

	// A cascade directive needs at least one resolved type to act on.
	if cascade, ok := field.Tag.Lookup(tagCascade); ok {
		if descriptor.typeName != "" || descriptor.elementTypeName != "" {
			descriptor.cascade = cascade
		}
	}

	return descriptor, nil
}

// buildCharacteristics computes the visibility bits and decodes the flow tag
// flags. Exactly one visibility bit ends up set.
func (b *schemaBuilder) buildCharacteristics(field reflect.StructField) (PropertyCharacteristics, error) {
	var c PropertyCharacteristics

	exported := field.PkgPath == ""
	protected := false

	if raw, ok := field.Tag.Lookup(tagFlow); ok {
		for _, flag := range strings.Split(raw, ",") {
			flag = strings.TrimSpace(flag)
			switch flag {
			case "":
			case "lazy":
				c |= CharacteristicLazy
			case "transient":
				c |= CharacteristicTransient
			case "inject":
				// The reserved settings property is configured, not
				// injected, so the marker is suppressed there.
				if !strings.EqualFold(field.Name, b.conventions.SettingsPropertyName) {
					c |= CharacteristicInjectable
				}
			case "protected":
				protected = true
			default:
				return 0, &markers.MalformedMarkerError{
					Input:  raw,
					Reason: fmt.Sprintf("unknown flow flag %q on field %s", flag, field.Name),
				}
			}
		}
	}

	switch {
	case protected:
		c |= CharacteristicProtected
	case exported:
		c |= CharacteristicPublic
	default:
		c |= CharacteristicPrivate
	}
	return c, nil
}

// buildValidatorSpecs decodes a validate tag into resolved validator
// specifications. Unresolvable names and undecodable options abort the build.
func (b *schemaBuilder) buildValidatorSpecs(raw string) ([]ValidatorSpec, error) {
	decoded, err := markers.DecodeList(raw)
	if err != nil {
		return nil, err
	}
	specs := make([]ValidatorSpec, 0, len(decoded))
	for _, marker := range decoded {
		spec, err := b.resolveValidator(marker.Name, marker.Options)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (b *schemaBuilder) resolveValidator(name string, options map[string]string) (ValidatorSpec, error) {
	_, identity, err := b.resolver.Resolve(name, options)
	if err != nil {
		return ValidatorSpec{}, err
	}
	return ValidatorSpec{Name: name, Options: options, Implementation: identity}, nil
}

// inferPropertyTypes resolves a field's declared type into one name
// (simple) or two (collection plus element class). The element is recorded
// only when the outer type satisfies the collection predicate and the
// element itself resolves to a class; otherwise the property is a plain,
// unparameterized collection.
func inferPropertyTypes(t reflect.Type) (typeName, elementTypeName string) {
	if isCollectionKind(t) {
		typeName = t.String()
		if resolvesToClass(t.Elem()) {
			elementTypeName = typeNameFor(t.Elem())
		}
		return typeName, elementTypeName
	}
	return typeNameFor(t), ""
}

// convertDefault converts a declared default literal to the field's type.
// The literal "null" declares an explicit null for nilable fields.
func convertDefault(raw string, t reflect.Type) (any, error) {
	if raw == "null" {
		if !allowsNull(t) {
			return nil, fmt.Errorf("null default on non-nilable type %s", t)
		}
		return nil, nil
	}
	switch t.Kind() {
	case reflect.String:
		return raw, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cast.ToInt64E(raw)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cast.ToUint64E(raw)
	case reflect.Float32, reflect.Float64:
		return cast.ToFloat64E(raw)
	case reflect.Bool:
		return cast.ToBoolE(raw)
	default:
		return nil, fmt.Errorf("default values are not supported for %s fields", t.Kind())
	}
}
