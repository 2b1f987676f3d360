package reflection

import (
	"fmt"
	"reflect"

	"github.com/devskio/typo3/model"
)

var (
	entityBase      = reflect.TypeOf(model.Entity{})
	valueObjectBase = reflect.TypeOf(model.ValueObject{})
	singletonBase   = reflect.TypeOf(model.Singleton{})
	controllerBase  = reflect.TypeOf(model.Controller{})
	repositoryBase  = reflect.TypeOf(model.Repository{})
	aggregateIface  = reflect.TypeOf((*model.Aggregate)(nil)).Elem()
)

// Introspector wraps native reflection: it enumerates a type's ancestry
// (embedded bases), declared properties, and declared methods. It performs a
// pure read of static type metadata and caches nothing; callers cache.
type Introspector struct{}

// QualifiedName returns the fully-qualified name of a type, which is the
// schema identity: "<package path>.<type name>". Unnamed types fall back to
// their Go syntax.
func QualifiedName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// StructType normalizes an instance or type to its underlying struct type.
func StructType(instance any) (reflect.Type, error) {
	t, ok := instance.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(instance)
	}
	if t == nil {
		return nil, fmt.Errorf("cannot introspect a nil instance")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot introspect %s: managed types must be structs", t.Kind())
	}
	return t, nil
}

// Ancestry returns the qualified names of all embedded struct bases in
// depth-first declaration order, classification markers included.
func (Introspector) Ancestry(t reflect.Type) []string {
	var chain []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}
		base := field.Type
		for base.Kind() == reflect.Ptr {
			base = base.Elem()
		}
		if base.Kind() != reflect.Struct {
			continue
		}
		chain = append(chain, QualifiedName(base))
		chain = append(chain, Introspector{}.Ancestry(base)...)
	}
	return chain
}

// EmbedsBase reports whether t embeds the given base struct type, directly
// or through another embedded struct.
func (i Introspector) EmbedsBase(t, base reflect.Type) bool {
	for f := 0; f < t.NumField(); f++ {
		field := t.Field(f)
		if !field.Anonymous {
			continue
		}
		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft == base {
			return true
		}
		if ft.Kind() == reflect.Struct && i.EmbedsBase(ft, base) {
			return true
		}
	}
	return false
}

// ImplementsAggregate reports whether the type (or its pointer type)
// satisfies the aggregate marker interface.
func (Introspector) ImplementsAggregate(t reflect.Type) bool {
	return t.Implements(aggregateIface) || reflect.PointerTo(t).Implements(aggregateIface)
}

// DeclaredFields returns the type's declared fields plus fields promoted
// from embedded non-marker structs, shadowed duplicates excluded. The
// classification marker bases themselves never appear as properties.
func (i Introspector) DeclaredFields(t reflect.Type) []reflect.StructField {
	seen := make(map[string]bool)
	return i.collectFields(t, seen)
}

func (i Introspector) collectFields(t reflect.Type, seen map[string]bool) []reflect.StructField {
	var fields []reflect.StructField
	var embedded []reflect.Type
	for f := 0; f < t.NumField(); f++ {
		field := t.Field(f)
		if field.Anonymous {
			ft := field.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if isMarkerBase(ft) {
				continue
			}
			if ft.Kind() == reflect.Struct {
				embedded = append(embedded, ft)
				continue
			}
		}
		if seen[field.Name] {
			continue
		}
		seen[field.Name] = true
		fields = append(fields, field)
	}
	// Promoted fields come after the declaring type's own, matching Go's
	// shadowing rules.
	for _, base := range embedded {
		fields = append(fields, i.collectFields(base, seen)...)
	}
	return fields
}

// DeclaredMethods returns the exported methods of the type's pointer method
// set in reflect's stable (alphabetical) order.
func (Introspector) DeclaredMethods(t reflect.Type) []reflect.Method {
	pt := reflect.PointerTo(t)
	methods := make([]reflect.Method, 0, pt.NumMethod())
	for m := 0; m < pt.NumMethod(); m++ {
		methods = append(methods, pt.Method(m))
	}
	return methods
}

func isMarkerBase(t reflect.Type) bool {
	switch t {
	case entityBase, valueObjectBase, singletonBase, controllerBase, repositoryBase:
		return true
	}
	return false
}

// typeNameFor maps a reflect type to the schema's type-name vocabulary.
// Named types use their qualified name; builtins and composites use Go
// syntax. The empty interface carries no usable type information and maps to
// the empty string, which is what makes the documentation fallback reachable.
func typeNameFor(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 {
		return ""
	}
	base := t
	for base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.PkgPath() != "" {
		return base.PkgPath() + "." + base.Name()
	}
	return t.String()
}

// isCollectionKind is the collection-type predicate: slices, arrays, and
// maps may carry an element type.
func isCollectionKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// resolvesToClass reports whether a type names a class in the managed object
// model sense: a named struct or a named non-empty interface, pointers
// dereferenced.
func resolvesToClass(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		return t.PkgPath() != ""
	case reflect.Interface:
		return t.PkgPath() != "" && t.NumMethod() > 0
	}
	return false
}

// allowsNull reports whether the nil value inhabits the type.
func allowsNull(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
