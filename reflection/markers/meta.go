package markers

// Annotated is implemented by managed types that carry method-level metadata
// which Go reflection cannot surface: raw doc blocks, method markers, and
// parameter declarations. The reflection layer queries it during schema
// construction; types without it simply have no method markers.
type Annotated interface {
	ClassAnnotations() ClassMeta
}

// ClassMeta is the full set of declared annotations for one type.
type ClassMeta struct {
	// Methods maps a method name to its declared metadata.
	Methods map[string]MethodMeta
}

// MethodMeta carries the declared metadata of one method.
type MethodMeta struct {
	// Doc is the raw documentation block. Parsed only as a fallback when a
	// parameter's type cannot be resolved natively.
	Doc string

	// Markers are the method-level markers in declaration order, e.g.
	// Validate(argumentName="title", type="NotEmpty") or
	// IgnoreValidation(argumentName="title").
	Markers []Marker

	// Params are optional per-parameter declarations in declaration order.
	// Entries beyond the method's real arity are ignored.
	Params []ParamMeta
}

// ParamMeta declares metadata for one method parameter.
type ParamMeta struct {
	Name     string
	Type     string // type hint, used when the native type is absent or ambiguous
	Optional bool
	Default  any
}

// Method returns the metadata declared for the named method, if any.
func (c ClassMeta) Method(name string) (MethodMeta, bool) {
	meta, ok := c.Methods[name]
	return meta, ok
}

// MarkersNamed returns all markers with the given name in declaration order.
func (m MethodMeta) MarkersNamed(name string) []Marker {
	var out []Marker
	for _, marker := range m.Markers {
		if marker.Name == name {
			out = append(out, marker)
		}
	}
	return out
}
