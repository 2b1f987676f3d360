package reflection

import "strings"

// ClassTrait is the compact bit-set of per-type classification flags.
// Traits are computed once at schema construction and never change.
type ClassTrait uint16

const (
	TraitEntity ClassTrait = 1 << iota
	TraitValueObject
	TraitAggregateRoot
	TraitController
	TraitSingleton
	TraitHasConstructor
	TraitHasInjectMethods
	TraitHasInjectProperties
)

// Has reports whether all bits of flag are set.
func (t ClassTrait) Has(flag ClassTrait) bool {
	return t&flag == flag
}

// String returns the set trait names joined by "|", or "none".
func (t ClassTrait) String() string {
	names := []struct {
		flag ClassTrait
		name string
	}{
		{TraitEntity, "entity"},
		{TraitValueObject, "value_object"},
		{TraitAggregateRoot, "aggregate_root"},
		{TraitController, "controller"},
		{TraitSingleton, "singleton"},
		{TraitHasConstructor, "has_constructor"},
		{TraitHasInjectMethods, "has_inject_methods"},
		{TraitHasInjectProperties, "has_inject_properties"},
	}
	var set []string
	for _, n := range names {
		if t.Has(n.flag) {
			set = append(set, n.name)
		}
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, "|")
}

// Visibility classifies a declared member. Exactly one visibility applies to
// any member.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityProtected
	VisibilityPrivate
)

// String returns the string representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// PropertyCharacteristics is the per-property bit-set covering visibility and
// the lazy/transient/injectable markers.
type PropertyCharacteristics uint16

const (
	CharacteristicPublic PropertyCharacteristics = 1 << iota
	CharacteristicProtected
	CharacteristicPrivate
	CharacteristicStatic
	CharacteristicLazy
	CharacteristicTransient
	CharacteristicInjectable
)

// Has reports whether all bits of flag are set.
func (c PropertyCharacteristics) Has(flag PropertyCharacteristics) bool {
	return c&flag == flag
}

// Visibility returns the single visibility encoded in the bit-set.
func (c PropertyCharacteristics) Visibility() Visibility {
	switch {
	case c.Has(CharacteristicPrivate):
		return VisibilityPrivate
	case c.Has(CharacteristicProtected):
		return VisibilityProtected
	default:
		return VisibilityPublic
	}
}
