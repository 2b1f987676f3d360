package reflection

import (
	"fmt"
	"strings"
)

// TypeNotFoundError reports a schema request for a name that does not
// resolve to a registered managed type.
type TypeNotFoundError struct {
	TypeName string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type not found: %s is not a registered managed type", e.TypeName)
}

// TypeHintMissingError reports a validator bound to a method argument whose
// type could not be resolved from any source. Validation cannot run without
// a type to validate against.
type TypeHintMissingError struct {
	TypeName string
	Method   string
	Argument string
}

func (e *TypeHintMissingError) Error() string {
	return fmt.Sprintf("missing type hint: validator for argument %q of %s.%s targets a parameter with no resolvable type",
		e.Argument, e.TypeName, e.Method)
}

// InvalidValidationConfigurationError reports validator markers that
// reference arguments no declared parameter matches.
type InvalidValidationConfigurationError struct {
	TypeName   string
	Method     string
	Validators []string // offending validator names, in declaration order
}

func (e *InvalidValidationConfigurationError) Error() string {
	return fmt.Sprintf("invalid validation configuration on %s.%s: validator(s) %s reference non-existent argument(s)",
		e.TypeName, e.Method, strings.Join(e.Validators, ", "))
}

// NoSuchPropertyError reports a query for a property the schema does not have.
type NoSuchPropertyError struct {
	TypeName string
	Property string
}

func (e *NoSuchPropertyError) Error() string {
	return fmt.Sprintf("no such property: %s has no property %q", e.TypeName, e.Property)
}

// NoSuchMethodError reports a query for a method the schema does not have.
type NoSuchMethodError struct {
	TypeName string
	Method   string
}

func (e *NoSuchMethodError) Error() string {
	return fmt.Sprintf("no such method: %s has no method %q", e.TypeName, e.Method)
}
