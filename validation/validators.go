// Package validation provides the validator implementations and the resolver
// that maps validator short names to implementation identities. The schema
// builder resolves names at construction time; executing validators against
// values is the validation engine's job and happens elsewhere.
package validation

import (
	"fmt"
	"net/mail"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validator is one configured check against a single value.
type Validator interface {
	Validate(value any) error
}

// Options carries the decoded marker arguments a validator is configured with.
type Options map[string]string

func (o Options) intOption(key string, fallback int) (int, error) {
	raw, ok := o[key]
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("option %q is not an integer: %w", key, err)
	}
	return n, nil
}

func (o Options) floatOption(key string, fallback float64) (float64, error) {
	raw, ok := o[key]
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("option %q is not a number: %w", key, err)
	}
	return f, nil
}

// NotEmptyValidator rejects nil, empty strings, and empty collections.
type NotEmptyValidator struct{}

// Validate implements the Validator interface.
func (v *NotEmptyValidator) Validate(value any) error {
	if value == nil {
		return fmt.Errorf("value must not be empty")
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.String:
		if strings.TrimSpace(rv.String()) == "" {
			return fmt.Errorf("value must not be empty")
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() == 0 {
			return fmt.Errorf("value must not be empty")
		}
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return fmt.Errorf("value must not be empty")
		}
	}
	return nil
}

// StringLengthValidator checks a string's rune count against minimum/maximum.
type StringLengthValidator struct {
	Minimum int
	Maximum int // 0 means unbounded
}

// Validate implements the Validator interface.
func (v *StringLengthValidator) Validate(value any) error {
	if value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("string length validation requires a string value")
	}
	length := utf8.RuneCountInString(str)
	if length < v.Minimum {
		return fmt.Errorf("must be at least %d characters", v.Minimum)
	}
	if v.Maximum > 0 && length > v.Maximum {
		return fmt.Errorf("must be at most %d characters", v.Maximum)
	}
	return nil
}

// EmailAddressValidator validates RFC 5322 email addresses.
type EmailAddressValidator struct{}

// Validate implements the Validator interface.
func (v *EmailAddressValidator) Validate(value any) error {
	if value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("email validation requires a string value")
	}
	if _, err := mail.ParseAddress(str); err != nil {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

// NumberRangeValidator checks a numeric value against minimum/maximum bounds.
type NumberRangeValidator struct {
	Minimum float64
	Maximum float64
}

// Validate implements the Validator interface.
func (v *NumberRangeValidator) Validate(value any) error {
	if value == nil {
		return nil
	}
	num, ok := toFloat64(value)
	if !ok {
		return fmt.Errorf("number range validation requires a numeric value")
	}
	if num < v.Minimum || num > v.Maximum {
		return fmt.Errorf("must be between %v and %v", v.Minimum, v.Maximum)
	}
	return nil
}

// RegularExpressionValidator checks a string against a compiled pattern.
type RegularExpressionValidator struct {
	Pattern *regexp.Regexp
}

// Validate implements the Validator interface.
func (v *RegularExpressionValidator) Validate(value any) error {
	if value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("pattern validation requires a string value")
	}
	if !v.Pattern.MatchString(str) {
		return fmt.Errorf("does not match required pattern")
	}
	return nil
}

// UuidValidator validates canonical UUID strings.
type UuidValidator struct{}

// Validate implements the Validator interface.
func (v *UuidValidator) Validate(value any) error {
	if value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("uuid validation requires a string value")
	}
	if _, err := uuid.Parse(str); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
