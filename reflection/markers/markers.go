// Package markers defines the declarative marker model for the managed
// object model and the decoder for the encoded marker syntax used in struct
// tags and class annotation declarations.
//
// A marker is a named declaration with an optional argument list, written as
//
//	NotEmpty
//	StringLength(minimum=3, maximum=100)
//	Validate(argumentName="title", type="NotEmpty")
//
// Positional arguments are keyed by their zero-based index ("0", "1", ...).
package markers

import (
	"fmt"
	"strconv"
	"strings"
)

// Marker is one decoded declarative marker: a name plus decoded arguments.
type Marker struct {
	Name    string
	Options map[string]string
}

// Option returns the named argument value, or the empty string.
func (m Marker) Option(key string) string {
	return m.Options[key]
}

// HasOption reports whether the named argument was given.
func (m Marker) HasOption(key string) bool {
	_, ok := m.Options[key]
	return ok
}

// IntOption returns the named argument parsed as an integer.
func (m Marker) IntOption(key string) (int, error) {
	raw, ok := m.Options[key]
	if !ok {
		return 0, fmt.Errorf("marker %s: missing option %q", m.Name, key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("marker %s: option %q is not an integer: %w", m.Name, key, err)
	}
	return n, nil
}

// MalformedMarkerError reports a marker whose encoded arguments could not be
// decoded against the expected shape. It indicates an authoring defect and is
// never swallowed.
type MalformedMarkerError struct {
	Input  string
	Reason string
}

func (e *MalformedMarkerError) Error() string {
	return fmt.Sprintf("malformed marker %q: %s", e.Input, e.Reason)
}

// Decode parses a single encoded marker.
func Decode(input string) (Marker, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Marker{}, &MalformedMarkerError{Input: input, Reason: "empty marker"}
	}

	open := strings.IndexByte(trimmed, '(')
	if open < 0 {
		if !isIdentifier(trimmed) {
			return Marker{}, &MalformedMarkerError{Input: input, Reason: "marker name is not an identifier"}
		}
		return Marker{Name: trimmed, Options: map[string]string{}}, nil
	}

	name := strings.TrimSpace(trimmed[:open])
	if !isIdentifier(name) {
		return Marker{}, &MalformedMarkerError{Input: input, Reason: "marker name is not an identifier"}
	}
	if !strings.HasSuffix(trimmed, ")") {
		return Marker{}, &MalformedMarkerError{Input: input, Reason: "missing closing parenthesis"}
	}

	body := trimmed[open+1 : len(trimmed)-1]
	options, err := decodeArguments(body)
	if err != nil {
		return Marker{}, &MalformedMarkerError{Input: input, Reason: err.Error()}
	}
	return Marker{Name: name, Options: options}, nil
}

// DecodeList parses a sequence of encoded markers separated by semicolons,
// as used in validate struct tags. Empty segments are skipped.
func DecodeList(input string) ([]Marker, error) {
	var out []Marker
	for _, segment := range splitTopLevel(input, ';') {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		marker, err := Decode(segment)
		if err != nil {
			return nil, err
		}
		out = append(out, marker)
	}
	return out, nil
}

func decodeArguments(body string) (map[string]string, error) {
	options := make(map[string]string)
	position := 0
	for _, arg := range splitTopLevel(body, ',') {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		key, value, keyed := strings.Cut(arg, "=")
		if keyed {
			key = strings.TrimSpace(key)
			if !isIdentifier(key) {
				return nil, fmt.Errorf("argument key %q is not an identifier", key)
			}
			unquoted, err := unquote(strings.TrimSpace(value))
			if err != nil {
				return nil, err
			}
			options[key] = unquoted
			continue
		}
		unquoted, err := unquote(arg)
		if err != nil {
			return nil, err
		}
		options[strconv.Itoa(position)] = unquoted
		position++
	}
	return options, nil
}

// splitTopLevel splits on sep, ignoring separators inside quotes or
// parentheses so option values may contain them.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
			}
		case sep:
			if !inQuote && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func unquote(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		if len(s) < 2 || !strings.HasSuffix(s, `"`) {
			return "", fmt.Errorf("unterminated quoted value %q", s)
		}
		return s[1 : len(s)-1], nil
	}
	if strings.ContainsAny(s, `"=`) {
		return "", fmt.Errorf("unexpected character in value %q", s)
	}
	return s, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
