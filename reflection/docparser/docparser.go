// Package docparser extracts parameter type hints from raw documentation
// blocks. It is a fallback source only: the schema builder consults it when a
// parameter's type cannot be resolved from native reflection or a declared
// type hint, which keeps the comment parse off the hot path for typed code.
//
// Only @param tags are recognized. Every other tag (@return, @throws,
// @author, @deprecated, @see, @api, ...) is advisory documentation and is
// discarded without error: malformed or unsupported documentation must never
// block schema construction.
package docparser

import "strings"

// ParamTag is one @param entry in declaration order.
type ParamTag struct {
	Type string // best-effort type name, may be empty
	Name string // parameter name without any sigil, may be empty
}

// ParseParamTags returns the @param tags of a raw doc block in declaration
// order. The expected shape is "@param <type> <name>"; a lone "@param <type>"
// yields an unnamed tag. Lines that do not parse are skipped.
func ParseParamTags(doc string) []ParamTag {
	var tags []ParamTag
	for _, line := range strings.Split(doc, "\n") {
		line = trimCommentLine(line)
		rest, ok := cutParamTag(line)
		if !ok {
			continue
		}
		if rest == "" {
			// A bare @param still occupies a declaration slot so later
			// tags keep their positions.
			tags = append(tags, ParamTag{})
			continue
		}
		fields := strings.Fields(rest)
		tag := ParamTag{Type: fields[0]}
		if len(fields) > 1 {
			tag.Name = strings.TrimLeft(fields[1], "$&")
		}
		tags = append(tags, tag)
	}
	return tags
}

// cutParamTag matches a line starting with exactly "@param" followed by
// whitespace or end-of-line, returning the remainder. Longer tags such as
// @parameters are different tags, not params.
func cutParamTag(line string) (string, bool) {
	const tag = "@param"
	if !strings.HasPrefix(line, tag) {
		return "", false
	}
	rest := line[len(tag):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// trimCommentLine strips comment decoration so blocks may be written either
// as plain text or with leading slashes/asterisks.
func trimCommentLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "///")
	line = strings.TrimPrefix(line, "//")
	line = strings.TrimPrefix(line, "/**")
	line = strings.TrimPrefix(line, "*/")
	line = strings.TrimPrefix(line, "*")
	return strings.TrimSpace(line)
}
