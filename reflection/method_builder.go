package reflection

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/devskio/typo3/reflection/docparser"
	"github.com/devskio/typo3/reflection/markers"
)

// Method-level marker names.
const (
	markerValidate         = "Validate"
	markerIgnoreValidation = "IgnoreValidation"
)

// pendingValidator is a validator marker awaiting its parameter. Markers
// that never bind to a declared parameter fail the build.
type pendingValidator struct {
	argument string
	spec     ValidatorSpec
}

// buildMethod builds the raw descriptor for one declared method. Parameter
// types resolve in priority order: native reflection, declared type hint,
// documentation tag; the doc block is parsed at most once and only when a
// gap forces it.
func (b *schemaBuilder) buildMethod(typeName string, method reflect.Method, meta markers.MethodMeta, controller bool) (*methodDescriptor, error) {
	descriptor := &methodDescriptor{
		name:        method.Name,
		visibility:  VisibilityPublic,
		action:      b.conventions.IsActionMethod(method.Name),
		ignoredArgs: make(map[string]bool),
	}

	pending, err := b.collectArgumentValidators(meta, controller)
	if err != nil {
		return nil, fmt.Errorf("method %s.%s: %w", typeName, method.Name, err)
	}

	for _, marker := range meta.MarkersNamed(markerIgnoreValidation) {
		argument := strings.TrimLeft(marker.Option("argumentName"), "$")
		if argument == "" {
			return nil, &markers.MalformedMarkerError{
				Input:  markerIgnoreValidation,
				Reason: fmt.Sprintf("missing argumentName on %s.%s", typeName, method.Name),
			}
		}
		descriptor.ignoredArgs[argument] = true
	}

	// Method index 0 is the receiver.
	params, unbound, err := b.buildParameters(typeName, method.Name, method.Type, 1, meta, pending, descriptor.ignoredArgs, b.conventions.IsInjectMethodCandidate(method.Name))
	if err != nil {
		return nil, err
	}
	descriptor.parameters = params

	if len(unbound) > 0 {
		offending := make([]string, 0, len(unbound))
		for _, p := range unbound {
			offending = append(offending, p.spec.Name)
		}
		return nil, &InvalidValidationConfigurationError{
			TypeName:   typeName,
			Method:     method.Name,
			Validators: offending,
		}
	}

	// An inject setter must take exactly one resolvable dependency.
	if b.conventions.IsInjectMethodCandidate(method.Name) &&
		len(params) == 1 && params[0].dependencyClass != "" {
		descriptor.injectMethod = true
	}

	return descriptor, nil
}

// buildConstructor introspects a registered constructor function the same
// way an inject method's parameters are introspected.
func (b *schemaBuilder) buildConstructor(typeName string, ctor any, meta markers.ClassMeta) (*methodDescriptor, error) {
	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("constructor for %s must be a function, got %s", typeName, fn.Kind())
	}

	name := constructorName(fn)
	methodMeta, _ := meta.Method(name)

	descriptor := &methodDescriptor{
		name:        name,
		visibility:  VisibilityPublic,
		constructor: true,
		ignoredArgs: make(map[string]bool),
	}

	params, _, err := b.buildParameters(typeName, name, fn.Type(), 0, methodMeta, nil, descriptor.ignoredArgs, true)
	if err != nil {
		return nil, err
	}
	descriptor.parameters = params
	return descriptor, nil
}

// collectArgumentValidators resolves the method's validator markers into a
// pending mapping keyed by argument name. Only controller-classified types
// participate in argument validation.
func (b *schemaBuilder) collectArgumentValidators(meta markers.MethodMeta, controller bool) ([]*pendingValidator, error) {
	if !controller {
		return nil, nil
	}
	var pending []*pendingValidator
	for _, marker := range meta.MarkersNamed(markerValidate) {
		argument := strings.TrimLeft(marker.Option("argumentName"), "$")
		validatorName := marker.Option("type")
		if argument == "" || validatorName == "" {
			return nil, &markers.MalformedMarkerError{
				Input:  markerValidate,
				Reason: "requires both argumentName and type",
			}
		}
		options := make(map[string]string, len(marker.Options))
		for k, v := range marker.Options {
			if k == "argumentName" || k == "type" {
				continue
			}
			options[k] = v
		}
		spec, err := b.resolveValidator(validatorName, options)
		if err != nil {
			return nil, err
		}
		pending = append(pending, &pendingValidator{argument: argument, spec: spec})
	}
	return pending, nil
}

// buildParameters walks a function type's inputs from firstIn, producing
// descriptors in declaration order and binding pending argument validators.
// It returns the validators that never found their parameter.
func (b *schemaBuilder) buildParameters(typeName, methodName string, fnType reflect.Type, firstIn int, meta markers.MethodMeta, pending []*pendingValidator, ignored map[string]bool, injectionContext bool) ([]*parameterDescriptor, []*pendingValidator, error) {
	var docTags []docparser.ParamTag
	docParsed := false
	docTag := func(position int) docparser.ParamTag {
		if !docParsed {
			docTags = docparser.ParseParamTags(meta.Doc)
			docParsed = true
		}
		if position < len(docTags) {
			return docTags[position]
		}
		return docparser.ParamTag{}
	}

	count := fnType.NumIn() - firstIn
	params := make([]*parameterDescriptor, 0, count)

	for position := 0; position < count; position++ {
		native := fnType.In(firstIn + position)
		variadic := fnType.IsVariadic() && firstIn+position == fnType.NumIn()-1

		var declared markers.ParamMeta
		if position < len(meta.Params) {
			declared = meta.Params[position]
		}

		param := &parameterDescriptor{
			position:    position,
			byReference: native.Kind() == reflect.Ptr,
			array:       variadic || native.Kind() == reflect.Slice || native.Kind() == reflect.Array,
			allowsNull:  allowsNull(native),
		}

		param.name = declared.Name
		if param.name == "" {
			param.name = docTag(position).Name
		}
		if param.name == "" {
			param.name = fmt.Sprintf("arg%d", position)
		}

		// Native type first; the empty interface resolves to nothing, so
		// the declared hint and finally the doc tag get their turn.
		param.typeName = typeNameFor(native)
		if param.typeName == "" {
			param.typeName = declared.Type
		}
		if param.typeName == "" {
			param.typeName = docTag(position).Type
		}

		param.optional = variadic || declared.Optional || declared.Default != nil
		if declared.Default != nil {
			param.defaultValue = declared.Default
		}

		if injectionContext && resolvesToClass(native) {
			param.dependencyClass = typeNameFor(native)
		}

		param.ignoreValidation = ignored[param.name]

		remaining := pending[:0:0]
		for _, p := range pending {
			if p.argument != param.name {
				remaining = append(remaining, p)
				continue
			}
			if param.typeName == "" {
				return nil, nil, &TypeHintMissingError{
					TypeName: typeName,
					Method:   methodName,
					Argument: param.name,
				}
			}
			param.validators = append(param.validators, p.spec)
		}
		pending = remaining

		params = append(params, param)
	}

	return params, pending, nil
}

// constructorName derives a readable name for a constructor function from
// its runtime symbol, e.g. "NewPost".
func constructorName(fn reflect.Value) string {
	symbol := runtime.FuncForPC(fn.Pointer()).Name()
	if idx := strings.LastIndexByte(symbol, '.'); idx >= 0 {
		symbol = symbol[idx+1:]
	}
	// Method values carry a -fm suffix.
	return strings.TrimSuffix(symbol, "-fm")
}
