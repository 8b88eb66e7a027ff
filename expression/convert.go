package expression

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"cukexpr/internal/numeric"
	"cukexpr/parameter"
)

var stringType = reflect.TypeFor[string]()

// converter decides how the text of one capture group becomes a value.
// ambiguity is kept until Match so that suggestions can use the text.
type converter struct {
	parameterType *parameter.Type
	transform     parameter.Transform
	ambiguity     *parameter.AmbiguousError
}

// explicitConverter converts to a caller supplied Go type: a registered
// parameter type first, then numeric coercion, then a construct factory.
// Strings and types that accept strings pass the text through.
func explicitConverter(reg *parameter.Registry, t reflect.Type) (*converter, error) {
	if pt := reg.LookupBySemanticType(t); pt != nil {
		return &converter{parameterType: pt, transform: pt.Transform}, nil
	}

	if kind := numeric.FromReflectType(numeric.Boxed(t)); kind.IsNumber() {
		parser := reg.NumberParser()

		return &converter{transform: func(text string) (any, error) {
			return numeric.Coerce(text, kind, parser)
		}}, nil
	}

	bound, err := reg.Factories().Bind(t)
	if err == nil {
		return &converter{transform: parameter.Transform(bound)}, nil
	}

	if stringType.AssignableTo(t) {
		return &converter{}, nil
	}

	return nil, fmt.Errorf("cannot convert capture groups to %s: %w", t, err)
}

// regexpConverter resolves a capture group by its own source. Groups that
// resolve to a built-in signed integer type convert through {long}, and
// unindexed groups yield int64 for integer text and the text itself otherwise.
func regexpConverter(reg *parameter.Registry, source string) *converter {
	pt, err := reg.LookupByRegexp(source)
	if err != nil {
		var ambiguity *parameter.AmbiguousError
		if errors.As(err, &ambiguity) {
			return &converter{ambiguity: ambiguity}
		}
	}

	if pt != nil && reg.Builtin(pt) && numeric.FromReflectType(pt.SemanticType()).IsSigned() {
		pt = reg.LookupByName("long")
	}

	if pt != nil {
		return &converter{parameterType: pt, transform: pt.Transform}
	}

	parser := reg.NumberParser()

	return &converter{transform: func(text string) (any, error) {
		if _, err := strconv.ParseInt(text, 10, 64); err != nil {
			return text, nil
		}

		return numeric.Coerce(text, numeric.KindInt64, parser)
	}}
}
