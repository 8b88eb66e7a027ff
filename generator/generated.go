package generator

import (
	"strconv"

	"cukexpr/internal/match"
	"cukexpr/parameter"
)

// GeneratedExpression is a candidate cucumber expression for a piece of text.
type GeneratedExpression struct {
	source         string
	parameterTypes []*parameter.Type
	parameterNames []string
}

func newGeneratedExpression(source string, types []*parameter.Type) *GeneratedExpression {
	return &GeneratedExpression{
		source:         source,
		parameterTypes: types,
		parameterNames: parameterNames(types),
	}
}

// Source returns the expression template, e.g. "I have {int} cukes".
func (g *GeneratedExpression) Source() string { return g.source }

// ParameterTypes returns the placeholder types in order of appearance.
func (g *GeneratedExpression) ParameterTypes() []*parameter.Type {
	return append([]*parameter.Type(nil), g.parameterTypes...)
}

// ParameterNames returns a distinct Go identifier for every placeholder.
func (g *GeneratedExpression) ParameterNames() []string {
	return append([]string(nil), g.parameterNames...)
}

func (g *GeneratedExpression) String() string { return g.source }

func parameterNames(types []*parameter.Type) []string {
	names := make([]string, len(types))
	seen := make(map[string]int, len(types))

	for i, pt := range types {
		base := match.Identifier(pt.Name())
		seen[base]++

		switch n := seen[base]; {
		case match.IsKeyword(base):
			names[i] = base + strconv.Itoa(n)
		case n == 1:
			names[i] = base
		default:
			names[i] = base + strconv.Itoa(n)
		}
	}

	return names
}
