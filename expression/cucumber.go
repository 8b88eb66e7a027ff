package expression

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"cukexpr/internal/match"
	"cukexpr/parameter"
)

// CucumberExpression matches text against a template with {name}
// placeholders.
type CucumberExpression struct {
	matcher
	source         string
	parameterTypes []*parameter.Type
}

// NewCucumberExpression compiles template against the registry.
//
// types optionally gives the Go type for each placeholder in order; a non-nil
// entry converts that placeholder's text to the type instead of using the
// named parameter type's transform. The named type still decides what text
// the placeholder matches.
func NewCucumberExpression(template string, types []reflect.Type, reg *parameter.Registry) (*CucumberExpression, error) {
	tokens, err := tokenize(template)
	if err != nil {
		return nil, err
	}

	e := &CucumberExpression{source: template}
	e.registry = reg

	body, err := compileTemplate(template, tokens, func(tok token) (string, error) {
		pt := reg.LookupByName(tok.text)
		if pt == nil {
			return "", undefined(reg, tok.text, template)
		}

		c := &converter{parameterType: pt, transform: pt.Transform}

		if i := len(e.parameterTypes); i < len(types) && types[i] != nil {
			explicit, err := explicitConverter(reg, types[i])
			if err != nil {
				return "", fmt.Errorf("placeholder {%s}: %w", pt.Name(), err)
			}

			c.transform = explicit.transform
		}

		e.parameterTypes = append(e.parameterTypes, pt)
		e.converters = append(e.converters, c)

		return placeholderPattern(pt), nil
	})
	if err != nil {
		return nil, err
	}

	if e.regexp, err = anchor(body); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, template, err)
	}

	if e.tree, err = parseGroups(body); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, template, err)
	}

	reg.Logger().Debug("compiled cucumber expression", "expression", template, "regexp", e.regexp.String())

	return e, nil
}

// placeholderPattern captures any of the type's regexps in one group.
func placeholderPattern(pt *parameter.Type) string {
	regexps := pt.Regexps()

	alternatives := make([]string, len(regexps))
	for i, re := range regexps {
		alternatives[i] = "(?:" + re + ")"
	}

	return "(" + strings.Join(alternatives, "|") + ")"
}

func undefined(reg *parameter.Registry, name, template string) error {
	var names []string

	for _, pt := range reg.ParameterTypes() {
		if pt.Name() != "" {
			names = append(names, pt.Name())
		}
	}

	return &UndefinedParameterTypeError{
		Name:        name,
		Expression:  template,
		Suggestions: match.Suggest(name, names).Names(),
	}
}

// Match returns one argument per placeholder, or nil when text does not match.
func (e *CucumberExpression) Match(text string) ([]*Argument, error) {
	return e.match(text)
}

// Source returns the template.
func (e *CucumberExpression) Source() string { return e.source }

// Regexp returns the anchored pattern the template compiles to.
func (e *CucumberExpression) Regexp() *regexp.Regexp { return e.regexp }

// ParameterTypes returns the placeholder types in order.
func (e *CucumberExpression) ParameterTypes() []*parameter.Type {
	return append([]*parameter.Type(nil), e.parameterTypes...)
}

func (e *CucumberExpression) String() string { return e.source }

func (*CucumberExpression) expression() {}
