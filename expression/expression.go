package expression

import (
	"regexp"

	"cukexpr/generator"
	"cukexpr/parameter"
)

// Expression is a compiled step expression.
type Expression interface {
	// Match returns the arguments of text, or nil when text does not match.
	Match(text string) ([]*Argument, error)
	// Source returns the expression as written.
	Source() string
	// Regexp returns the compiled, fully anchored pattern.
	Regexp() *regexp.Regexp

	expression()
}

var (
	_ Expression = (*CucumberExpression)(nil)
	_ Expression = (*RegularExpression)(nil)
)

// matcher is the part shared by both expression kinds.
type matcher struct {
	registry   *parameter.Registry
	regexp     *regexp.Regexp
	tree       *groupNode
	converters []*converter
}

func (m *matcher) match(text string) ([]*Argument, error) {
	loc := m.regexp.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, nil
	}

	for _, c := range m.converters {
		if c.ambiguity != nil {
			return nil, m.ambiguous(c.ambiguity, text)
		}
	}

	next := 0
	root := m.tree.build(text, loc, &next)

	return buildArguments(root, m.converters), nil
}

func (m *matcher) ambiguous(cause *parameter.AmbiguousError, text string) error {
	return &AmbiguousParameterTypeError{
		Regexp:      cause.Regexp,
		Pattern:     m.regexp.String(),
		Candidates:  cause.Candidates,
		Suggestions: generator.New(m.registry).GenerateExpressions(text),
		cause:       cause,
	}
}

func anchor(src string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + src + ")$")
}
