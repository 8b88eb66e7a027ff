package expression

import (
	"fmt"
	"reflect"
	"regexp"

	"cukexpr/parameter"
)

// RegularExpression matches text against a regexp written by the caller.
type RegularExpression struct {
	matcher
	source *regexp.Regexp
}

// NewRegularExpression prepares re for matching whole texts.
//
// Each top-level capture group i is converted to types[i] when given.
// Groups without a type use the parameter type registered for the group's
// regexp source; ambiguous sources are reported by Match.
func NewRegularExpression(re *regexp.Regexp, types []reflect.Type, reg *parameter.Registry) (*RegularExpression, error) {
	src := re.String()

	tree, err := parseGroups(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	if n := tree.count() - 1; n != re.NumSubexp() {
		return nil, fmt.Errorf("%w: found %d capture groups in /%s/, regexp reports %d",
			ErrInvalidExpression, n, src, re.NumSubexp())
	}

	anchored, err := anchor(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	e := &RegularExpression{source: re}
	e.registry = reg
	e.regexp = anchored
	e.tree = tree

	for i, group := range tree.children {
		var c *converter

		if i < len(types) && types[i] != nil {
			if c, err = explicitConverter(reg, types[i]); err != nil {
				return nil, fmt.Errorf("capture group %d /%s/: %w", i+1, group.source, err)
			}
		} else {
			c = regexpConverter(reg, group.source)
		}

		e.converters = append(e.converters, c)
	}

	return e, nil
}

// MustCompileRegular compiles src and prepares it like NewRegularExpression,
// panicking on error. It is meant for package-level step tables.
func MustCompileRegular(src string, reg *parameter.Registry, types ...reflect.Type) *RegularExpression {
	e, err := NewRegularExpression(regexp.MustCompile(src), types, reg)
	if err != nil {
		panic(err)
	}

	return e
}

// Match returns one argument per top-level capture group, or nil when text
// does not match.
func (e *RegularExpression) Match(text string) ([]*Argument, error) {
	return e.match(text)
}

// Source returns the regexp as written.
func (e *RegularExpression) Source() string { return e.source.String() }

// Regexp returns the anchored pattern used for matching.
func (e *RegularExpression) Regexp() *regexp.Regexp { return e.regexp }

func (e *RegularExpression) String() string { return e.Source() }

func (*RegularExpression) expression() {}
