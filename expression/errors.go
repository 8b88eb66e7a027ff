package expression

import (
	"errors"
	"fmt"
	"strings"

	"cukexpr/generator"
	"cukexpr/parameter"
)

var (
	ErrUndefinedParameterType = errors.New("undefined parameter type")
	ErrInvalidExpression      = errors.New("invalid expression")
)

// UndefinedParameterTypeError reports a placeholder naming no parameter type.
type UndefinedParameterTypeError struct {
	Name        string
	Expression  string
	Suggestions []string
}

func (e *UndefinedParameterTypeError) Error() string {
	msg := fmt.Sprintf("undefined parameter type {%s} in %q", e.Name, e.Expression)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean {%s}?", strings.Join(e.Suggestions, "}, {"))
	}

	return msg
}

func (e *UndefinedParameterTypeError) Is(target error) bool {
	return target == ErrUndefinedParameterType
}

// SyntaxError reports a malformed template.
type SyntaxError struct {
	Expression string
	Pos        int
	Msg        string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d in %q", e.Msg, e.Pos, e.Expression)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrInvalidExpression }

// AmbiguousParameterTypeError is returned by Match when a capture group
// without explicit type has a regexp shared by several parameter types.
// Suggestions are cucumber expressions generated for the matched text.
type AmbiguousParameterTypeError struct {
	Regexp      string
	Pattern     string
	Candidates  []*parameter.Type
	Suggestions []*generator.GeneratedExpression
	cause       *parameter.AmbiguousError
}

func (e *AmbiguousParameterTypeError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "regular expression /%s/ matches multiple parameter types with regexp /%s/: %s",
		e.Pattern, e.Regexp, parameter.JoinNames(e.Candidates))

	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s.Source())
		}

		fmt.Fprintf(&b, "; use a cucumber expression such as %s", strings.Join(quoted, ", "))
		b.WriteString(" or make one of the parameter types preferential")
	} else {
		b.WriteString("; make one of the parameter types preferential")
	}

	return b.String()
}

func (e *AmbiguousParameterTypeError) Unwrap() error { return e.cause }
