package expression_test

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"cukexpr/expression"
	"cukexpr/parameter"
)

type Color struct {
	Name string
}

type CSSColor struct {
	Name string
}

func defineColor(t *testing.T, reg *parameter.Registry, regexps ...string) {
	t.Helper()

	if len(regexps) == 0 {
		regexps = []string{"red|blue|yellow"}
	}

	pt, err := parameter.New("color", regexps, reflect.TypeFor[Color](), func(text string) (any, error) {
		return Color{Name: text}, nil
	})
	require.NoError(t, err)
	require.NoError(t, reg.Define(pt))
}

func defineCSSColor(t *testing.T, reg *parameter.Registry) {
	t.Helper()

	pt, err := parameter.New("css-color", []string{"red|blue|yellow"}, reflect.TypeFor[CSSColor](), func(text string) (any, error) {
		return CSSColor{Name: text}, nil
	})
	require.NoError(t, err)
	require.NoError(t, reg.Define(pt))
}

// values matches text and reads every argument value.
func values(t *testing.T, expr expression.Expression, text string) []any {
	t.Helper()

	args, err := expr.Match(text)
	require.NoError(t, err)
	require.NotNil(t, args, "%q does not match %s", text, expr.Regexp())

	out := make([]any, len(args))
	for i, arg := range args {
		v, err := arg.Value()
		require.NoError(t, err, "argument %d of %s", i, spew.Sdump(args))

		out[i] = v
	}

	return out
}
