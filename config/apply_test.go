package config_test

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"cukexpr/config"
	"cukexpr/construct"
	"cukexpr/expression"
	"cukexpr/internal/logging"
	"cukexpr/parameter"
)

type Money struct {
	Cents int
}

func parseMoney(text string) (Money, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(text, " EUR"))
	if err != nil {
		return Money{}, err
	}

	return Money{Cents: n * 100}, nil
}

func TestFile_NewRegistry(t *testing.T) {
	factories := construct.NewRegistry()
	require.NoError(t, construct.Register(factories, parseMoney))

	f, err := config.LoadFile(filepath.Join("testdata", "shop.yaml"))
	require.NoError(t, err)

	reg, err := f.NewRegistry(factories)
	require.NoError(t, err)
	assert.Equal(t, language.French, reg.Locale())

	expr, err := expression.NewCucumberExpression(
		"{amount} {flavour} cones with {color} sprinkles for {price} or {money}", nil, reg)
	require.NoError(t, err)

	args, err := expr.Match("3 vanilla cones with red sprinkles for 4,5 or 5 EUR")
	require.NoError(t, err)
	require.Len(t, args, 5)

	var got []any

	for _, arg := range args {
		v, err := arg.Value()
		require.NoError(t, err)

		got = append(got, v)
	}

	assert.Equal(t, []any{int64(3), "vanilla", "red", 4.5, Money{Cents: 500}}, got)

	amount := reg.LookupByName("amount")
	require.NotNil(t, amount)
	assert.False(t, amount.UseForSnippets())
}

func TestFile_NewRegistry_InvalidLocale(t *testing.T) {
	f := &config.File{Version: "1", Locale: "not a locale"}

	_, err := f.NewRegistry(nil)
	assert.ErrorContains(t, err, `invalid locale "not a locale"`)
}

func TestFile_Apply_ReportsEveryFailure(t *testing.T) {
	var buf bytes.Buffer

	reg := parameter.NewRegistry(language.English, parameter.WithLogger(logging.NewWithWriter(&buf, "config")))

	f := &config.File{ParameterTypes: []config.ParameterType{
		{Name: "int", Regexps: config.StringOrArray{"x"}},
		{Name: "color", Regexps: config.StringOrArray{"red|blue"}},
		{Name: "money", Regexps: config.StringOrArray{"m"}, Transform: config.TransformFactory, Type: "config_test.Mony"},
		{Name: "shade", Regexps: config.StringOrArray{"red|blue"}},
	}}

	err := f.Apply(reg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, parameter.ErrDuplicateName)
	assert.ErrorIs(t, err, construct.ErrConstruction)
	assert.Contains(t, err.Error(), "[duplicate-name]")
	assert.Contains(t, err.Error(), "[unknown-factory]")

	assert.NotNil(t, reg.LookupByName("color"))
	assert.NotNil(t, reg.LookupByName("shade"))
	assert.Nil(t, reg.LookupByName("money"))

	assert.Contains(t, buf.String(), "code=shared-regexp")
	assert.Contains(t, buf.String(), "parameter_type=shade")
}

func ExampleFile_NewRegistry() {
	f, err := config.Parse([]byte(`
locale: en
parameter_types:
  - name: color
    regexps: red|blue|yellow
`))
	if err != nil {
		panic(err)
	}

	reg, err := f.NewRegistry(nil)
	if err != nil {
		panic(err)
	}

	expr, err := expression.NewCucumberExpression("I have a {color} ball", nil, reg)
	if err != nil {
		panic(err)
	}

	args, _ := expr.Match("I have a blue ball")
	v, _ := args[0].Value()
	fmt.Println(v)

	// Output:
	// blue
}
