package generator_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"cukexpr/generator"
	"cukexpr/internal/logging"
	"cukexpr/parameter"
)

type currency string

type date string

func define(t *testing.T, reg *parameter.Registry, name string, regexps []string, semantic reflect.Type, opts ...parameter.TypeOption) *parameter.Type {
	t.Helper()

	pt, err := parameter.New(name, regexps, semantic, nil, opts...)
	require.NoError(t, err)
	require.NoError(t, reg.Define(pt))

	return pt
}

func sources(list []*generator.GeneratedExpression) []string {
	out := make([]string, len(list))
	for i, ge := range list {
		out[i] = ge.Source()
	}

	return out
}

func typeNames(ge *generator.GeneratedExpression) []string {
	var out []string
	for _, pt := range ge.ParameterTypes() {
		out = append(out, pt.Name())
	}

	return out
}

func TestGenerateExpression_Literal(t *testing.T) {
	gen := generator.New(parameter.NewRegistry(language.English))

	ge := gen.GenerateExpression("hello")
	require.NotNil(t, ge)
	assert.Equal(t, "hello", ge.Source())
	assert.Empty(t, ge.ParameterTypes())
	assert.Empty(t, ge.ParameterNames())
}

func TestGenerateExpression_Builtins(t *testing.T) {
	gen := generator.New(parameter.NewRegistry(language.English))

	tests := []struct {
		text     string
		expected string
		types    []string
	}{
		{"I have 2 cukes and 1.5 euro", "I have {int} cukes and {double} euro", []string{"int", "double"}},
		{"99999", "{int}", []string{"int"}},
		{"-3 degrees", "{int} degrees", []string{"int"}},
		{"costs .5 dollars", "costs {double} dollars", []string{"double"}},
		{"1 and 2 and 3", "{int} and {int} and {int}", []string{"int", "int", "int"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ge := gen.GenerateExpression(tt.text)
			assert.Equal(t, tt.expected, ge.Source())
			assert.Equal(t, tt.types, typeNames(ge))
		})
	}
}

func TestGenerateExpression_RepeatedNames(t *testing.T) {
	reg := parameter.NewRegistry(language.English)
	define(t, reg, "currency", []string{`[A-Z]{3}`}, reflect.TypeOf(currency("")))

	ge := generator.New(reg).GenerateExpression("convert 3 USD to EUR")
	assert.Equal(t, "convert {int} {currency} to {currency}", ge.Source())
	assert.Equal(t, []string{"int", "currency", "currency2"}, ge.ParameterNames())
}

func TestGenerateExpression_NamesAreIdentifiers(t *testing.T) {
	reg := parameter.NewRegistry(language.English)
	define(t, reg, "css-color", []string{`#[0-9a-f]{6}`}, nil)
	define(t, reg, "type", []string{`admin|guest`}, nil)

	ge := generator.New(reg).GenerateExpression("paint #ff0000 for admin and guest")
	assert.Equal(t, "paint {css-color} for {type} and {type}", ge.Source())
	assert.Equal(t, []string{"cssColor", "type1", "type2"}, ge.ParameterNames())
}

func TestGenerateExpressions_Combinations(t *testing.T) {
	reg := parameter.NewRegistry(language.English)
	define(t, reg, "a", []string{`x`}, nil)
	define(t, reg, "b", []string{`x`}, nil)

	list := generator.New(reg).GenerateExpressions("I have x and x and another x")

	expected := []string{
		"I have {a} and {a} and another {a}",
		"I have {a} and {a} and another {b}",
		"I have {a} and {b} and another {a}",
		"I have {a} and {b} and another {b}",
		"I have {b} and {a} and another {a}",
		"I have {b} and {a} and another {b}",
		"I have {b} and {b} and another {a}",
		"I have {b} and {b} and another {b}",
	}
	if diff := cmp.Diff(expected, sources(list)); diff != "" {
		t.Errorf("GenerateExpressions() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"a", "b", "a2"}, list[2].ParameterNames())
	assert.Equal(t, []string{"a", "a2", "a3"}, list[0].ParameterNames())
	assert.Equal(t, []string{"b", "a", "a2"}, list[4].ParameterNames())
}

func TestGenerateExpressions_LimitsCombinations(t *testing.T) {
	reg := parameter.NewRegistry(language.English)
	define(t, reg, "a", []string{`x`}, nil)
	define(t, reg, "b", []string{`x`}, nil)

	gen := generator.New(reg)

	for _, n := range []int{9, 63, 64, 100} {
		text := strings.TrimSpace(strings.Repeat("x ", n))

		list := gen.GenerateExpressions(text)
		require.Len(t, list, generator.MaxExpressions, "n=%d", n)

		want := strings.TrimSpace(strings.Repeat("{a} ", n))
		assert.Equal(t, want, list[0].Source())
		assert.Equal(t, strings.TrimSuffix(want, "{a}")+"{b}", list[1].Source())

		ge := gen.GenerateExpression(text)
		require.NotNil(t, ge)
		assert.Len(t, ge.ParameterTypes(), n)
	}
}

func TestGenerateExpressions_PreferentialFirst(t *testing.T) {
	reg := parameter.NewRegistry(language.English)
	define(t, reg, "first", []string{`x`}, nil)
	define(t, reg, "second", []string{`x`}, nil, parameter.Preferential())

	list := generator.New(reg).GenerateExpressions("x")
	assert.Equal(t, []string{"{second}", "{first}"}, sources(list))
}

func TestGenerateExpression_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected string
	}{
		{"leftmost wins", "cd", "bc", "a{b}defg"},
		{"widest wins at same start", "cd", "cde", "ab{b}fg"},
		{"contained span dropped", "bcdef", "cd", "a{a}g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := parameter.NewRegistry(language.English)
			define(t, reg, "a", []string{tt.a}, nil)
			define(t, reg, "b", []string{tt.b}, nil)

			list := generator.New(reg).GenerateExpressions("abcdefg")
			assert.Equal(t, []string{tt.expected}, sources(list))
		})
	}
}

func TestGenerateExpression_SkipsNonSnippetTypes(t *testing.T) {
	reg := parameter.NewRegistry(language.English)
	define(t, reg, "word", []string{`[a-z]+`}, nil, parameter.UseForSnippets(false))

	ge := generator.New(reg).GenerateExpression("hello 5")
	assert.Equal(t, "hello {int}", ge.Source())
}

func TestGenerateExpression_SkipsEmptyMatches(t *testing.T) {
	reg := parameter.NewRegistry(language.English)
	define(t, reg, "maybe", []string{`z*`}, nil)

	ge := generator.New(reg).GenerateExpression("abc")
	assert.Equal(t, "abc", ge.Source())
}

func TestGenerateExpression_EscapesLiterals(t *testing.T) {
	gen := generator.New(parameter.NewRegistry(language.English))

	ge := gen.GenerateExpression(`I have 3 {cukes} (or not) and/or a \ sign`)
	assert.Equal(t, `I have {int} \{cukes\} \(or not\) and\/or a \\ sign`, ge.Source())
}

func TestGeneratedExpression_Copies(t *testing.T) {
	gen := generator.New(parameter.NewRegistry(language.English))
	ge := gen.GenerateExpression("5 cats")

	names := ge.ParameterNames()
	names[0] = "changed"
	types := ge.ParameterTypes()
	types[0] = nil

	assert.Equal(t, []string{"int"}, ge.ParameterNames())
	assert.NotNil(t, ge.ParameterTypes()[0])
	assert.Equal(t, "{int} cats", ge.String())
}

func TestGenerator_DebugLogging(t *testing.T) {
	t.Setenv(logging.DebugEnv, "1")

	var buf bytes.Buffer

	reg := parameter.NewRegistry(language.English, parameter.WithLogger(logging.NewWithWriter(&buf, "generator")))
	generator.New(reg).GenerateExpressions("1 and 2")

	assert.Contains(t, buf.String(), `msg="generating expressions"`)
	assert.Contains(t, buf.String(), "placeholders=2")
}
