package parameter

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"cukexpr/construct"
)

// Transform turns matched text into a value. A nil Transform passes the text through.
type Transform func(text string) (any, error)

// Type is a named, typed matcher usable as a {name} placeholder and for
// inferring placeholders from literal text.
//
// Types are immutable once created.
type Type struct {
	name           string
	semantic       reflect.Type
	regexps        []string
	patterns       []*regexp.Regexp
	preferential   bool
	useForSnippets bool
	transform      Transform
}

// TypeOption configures optional flags of a Type.
type TypeOption func(*Type)

// Preferential marks the type as the winner when it shares a regexp with
// other types.
func Preferential() TypeOption {
	return func(t *Type) { t.preferential = true }
}

// UseForSnippets controls whether the generator proposes this type.
// Types are used for snippets by default.
func UseForSnippets(use bool) TypeOption {
	return func(t *Type) { t.useForSnippets = use }
}

const illegalNameChars = `{}()\/`

// New creates a parameter type.
//
// The name may be empty for types that are only looked up by semantic type or
// regexp. semantic may be nil; such types never collide on type. A nil
// transform yields the matched text.
func New(name string, regexps []string, semantic reflect.Type, transform Transform, opts ...TypeOption) (*Type, error) {
	if strings.ContainsAny(name, illegalNameChars) || strings.IndexFunc(name, isSpace) >= 0 {
		return nil, fmt.Errorf("%w: name %q may not contain whitespace or any of %s",
			ErrInvalidParameterType, name, illegalNameChars)
	}

	if len(regexps) == 0 {
		return nil, fmt.Errorf("%w: {%s} needs at least one regexp", ErrInvalidParameterType, name)
	}

	t := &Type{
		name:           name,
		semantic:       semantic,
		useForSnippets: true,
		transform:      transform,
	}

	seen := make(map[string]struct{}, len(regexps))

	for _, src := range regexps {
		if _, dup := seen[src]; dup {
			continue
		}

		seen[src] = struct{}{}

		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: {%s} regexp /%s/: %w", ErrInvalidParameterType, name, src, err)
		}

		t.regexps = append(t.regexps, src)
		t.patterns = append(t.patterns, re)
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// NewEnum creates a type that matches exactly the keys of values and yields
// the mapped value. An empty name defaults to the lower-cased name of V.
func NewEnum[V any](name string, values map[string]V, opts ...TypeOption) (*Type, error) {
	semantic := reflect.TypeFor[V]()
	if name == "" {
		name = strings.ToLower(semantic.Name())
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: enum {%s} has no values", ErrInvalidParameterType, name)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	pattern := LiteralAlternation(keys)
	sort.Strings(keys)

	transform := func(text string) (any, error) {
		v, ok := values[text]
		if !ok {
			return nil, fmt.Errorf("%q is not a valid {%s}, expected one of %s",
				text, name, strings.Join(keys, ", "))
		}

		return v, nil
	}

	return New(name, []string{pattern}, semantic, transform, opts...)
}

// LiteralAlternation returns a regexp matching exactly one of values.
// Longer values come first so that "dark red" wins over "dark".
func LiteralAlternation(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}

		return sorted[i] < sorted[j]
	})

	quoted := make([]string, len(sorted))
	for i, v := range sorted {
		quoted[i] = regexp.QuoteMeta(v)
	}

	return strings.Join(quoted, "|")
}

// FromFactory creates a type whose values are built by the factory registered
// for semantic. It fails with a construct.ConstructionError when there is none.
func FromFactory(name string, regexps []string, semantic reflect.Type, factories *construct.Registry, opts ...TypeOption) (*Type, error) {
	fn, err := factories.Bind(semantic)
	if err != nil {
		return nil, err
	}

	return New(name, regexps, semantic, Transform(fn), opts...)
}

// Name returns the placeholder name, without braces.
func (t *Type) Name() string { return t.name }

// SemanticType returns the Go type of transformed values, or nil.
func (t *Type) SemanticType() reflect.Type { return t.semantic }

// Regexps returns the source of each regexp, in definition order.
func (t *Type) Regexps() []string {
	return append([]string(nil), t.regexps...)
}

// Patterns returns the compiled regexps, in definition order.
func (t *Type) Patterns() []*regexp.Regexp {
	return append([]*regexp.Regexp(nil), t.patterns...)
}

// Preferential reports whether the type wins ties on shared regexps.
func (t *Type) Preferential() bool { return t.preferential }

// UseForSnippets reports whether the generator proposes this type.
func (t *Type) UseForSnippets() bool { return t.useForSnippets }

// Transform converts matched text into the type's value.
func (t *Type) Transform(text string) (any, error) {
	if t.transform == nil {
		return text, nil
	}

	return t.transform(text)
}

// String returns the placeholder form, e.g. "{int}".
func (t *Type) String() string {
	return "{" + t.name + "}"
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
