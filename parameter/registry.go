package parameter

import (
	"fmt"
	"log/slog"
	"reflect"

	"golang.org/x/text/language"

	"cukexpr/construct"
	"cukexpr/internal/common"
	"cukexpr/internal/locale"
	"cukexpr/internal/logging"
	"cukexpr/internal/numeric"
)

// Registry owns the defined parameter types and indexes them by name,
// semantic type and regexp.
type Registry struct {
	tag       language.Tag
	numbers   *locale.NumberParser
	factories *construct.Registry
	logger    *slog.Logger

	byName     map[string]*Type
	bySemantic map[reflect.Type]*Type
	byRegexp   map[string][]*Type // preferential type first, then definition order

	defined  []*Type
	seq      map[*Type]int
	builtins map[*Type]bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithFactories sets the single-string factories consulted for explicit
// result types that have no parameter type.
func WithFactories(factories *construct.Registry) Option {
	return func(r *Registry) { r.factories = factories }
}

// NewRegistry creates a registry with the built-in types defined. The
// language selects the decimal separator for bigdecimal, float and double.
func NewRegistry(tag language.Tag, opts ...Option) *Registry {
	r := &Registry{
		tag:        tag,
		numbers:    locale.NewNumberParser(tag),
		byName:     make(map[string]*Type),
		bySemantic: make(map[reflect.Type]*Type),
		byRegexp:   make(map[string][]*Type),
		seq:        make(map[*Type]int),
		builtins:   make(map[*Type]bool),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = logging.New("parameter")
	}

	if r.factories == nil {
		r.factories = construct.NewRegistry()
	}

	r.defineBuiltins()

	return r
}

// Define adds a parameter type to every index.
//
// All checks run before anything is indexed, so a failed Define leaves the
// registry unchanged.
func (r *Registry) Define(t *Type) error {
	if t == nil {
		return fmt.Errorf("%w: nil parameter type", ErrInvalidParameterType)
	}

	if _, exists := r.seq[t]; exists {
		return fmt.Errorf("%w: %s is already defined", ErrInvalidParameterType, t)
	}

	if t.name != "" {
		if _, exists := r.byName[t.name]; exists {
			return &DuplicateNameError{Name: t.name}
		}
	}

	if t.semantic != nil {
		if existing, exists := r.bySemantic[t.semantic]; exists {
			return &DuplicateTypeError{Type: t.semantic, Existing: existing.name}
		}
	}

	if t.preferential {
		for _, re := range t.regexps {
			if first, ok := common.First(r.byRegexp[re]); ok && first.preferential {
				return &ConflictingPreferentialError{Regexp: re, Existing: first.name, Added: t.name}
			}
		}
	}

	r.seq[t] = len(r.defined)
	r.defined = append(r.defined, t)

	if t.name != "" {
		r.byName[t.name] = t
	}

	if t.semantic != nil {
		r.bySemantic[t.semantic] = t
	}

	for _, re := range t.regexps {
		if t.preferential {
			r.byRegexp[re] = append([]*Type{t}, r.byRegexp[re]...)
		} else {
			r.byRegexp[re] = append(r.byRegexp[re], t)
		}
	}

	r.logger.Debug("defined parameter type",
		"name", t.name,
		"type", typeName(t.semantic),
		"regexps", t.regexps,
		"preferential", t.preferential)

	return nil
}

// LookupByName returns the type with the given name, or nil.
func (r *Registry) LookupByName(name string) *Type {
	return r.byName[name]
}

// LookupBySemanticType returns the type producing values of t, or nil.
// Pointers to predeclared numeric types resolve to the numeric type.
func (r *Registry) LookupBySemanticType(t reflect.Type) *Type {
	if t == nil {
		return nil
	}

	return r.bySemantic[numeric.Boxed(t)]
}

// LookupByRegexp returns the type a capture group with the given regexp
// source resolves to. It returns (nil, nil) when no type uses the regexp,
// and an *AmbiguousError when several types do and none is preferential.
func (r *Registry) LookupByRegexp(re string) (*Type, error) {
	types := r.byRegexp[re]

	first, ok := common.First(types)
	if !ok {
		return nil, nil
	}

	if common.IsMultiple(types) && !first.preferential {
		r.logger.Debug("ambiguous regexp lookup", "regexp", re, "candidates", JoinNames(types))

		return nil, &AmbiguousError{Regexp: re, Candidates: append([]*Type(nil), types...)}
	}

	return first, nil
}

// TypesForRegexp returns the types sharing a regexp, preferential first.
func (r *Registry) TypesForRegexp(re string) []*Type {
	return append([]*Type(nil), r.byRegexp[re]...)
}

// ParameterTypes returns every defined type in definition order.
func (r *Registry) ParameterTypes() []*Type {
	return append([]*Type(nil), r.defined...)
}

// Less orders types the way regexp lookups do: preferential types first,
// then by definition order. Types from another registry sort last.
func (r *Registry) Less(a, b *Type) bool {
	if a.preferential != b.preferential {
		return a.preferential
	}

	return r.order(a) < r.order(b)
}

func (r *Registry) order(t *Type) int {
	if i, ok := r.seq[t]; ok {
		return i
	}

	return len(r.defined)
}

// Locale returns the language the registry parses decimals in.
func (r *Registry) Locale() language.Tag { return r.tag }

// NumberParser returns the registry's decimal parser.
func (r *Registry) NumberParser() *locale.NumberParser { return r.numbers }

// Factories returns the single-string factories of the registry.
func (r *Registry) Factories() *construct.Registry { return r.factories }

// Logger returns the registry's logger.
func (r *Registry) Logger() *slog.Logger { return r.logger }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}

	return t.String()
}
