package construct

import (
	"fmt"
	"reflect"
	"sort"
)

// Func builds a value from matched text.
type Func func(text string) (any, error)

// Registry maps semantic types to their single-string factories.
type Registry struct {
	byType map[reflect.Type]Func
	byName map[string]reflect.Type
}

// NewRegistry creates an empty factory registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]Func),
		byName: make(map[string]reflect.Type),
	}
}

// Register adds a typed factory for T.
func Register[T any](r *Registry, fn func(string) (T, error)) error {
	return r.RegisterFunc(reflect.TypeFor[T](), func(text string) (any, error) {
		return fn(text)
	})
}

// RegisterFunc adds an untyped factory for t. The factory must return values
// assignable to t.
func (r *Registry) RegisterFunc(t reflect.Type, fn Func) error {
	if t == nil || fn == nil {
		return fmt.Errorf("factory registration needs a type and a function")
	}

	if t.Kind() == reflect.Interface {
		return &ConstructionError{Op: "cannot register", Signature: signature(t), Cause: ErrNotInstantiable}
	}

	if _, exists := r.byType[t]; exists {
		return fmt.Errorf("a factory for %s is already registered", t)
	}

	r.byType[t] = fn
	r.byName[t.String()] = t

	return nil
}

// Lookup returns the factory registered for t.
func (r *Registry) Lookup(t reflect.Type) (Func, bool) {
	if r == nil || t == nil {
		return nil, false
	}

	fn, ok := r.byType[t]

	return fn, ok
}

// LookupName finds a registered type by its reflect name, e.g. "example.Money".
func (r *Registry) LookupName(name string) (reflect.Type, bool) {
	if r == nil {
		return nil, false
	}

	t, ok := r.byName[name]

	return t, ok
}

// Names returns the names of all registered types, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Require returns the factory for t or a missing-factory ConstructionError.
func (r *Registry) Require(t reflect.Type) (Func, error) {
	fn, ok := r.Lookup(t)
	if !ok {
		return nil, &ConstructionError{Op: "missing factory:", Signature: signature(t), Cause: ErrMissingFactory}
	}

	return fn, nil
}

// Construct builds a value of type t from text.
func (r *Registry) Construct(t reflect.Type, text string) (any, error) {
	fn, err := r.Require(t)
	if err != nil {
		return nil, err
	}

	return invoke(t, fn, text)
}

// Bind returns a transform that constructs t, failing immediately when no
// factory is registered.
func (r *Registry) Bind(t reflect.Type) (Func, error) {
	fn, err := r.Require(t)
	if err != nil {
		return nil, err
	}

	return func(text string) (any, error) {
		return invoke(t, fn, text)
	}, nil
}

func invoke(t reflect.Type, fn Func, text string) (any, error) {
	v, err := fn(text)
	if err != nil {
		return nil, &ConstructionError{
			Op:        "failed to invoke",
			Signature: fmt.Sprintf("%s(%q)", t, text),
			Cause:     err,
		}
	}

	return v, nil
}

func signature(t reflect.Type) string {
	return fmt.Sprintf("func(string) (%s, error)", t)
}
