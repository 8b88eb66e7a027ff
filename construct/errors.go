package construct

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction matches every ConstructionError.
	ErrConstruction = errors.New("construction failed")
	// ErrMissingFactory is the cause when no factory is registered for a type.
	ErrMissingFactory = errors.New("missing factory")
	// ErrNotInstantiable is the cause when a factory targets an interface type.
	ErrNotInstantiable = errors.New("type is not instantiable")
)

// ConstructionError reports a failure to build a value from text.
// Signature is the offending call, e.g. `func(string) (pkg.Color, error)`
// for a missing factory or `pkg.Color("red")` for a failed invocation.
type ConstructionError struct {
	Op        string
	Signature string
	Cause     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s `%s`", e.Op, e.Signature)
}

// Unwrap returns the factory error or one of the sentinel causes.
func (e *ConstructionError) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, ErrConstruction) true for every ConstructionError.
func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }
