package parameter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrInvalidParameterType         = errors.New("invalid parameter type")
	ErrDuplicateName                = errors.New("duplicate parameter type name")
	ErrDuplicateType                = errors.New("duplicate parameter type semantic type")
	ErrConflictingPreferentialTypes = errors.New("conflicting preferential parameter types")
	ErrAmbiguousParameterType       = errors.New("ambiguous parameter type")
)

// DuplicateNameError is returned by Define when the name is taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "there is already a parameter type with name " + e.Name
}

func (e *DuplicateNameError) Is(target error) bool { return target == ErrDuplicateName }

// DuplicateTypeError is returned by Define when the semantic type is taken.
type DuplicateTypeError struct {
	Type     reflect.Type
	Existing string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("there is already a parameter type with type %s ({%s})", e.Type, e.Existing)
}

func (e *DuplicateTypeError) Is(target error) bool { return target == ErrDuplicateType }

// ConflictingPreferentialError is returned by Define when a regexp would get
// a second preferential type.
type ConflictingPreferentialError struct {
	Regexp   string
	Existing string
	Added    string
}

func (e *ConflictingPreferentialError) Error() string {
	return fmt.Sprintf("there can only be one preferential parameter type per regexp. "+
		"The regexp /%s/ is used for two preferential parameter types, {%s} and {%s}",
		e.Regexp, e.Existing, e.Added)
}

func (e *ConflictingPreferentialError) Is(target error) bool {
	return target == ErrConflictingPreferentialTypes
}

// AmbiguousError is returned by LookupByRegexp when several non-preferential
// types share the regexp. Candidates are in registry order.
type AmbiguousError struct {
	Regexp     string
	Candidates []*Type
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("the regexp /%s/ matches multiple parameter types: %s",
		e.Regexp, JoinNames(e.Candidates))
}

func (e *AmbiguousError) Is(target error) bool { return target == ErrAmbiguousParameterType }

// JoinNames renders types as "{a}, {b}".
func JoinNames(types []*Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}

	return strings.Join(parts, ", ")
}
