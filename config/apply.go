package config

import (
	"errors"
	"fmt"

	"cukexpr/construct"
	"cukexpr/internal/diagnostic"
	"cukexpr/internal/match"
	"cukexpr/internal/numeric"
	"cukexpr/parameter"
)

// Diagnostic codes reported by Apply.
const (
	CodeDuplicateName           = "duplicate-name"
	CodeDuplicateType           = "duplicate-type"
	CodeConflictingPreferential = "conflicting-preferential"
	CodeInvalidParameterType    = "invalid-parameter-type"
	CodeUnknownFactory          = "unknown-factory"
	CodeSharedRegexp            = "shared-regexp"
	CodeDefined                 = "defined"
)

// NewRegistry creates a registry in the file's locale and applies the file
// to it. factories may be nil.
func (f *File) NewRegistry(factories *construct.Registry, opts ...parameter.Option) (*parameter.Registry, error) {
	tag, err := f.Tag()
	if err != nil {
		return nil, err
	}

	if factories != nil {
		opts = append([]parameter.Option{parameter.WithFactories(factories)}, opts...)
	}

	reg := parameter.NewRegistry(tag, opts...)

	return reg, f.Apply(reg, factories)
}

// Apply defines every parameter type of the file in reg. Entries that fail
// are skipped; their diagnostics are joined into the returned error. A nil
// factories uses the registry's own.
func (f *File) Apply(reg *parameter.Registry, factories *construct.Registry) error {
	diags := f.apply(reg, factories)

	for _, w := range diags.Warnings {
		reg.Logger().Warn(w.Message, "code", w.Code, "parameter_type", w.Subject)
	}

	reg.Logger().Debug("applied parameter type file",
		"defined", len(diags.Infos), "failed", len(diags.Errors), "warnings", len(diags.Warnings))

	return diags.Error()
}

func (f *File) apply(reg *parameter.Registry, factories *construct.Registry) *diagnostic.Diagnostics {
	if factories == nil {
		factories = reg.Factories()
	}

	diags := &diagnostic.Diagnostics{}

	for i := range f.ParameterTypes {
		def := &f.ParameterTypes[i]

		pt, err := def.build(reg, factories)
		if err != nil {
			report(diags, def, factories, err)

			continue
		}

		shared := sharedRegexps(reg, pt)

		if err := reg.Define(pt); err != nil {
			report(diags, def, factories, err)

			continue
		}

		for _, re := range shared {
			diags.AddWarning(CodeSharedRegexp,
				fmt.Sprintf("regexp /%s/ is also used by %s", re.regexp, parameter.JoinNames(re.types)),
				def.Name, "regexps", "make one of them preferential")
		}

		diags.AddInfo(CodeDefined, "defined "+pt.String(), def.Name)
	}

	return diags
}

type sharedRegexp struct {
	regexp string
	types  []*parameter.Type
}

// sharedRegexps lists the regexps of pt already used without a preferential
// type, where regexp lookups would become ambiguous.
func sharedRegexps(reg *parameter.Registry, pt *parameter.Type) []sharedRegexp {
	if pt.Preferential() {
		return nil
	}

	var shared []sharedRegexp

	for _, re := range pt.Regexps() {
		existing := reg.TypesForRegexp(re)
		if len(existing) > 0 && !existing[0].Preferential() {
			shared = append(shared, sharedRegexp{regexp: re, types: existing})
		}
	}

	return shared
}

func report(diags *diagnostic.Diagnostics, def *ParameterType, factories *construct.Registry, err error) {
	switch {
	case errors.Is(err, parameter.ErrDuplicateName):
		diags.AddError(CodeDuplicateName, def.Name, "name", err)
	case errors.Is(err, parameter.ErrDuplicateType):
		diags.AddError(CodeDuplicateType, def.Name, "type", err)
	case errors.Is(err, parameter.ErrConflictingPreferentialTypes):
		diags.AddError(CodeConflictingPreferential, def.Name, "preferential", err)
	case errors.Is(err, construct.ErrConstruction):
		diags.AddError(CodeUnknownFactory, def.Name, "type", err, match.Suggest(def.Type, factories.Names()).Names()...)
	default:
		diags.AddError(CodeInvalidParameterType, def.Name, "", err)
	}
}

// build turns the definition into a parameter type without defining it.
func (def *ParameterType) build(reg *parameter.Registry, factories *construct.Registry) (*parameter.Type, error) {
	var opts []parameter.TypeOption
	if def.Preferential {
		opts = append(opts, parameter.Preferential())
	}

	if def.UseForSnippets != nil {
		opts = append(opts, parameter.UseForSnippets(*def.UseForSnippets))
	}

	regexps := []string(def.Regexps)

	switch def.Transform {
	case TransformString, "":
		return parameter.New(def.Name, regexps, nil, nil, opts...)

	case TransformInt:
		return parameter.New(def.Name, regexps, nil, coerce(reg, numeric.KindInt64), opts...)

	case TransformFloat:
		return parameter.New(def.Name, regexps, nil, coerce(reg, numeric.KindFloat64), opts...)

	case TransformEnum:
		values := def.Values
		if len(values) == 0 {
			values = regexps
		}

		allowed := make(map[string]struct{}, len(values))
		for _, v := range values {
			allowed[v] = struct{}{}
		}

		return parameter.New(def.Name, []string{parameter.LiteralAlternation(values)}, nil, func(text string) (any, error) {
			if _, ok := allowed[text]; !ok {
				return nil, fmt.Errorf("%q is not a valid {%s}", text, def.Name)
			}

			return text, nil
		}, opts...)

	case TransformFactory:
		t, ok := factories.LookupName(def.Type)
		if !ok {
			return nil, &construct.ConstructionError{
				Op:        "missing factory:",
				Signature: fmt.Sprintf("func(string) (%s, error)", def.Type),
				Cause:     construct.ErrMissingFactory,
			}
		}

		return parameter.FromFactory(def.Name, regexps, t, factories, opts...)
	}

	return nil, fmt.Errorf("%w: {%s} has unknown transform %q", parameter.ErrInvalidParameterType, def.Name, def.Transform)
}

func coerce(reg *parameter.Registry, kind numeric.Kind) parameter.Transform {
	parser := reg.NumberParser()

	return func(text string) (any, error) {
		return numeric.Coerce(text, kind, parser)
	}
}
