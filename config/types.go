package config

import (
	"slices"

	"cukexpr/internal/common"
)

// File is a parameter type definition file.
type File struct {
	Version        string          `yaml:"version"`
	Locale         string          `yaml:"locale,omitempty"`
	ParameterTypes []ParameterType `yaml:"parameter_types,omitempty"`
}

// ParameterType is one parameter type definition.
type ParameterType struct {
	Name           string        `yaml:"name"`
	Regexps        StringOrArray `yaml:"regexps"`
	Transform      TransformKind `yaml:"transform,omitempty"`
	Type           string        `yaml:"type,omitempty"`
	Values         []string      `yaml:"values,omitempty"`
	Preferential   bool          `yaml:"preferential,omitempty"`
	UseForSnippets *bool         `yaml:"use_for_snippets,omitempty"`
}

// TransformKind selects how matched text becomes a value.
type TransformKind string

const (
	TransformString  TransformKind = "string"
	TransformInt     TransformKind = "int"
	TransformFloat   TransformKind = "float"
	TransformEnum    TransformKind = "enum"
	TransformFactory TransformKind = "factory"
)

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsMultiple returns true if the array has more than one element.
func (s StringOrArray) IsMultiple() bool {
	return common.IsMultiple(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
