package config

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML definition file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter type file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse validates and decodes YAML data into a File.
func Parse(data []byte) (*File, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parameter type YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Locale == "" {
		f.Locale = language.English.String()
	}

	for i := range f.ParameterTypes {
		pt := &f.ParameterTypes[i]
		if pt.Transform == "" {
			pt.Transform = TransformString
		}

		if pt.UseForSnippets == nil {
			use := true
			pt.UseForSnippets = &use
		}
	}
}

// Tag parses the file's locale.
func (f *File) Tag() (language.Tag, error) {
	tag, err := language.Parse(f.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", f.Locale, err)
	}

	return tag, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal parameter types: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write parameter type file %s: %w", path, err)
	}

	return nil
}
