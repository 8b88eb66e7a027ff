package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for documents that fail schema validation.
var ErrInvalidConfig = errors.New("invalid parameter type file")

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://parameter-types.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}

	return compiler.Compile(schemaURL)
})

// validate checks a YAML document against the embedded schema. The document
// is re-encoded as JSON so that the validator sees JSON types only.
func validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse parameter type YAML: %w", err)
	}

	if doc == nil {
		doc = map[string]any{}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
