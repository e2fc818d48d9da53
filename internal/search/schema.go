package search

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "schema://rental_agency/search.json"

// JSONSchema describes the search arguments as a JSON Schema object. No
// field is required.
func JSONSchema() map[string]any {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		prop := map[string]any{"description": f.Description}
		switch f.Kind {
		case KindEnum:
			prop["type"] = "string"
			enum := make([]any, len(f.Enum))
			for i, e := range f.Enum {
				enum[i] = e
			}
			prop["enum"] = enum
		case KindNumber:
			prop["type"] = "number"
		case KindInteger:
			prop["type"] = "integer"
		case KindFlag:
			prop["type"] = "boolean"
		}
		if f.Minimum != nil {
			prop["minimum"] = *f.Minimum
		}
		if f.Maximum != nil {
			prop["maximum"] = *f.Maximum
		}
		if f.ExclusiveMinimum != nil {
			prop["exclusiveMinimum"] = *f.ExclusiveMinimum
		}
		props[f.Name] = prop
	}
	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": props,
	}
}

// JSONSchemaBytes is JSONSchema encoded as JSON.
func JSONSchemaBytes() []byte {
	b, err := json.Marshal(JSONSchema())
	if err != nil {
		panic(fmt.Sprintf("search: encode schema: %v", err))
	}
	return b
}

// CompileSchema compiles JSONSchema so tool-call arguments can be checked
// against it before parsing.
func CompileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(JSONSchemaBytes())); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
}
