package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for a module table such as
// [juju]. Property names follow the struct's toml tags and unknown keys are
// rejected.
func GenerateSchema(name string, target interface{}) ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for a flat schema.
		ExpandedStruct: true,
		// Every key of a module table is optional.
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "toml",
		Anonymous:                  true,
	}

	schema := r.Reflect(target)
	schema.Title = "[" + name + "]"
	schema.Description = "Configuration of the " + name + " prompt module."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
