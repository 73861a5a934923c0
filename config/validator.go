package config

import (
	"fmt"

	"github.com/grovetools/juju-prompt/schema"
)

// validateModule checks a decoded module table against the schema reflected
// from target.
func validateModule(name string, table map[string]interface{}, target interface{}) error {
	schemaBytes, err := GenerateSchema(name, target)
	if err != nil {
		return fmt.Errorf("failed to generate schema for [%s]: %w", name, err)
	}

	validator, err := schema.NewValidator(name, schemaBytes)
	if err != nil {
		return err
	}
	return validator.Validate(table)
}
