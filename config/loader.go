package config

import (
	"fmt"
	"os"

	"github.com/grovetools/juju-prompt/errors"
	"github.com/grovetools/juju-prompt/util/pathutil"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath returns the prompt configuration file: $STARSHIP_CONFIG when
// set, otherwise ~/.config/starship.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv("STARSHIP_CONFIG"); p != "" {
		return pathutil.Expand(p)
	}
	return pathutil.Expand("~/.config/starship.toml")
}

// LoadModule reads the TOML file at path and decodes its [name] table into
// target, which must be a pointer to a struct with toml tags. Keys missing
// from the table leave target's existing values untouched, so callers pass
// a target pre-filled with defaults. A file without the table is not an
// error.
func LoadModule(path, name string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.ConfigNotFound(path)
		}
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	if err := LoadModuleFromBytes(data, name, target); err != nil {
		if promptErr, ok := err.(*errors.Error); ok {
			return promptErr.WithDetail("path", path)
		}
		return err
	}
	return nil
}

// LoadModuleFromBytes is LoadModule for in-memory TOML.
func LoadModuleFromBytes(data []byte, name string, target interface{}) error {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML")
	}

	raw, ok := doc[name]
	if !ok {
		return nil
	}
	table, ok := raw.(map[string]interface{})
	if !ok {
		return errors.ConfigInvalid(fmt.Sprintf("[%s] must be a table", name)).
			WithDetail("module", name)
	}

	if err := validateModule(name, table, target); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("invalid [%s] table", name)).
			WithDetail("module", name)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "toml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(table); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("failed to decode [%s]", name)).
			WithDetail("module", name)
	}
	return nil
}
