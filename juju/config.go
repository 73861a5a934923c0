package juju

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

import "github.com/grovetools/juju-prompt/format"

// Config is the [juju] table of the prompt configuration.
type Config struct {
	// Format is the template rendered for the segment.
	Format string `toml:"format" jsonschema:"description=Template for the segment,default=via [$symbol$version$model]($style) "`
	// Symbol is substituted for $symbol.
	Symbol string `toml:"symbol" jsonschema:"description=Text substituted for $symbol"`
	// Style is substituted for $style inside group styles.
	Style string `toml:"style" jsonschema:"description=Style applied to the styled group of the default format,default=fg:#E95420"`
	// Disabled suppresses the segment entirely.
	Disabled bool `toml:"disabled" jsonschema:"description=Suppress the segment,default=false"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Format:   "via [$symbol$version$model]($style) ",
		Symbol:   "🔮 ",
		Style:    "fg:#E95420",
		Disabled: false,
	}
}

// Render fills the configured template with a version and the optional
// model suffix. $symbol is a meta variable and $style the only style
// variable.
func (c Config) Render(version string, model format.Variable) ([]format.Segment, error) {
	return format.Render(c.Format,
		func(name string) (format.Variable, bool) {
			switch name {
			case "version":
				return format.Value(version), true
			case "model":
				return model, true
			}
			return format.Variable{}, false
		},
		func(name string) (string, bool) {
			if name == "style" {
				return c.Style, true
			}
			return "", false
		},
		func(name string) (string, bool) {
			if name == "symbol" {
				return c.Symbol, true
			}
			return "", false
		},
	)
}

// Check renders the template with sample values and returns the first
// template error, if any.
func (c Config) Check() error {
	_, err := c.Render("0.0.0", format.Value(ActiveModel{Controller: "controller", Model: "model"}.Suffix()))
	return err
}
