package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// TemplateSyntax creates a template parse error at the given byte offset
func TemplateSyntax(reason string, position int) *Error {
	return New(ErrCodeTemplateSyntax, fmt.Sprintf("%s at position %d", reason, position)).
		WithDetail("position", position)
}

// UnknownVariable creates an error for a placeholder no resolver recognizes
func UnknownVariable(name string) *Error {
	return New(ErrCodeUnknownVariable, fmt.Sprintf("unknown variable '$%s'", name)).
		WithDetail("variable", name)
}

// UnknownStyle creates an error for a style variable no resolver recognizes
func UnknownStyle(name string) *Error {
	return New(ErrCodeUnknownStyle, fmt.Sprintf("unknown style variable '$%s'", name)).
		WithDetail("style", name)
}

// InvalidStyle creates an error for a style string that cannot be parsed
func InvalidStyle(style string, err error) *Error {
	return Wrap(err, ErrCodeInvalidStyle, fmt.Sprintf("invalid style '%s'", style)).
		WithDetail("style", style)
}
