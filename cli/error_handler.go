package cli

import (
	"fmt"
	"io"

	"github.com/grovetools/juju-prompt/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to out
func NewErrorHandler(verbose bool, out io.Writer) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     out,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	promptErr, _ := err.(*errors.Error)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ Configuration not found: %v\n", err)
		fmt.Fprintf(h.Out, "Set STARSHIP_CONFIG or pass --config with the path to starship.toml.\n")

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(h.Out, "❌ Invalid configuration: %v\n", err)
		fmt.Fprintf(h.Out, "Run 'juju-prompt schema' to see the accepted [juju] keys.\n")

	case errors.ErrCodeTemplateSyntax, errors.ErrCodeUnknownVariable:
		fmt.Fprintf(h.Out, "❌ Invalid format string: %v\n", err)
		fmt.Fprintf(h.Out, "Available variables: $symbol, $version, $model.\n")

	case errors.ErrCodeUnknownStyle, errors.ErrCodeInvalidStyle:
		fmt.Fprintf(h.Out, "❌ Invalid style: %v\n", err)
		fmt.Fprintf(h.Out, "Styles look like 'bold fg:#E95420 bg:blue'; the only style variable is $style.\n")

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	if h.Verbose && promptErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", promptErr.ToJSON())
	}
	return err
}
