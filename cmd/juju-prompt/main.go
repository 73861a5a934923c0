package main

import (
	"os"

	"github.com/grovetools/juju-prompt/cli"
	"github.com/grovetools/juju-prompt/cmd"
	"github.com/grovetools/juju-prompt/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	executed, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// Usage mistakes come straight from cobra and carry no code.
	if errors.GetCode(err) == "" {
		cli.PrintError(executed, err)
	} else {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose, os.Stderr).Handle(err)
	}
	os.Exit(1)
}
