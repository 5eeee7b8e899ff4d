package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-schema-gate/models"
)

// Exit codes.
const (
	exitOK       = 0
	exitRejected = 1
	exitConfig   = 2
)

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "schemactl",
		Short:         "schemactl checks endpoint schemas and validates payloads",
		Long:          `schemactl loads the same schema file the schema gate serves and runs the gate's validation engine locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCheckCmd(),
		newValidateCmd(),
		newVersionCmd(info),
	)
	return root
}

// execute runs root and maps its error to an exit code.
func execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code != exitRejected {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", ee.err)
		}
		return ee.code
	}

	fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	return exitConfig
}
