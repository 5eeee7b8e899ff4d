package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-schema-gate/internal/schema"
	"github.com/MKhiriev/go-schema-gate/internal/validators"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <schema-file>",
		Short: "Check that every endpoint in a schema file builds",
		Long:  `Loads the schema file and builds a validator for each endpoint, reporting the first schema error.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, path string) error {
	endpoints, err := schema.Load(path)
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	factory := validators.DefaultFactory()
	out := cmd.OutOrStdout()
	for _, e := range endpoints {
		v, err := validators.NewRecordValidator(factory, e.Schema)
		if err != nil {
			return &exitError{code: exitConfig, err: fmt.Errorf("endpoint %q: %w", e.Name, err)}
		}

		extra := "strict"
		if v.AllowExtra() {
			extra = "allow_extra"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", e.Name, extra, strings.Join(v.Fields(), ","))
	}

	fmt.Fprintf(out, "%d endpoint(s) OK\n", len(endpoints))
	return nil
}
