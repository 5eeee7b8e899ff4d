package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-schema-gate/models"
)

func newVersionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build information of schemactl",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info)
		},
	}
}
