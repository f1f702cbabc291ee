// cmd/tunectl/cmd/export.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tamzrod/drivecfg/internal/export"
)

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the parameter set as YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return export.Write(cmd.OutOrStdout(), sessionFrom(cmd).dc.Record, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")
	return cmd
}
