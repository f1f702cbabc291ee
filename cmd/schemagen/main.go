// cmd/schemagen/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tamzrod/drivecfg/internal/logging"
	"github.com/tamzrod/drivecfg/internal/schema"
)

func main() {
	logging.Configure("schemagen", logging.ProfileRuntime, "")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		in      string
		out     string
		pkg     string
		varName string
	)

	cmd := &cobra.Command{
		Use:   "schemagen",
		Short: "Generate a parameter table from a schema source file",
		Long: `schemagen reads "<name words...> <default>" lines and writes a Go
table declaration with one slot index constant per parameter.

Example:
  schemagen --in drive.conf --out drive_gen.go --package schema --var Drive`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()

			items, err := schema.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}

			src, err := generate(filepath.Base(in), pkg, varName, items)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return err
			}
			log.Info().Str("in", in).Str("out", out).Int("items", len(items)).Msg("table generated")
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "schema source file")
	cmd.Flags().StringVar(&out, "out", "-", "output Go file (- for stdout)")
	cmd.Flags().StringVar(&pkg, "package", "schema", "package of the generated file")
	cmd.Flags().StringVar(&varName, "var", "Table", "name of the generated table variable")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
