// cmd/tunectl/cmd/frame.go
package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/schema"
	"github.com/tamzrod/drivecfg/internal/wire"
)

func newFrameCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Render the binary parameter frame",
		Long: `Render the binary parameter frame. Without --out a hex dump is
printed; with --out the raw frame bytes are written to the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dc := sessionFrom(cmd).dc

			buf := make([]byte, dc.SerializedSize())
			n, err := dc.Serialize(buf)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), hex.Dump(buf[:n]))
				return nil
			}
			if err := os.WriteFile(out, buf[:n], 0o644); err != nil {
				return err
			}
			log.Info().Str("out", out).Int("bytes", n).Msg("frame written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the raw frame to this file")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <frame-file>",
		Short: "Decode a binary frame file against the drive schema",
		Long: `Decode a binary frame file. Slots are mapped by position onto the
drive schema; names in the output come from this build's schema.`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipTuningFile: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			rec := record.New(schema.Drive)
			if _, err := wire.Decode(data, rec); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return printRecord(cmd.OutOrStdout(), rec)
		},
	}
}
