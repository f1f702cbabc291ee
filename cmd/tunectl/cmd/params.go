// cmd/tunectl/cmd/params.go
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/schema"
	"github.com/tamzrod/drivecfg/internal/tuner"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List every parameter with its current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRecord(cmd.OutOrStdout(), sessionFrom(cmd).dc.Record)
		},
	}
}

func newGetCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print one parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := sessionFrom(cmd).dc.Get(args[0])
			if !ok {
				return unknownParam(args[0])
			}
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), schema.FormatScaled(v))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the scaled integer")
	return cmd
}

func newSetCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set one parameter and save the tuning file",
		Long: `Set one parameter and save the tuning file.

The value is a decimal (1.25) unless --raw is given, in which case it is
the scaled integer (125).

Example:
  tunectl set speed_limit 4.5
  tunectl set servo_min --raw -- -120`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFrom(cmd)

			v, err := parseValue(args[1], raw)
			if err != nil {
				return err
			}
			if !s.dc.Set(args[0], v) {
				return unknownParam(args[0])
			}
			if err := s.dc.Save(); err != nil {
				return err
			}
			log.Info().Str("name", args[0]).Int16("value", v).Str("path", s.dc.Path()).Msg("parameter saved")
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "value is the scaled integer")
	return cmd
}

func newNudgeCmd() *cobra.Command {
	var step string

	cmd := &cobra.Command{
		Use:   "nudge <name> <up|down>",
		Short: "Step one parameter like the on-vehicle d-pad and save",
		Long: `Step one parameter by 0.01, 0.10 (--step x) or 1.00 (--step y)
and save the tuning file. Values wrap at the 16-bit limits.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFrom(cmd)

			idx, ok := s.dc.Table().Index(args[0])
			if !ok {
				return unknownParam(args[0])
			}
			mod, err := parseModifier(step)
			if err != nil {
				return err
			}

			c := tuner.NewCursor(s.dc.Record)
			for c.Item() != idx {
				c.Down()
			}
			switch args[1] {
			case "up":
				c.Right(mod)
			case "down":
				c.Left(mod)
			default:
				return fmt.Errorf("direction must be up or down, got %q", args[1])
			}

			if err := s.dc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Line())
			return nil
		},
	}
	cmd.Flags().StringVar(&step, "step", "fine", "step size: fine, x or y")
	return cmd
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore schema defaults and save the tuning file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFrom(cmd)
			s.dc.Reset()
			if err := s.dc.Save(); err != nil {
				return err
			}
			log.Info().Str("path", s.dc.Path()).Msg("defaults restored")
			return nil
		},
	}
}

// ---- helpers ----

// printRecord writes one aligned row per parameter.
func printRecord(w io.Writer, rec *record.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVALUE\tRAW\tDEFAULT")
	rec.Each(func(_ int, it schema.Item, v int16) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", it.Field, schema.FormatScaled(v), v, schema.FormatScaled(it.Default))
	})
	return tw.Flush()
}

func parseValue(s string, raw bool) (int16, error) {
	if !raw {
		return schema.Scale(s)
	}
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("raw value %q: %w", s, err)
	}
	return int16(v), nil
}

func parseModifier(step string) (tuner.Modifier, error) {
	switch step {
	case "fine", "":
		return tuner.ModNone, nil
	case "x":
		return tuner.ModX, nil
	case "y":
		return tuner.ModY, nil
	default:
		return 0, fmt.Errorf("step must be fine, x or y, got %q", step)
	}
}

func unknownParam(name string) error {
	return fmt.Errorf("unknown parameter %q", name)
}
