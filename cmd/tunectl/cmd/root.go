// cmd/tunectl/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tamzrod/drivecfg/internal/config"
	"github.com/tamzrod/drivecfg/internal/driverconfig"
	"github.com/tamzrod/drivecfg/internal/logging"
)

// session is what every subcommand works on.
// dc is nil for commands annotated with skipTuningFile.
type session struct {
	cfg *config.Config
	dc  *driverconfig.DriverConfig
}

type sessionKey struct{}

// skipTuningFile marks commands that never read the tuning file.
const skipTuningFile = "tunectl/skip-tuning-file"

func sessionFrom(cmd *cobra.Command) *session {
	s, _ := cmd.Context().Value(sessionKey{}).(*session)
	return s
}

// NewRootCmd builds the tunectl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tunectl",
		Short: "Inspect and edit drive controller tuning parameters",
		Long: `tunectl reads and writes the drive controller's tuning file,
renders the binary parameter frame, and syncs parameters with a companion
controller over Modbus TCP.`,
		SilenceUsage:      true,
		PersistentPreRunE: openSession,
	}

	root.PersistentFlags().StringP("config", "c", "", "YAML config file (optional)")
	root.PersistentFlags().StringP("file", "f", "", "tuning file (overrides tuning.path)")

	root.AddCommand(
		newShowCmd(),
		newGetCmd(),
		newSetCmd(),
		newNudgeCmd(),
		newResetCmd(),
		newFrameCmd(),
		newDecodeCmd(),
		newExportCmd(),
		newPushCmd(),
		newPullCmd(),
	)
	return root
}

func openSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Configure("tunectl", logging.ProfileRuntime, cfg.Log.Level)

	if _, skip := cmd.Annotations[skipTuningFile]; skip {
		setSession(cmd, &session{cfg: cfg})
		return nil
	}

	dc := driverconfig.NewAt(cfg.Tuning.Path)
	res, err := dc.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", dc.Path()).Msg("tuning file not found, using defaults")
	case err != nil:
		return err
	default:
		log.Debug().
			Str("path", dc.Path()).
			Int("applied", len(res.Applied)).
			Int("unknown", len(res.Unknown)).
			Msg("loaded driver configuration")
		if res.StoppedAt > 0 {
			log.Warn().Str("path", dc.Path()).Int("line", res.StoppedAt).Msg("tuning file truncated at malformed line")
		}
	}

	setSession(cmd, &session{cfg: cfg, dc: dc})
	return nil
}

func setSession(cmd *cobra.Command, s *session) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, sessionKey{}, s))
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	file, _ := cmd.Flags().GetString("file")

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		if err := config.Validate(loaded); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		config.Normalize(loaded)
		cfg = loaded
	}
	if file != "" {
		cfg.Tuning.Path = file
	}
	return cfg, nil
}
