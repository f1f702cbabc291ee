// cmd/tunectl/cmd/companion.go
package cmd

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tamzrod/drivecfg/internal/companion"
)

var errNoCompanion = errors.New("companion controller is not configured (set companion.endpoint)")

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Write every parameter to the companion controller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFrom(cmd)
			if s.cfg.Companion == nil {
				return errNoCompanion
			}

			syncer, closeFn, err := companion.Build(*s.cfg.Companion)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := syncer.Push(s.dc.Record); err != nil {
				return err
			}
			log.Info().Str("endpoint", s.cfg.Companion.Endpoint).Msg("parameters pushed")
			return nil
		},
	}
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Read every parameter from the companion controller and save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFrom(cmd)
			if s.cfg.Companion == nil {
				return errNoCompanion
			}

			syncer, closeFn, err := companion.Build(*s.cfg.Companion)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := syncer.Pull(s.dc.Record); err != nil {
				return err
			}
			if err := s.dc.Save(); err != nil {
				return err
			}
			log.Info().Str("endpoint", s.cfg.Companion.Endpoint).Str("path", s.dc.Path()).Msg("parameters pulled")
			return nil
		},
	}
}
