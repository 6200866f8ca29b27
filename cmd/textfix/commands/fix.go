package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textfix/cmd/textfix/opts"
	"github.com/walteh/textfix/pkg/fixer"
	"github.com/walteh/textfix/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// FixRunE rewrites every eligible file under the configured root. Per-file
// failures are reported but never fail the command.
func FixRunE(opts *opts.RootOpts, dryRun *bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := opts.LoadConfig(ctx)
		if err != nil {
			return err
		}
		if dryRun != nil && *dryRun {
			cfg.DryRun = true
		}

		zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Bool("dry_run", cfg.DryRun).Msg("starting fix")

		reporter := log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx), cfg.DryRun)
		f, err := fixer.NewFromConfig(cfg, reporter)
		if err != nil {
			return errors.Errorf("creating fixer: %w", err)
		}

		if _, err := f.Run(ctx, cfg.Root); err != nil {
			return errors.Errorf("fixing files: %w", err)
		}

		return nil
	}
}
