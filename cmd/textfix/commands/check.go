package commands

import (
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textfix/cmd/textfix/opts"
	"github.com/walteh/textfix/pkg/fixer"
	"github.com/walteh/textfix/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ErrChangesPending is returned by check when at least one file would change
var ErrChangesPending = errors.Base("files need fixing")

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report files that would be fixed without writing them",
		Long: `Check runs the same scan as the default command in dry-run mode.
It will:
1. Walk the root directory with the same filters
2. Print every file that would change and how
3. Exit non-zero if any file would change or could not be read`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := opts.LoadConfig(ctx)
			if err != nil {
				return err
			}
			cfg.DryRun = true

			reporter := log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx), true)
			f, err := fixer.NewFromConfig(cfg, reporter)
			if err != nil {
				return errors.Errorf("creating fixer: %w", err)
			}

			summary, err := f.Run(ctx, cfg.Root)
			if err != nil {
				return errors.Errorf("checking files: %w", err)
			}

			if len(summary.Fixed) > 0 || len(summary.Failed) > 0 {
				return errors.Errorf("%w: %d to fix, %d failed", ErrChangesPending, len(summary.Fixed), len(summary.Failed))
			}

			pterm.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprint("No hardcoded text left to fix"))
			return nil
		},
	}

	return cmd
}
