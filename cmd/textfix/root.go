package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textfix/cmd/textfix/commands"
	"github.com/walteh/textfix/cmd/textfix/opts"
)

// newRootCmd builds the command tree. Running it with no subcommand fixes files.
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "textfix",
		Short: "Replace hardcoded Chinese UI text with English across a source tree",
		Long: `textfix walks a source directory and rewrites hardcoded UI strings
using an ordered replacement table.

With no flags and no config file it scans ./src, skips node_modules and i18n
directories and LanguageSelector.jsx, and rewrites .jsx/.js/.tsx/.ts files
with the built-in table.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := setupLogging(rootOpts.Debug)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
		RunE: commands.FixRunE(rootOpts, &dryRun),
	}

	addRootFlags(cmd, rootOpts)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")

	cmd.AddCommand(
		commands.NewCheckCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: discover .textfix.{yaml,yml,json,hcl})")
	cmd.PersistentFlags().StringVarP(&o.Root, "root", "r", "", "directory to scan (default: src)")
	cmd.PersistentFlags().StringVarP(&o.Table, "table", "t", "", "replacement table file (.yaml or .json)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
