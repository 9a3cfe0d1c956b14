// Package cmd provides Cobra CLI commands for upgradewatch.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/upgradewatch/internal/cli"
	"github.com/bnema/upgradewatch/internal/domain/build"
	"github.com/bnema/upgradewatch/internal/infrastructure/config"
	"github.com/bnema/upgradewatch/internal/infrastructure/probe"
)

// productVersionFlag is what the exec probe passes to the installed copy of
// this binary; it must answer without touching config or the journal.
var productVersionFlag = strings.TrimPrefix(probe.DefaultVersionFlag, "--")

var (
	app            *cli.App
	buildInfo      build.Info
	configPath     string
	productVersion bool
	rootCmd    = &cobra.Command{
		Use:   "upgradewatch",
		Short: "Notice when a newer build is installed behind a running process",
		Long: `upgradewatch periodically compares the version of the running program with
the copy installed on disk. Once a newer copy shows up it announces the
upgrade and then raises a restart recommendation through escalating stages
(low, elevated, high, severe) the longer the restart is postponed.

Use 'upgradewatch watch' to run the detector in the foreground, or
'upgradewatch check' for a single probe.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if productVersion {
				fmt.Fprintln(cmd.OutOrStdout(), buildInfo.Version)
				return nil
			}
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.HasParent() {
				return nil
			}
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var opts []config.ManagerOption
			if configPath != "" {
				opts = append(opts, config.WithConfigFile(configPath))
			}
			if cmd.Name() != "watch" {
				opts = append(opts, config.WithoutDefaultFile())
			}
			if err := config.Init(cmd.Root().PersistentFlags(), opts...); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var err error
			app, err = cli.NewApp(config.Get(), buildInfo)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/upgradewatch/config.toml)")
	flags.String(config.FlagCheckInterval, "",
		"detection period in seconds; also switches escalation to accelerated timing")
	flags.Bool(config.FlagDisableBackgroundNetworking, false, "keep the detector inert")

	rootCmd.Flags().BoolVar(&productVersion, productVersionFlag, false, "print the version and exit")
	_ = rootCmd.Flags().MarkHidden(productVersionFlag)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
