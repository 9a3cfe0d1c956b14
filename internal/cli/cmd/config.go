package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/upgradewatch/internal/cli/styles"
	"github.com/bnema/upgradewatch/internal/infrastructure/config"
)

var configSchemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration or print its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file, environment
variables (UPGRADEWATCH_*) and command-line flags have been merged.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration",
	Long: `Print the JSON schema of config.toml, for editor completion and validation.

Use --write to store it as config.schema.json next to the config file.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json to the config directory")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile := ""
	if mgr := config.GetManager(); mgr != nil {
		configFile = mgr.GetConfigFile()
	}
	if configFile == "" {
		path, err := config.GetConfigFile()
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
		configFile = path
	}

	body, err := config.EncodeTOML(app.Config)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if _, statErr := os.Stat(configFile); errors.Is(statErr, os.ErrNotExist) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
	}
	fmt.Println(renderer.RenderConfigInfo(configFile, strings.TrimRight(body, "\n")))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	if configSchemaWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
		fmt.Println(renderer.RenderSchemaWritten(path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
