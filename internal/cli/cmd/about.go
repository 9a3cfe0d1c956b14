package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/upgradewatch/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, release channel, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	info := app.BuildInfo
	info.Channel = app.Channel().String()

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Println(renderer.Render(info))
	return nil
}
