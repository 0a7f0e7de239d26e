package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssconf"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the stylesheet",
	Long: `Merge the theme, run the configured plugins and write the stylesheet.
Nothing is written if any step fails.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)
}

// addBuildFlags registers the flags shared by build and watch
func addBuildFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", "", `Stylesheet path, or "-" for stdout (default "css/app.gen.css")`)
	f.String("manifest", "", "Write a JSON manifest of theme, variants and icons")
	f.StringSlice("content", nil, "Content globs the stylesheet depends on")
	f.String("base-css", "", "Stylesheet of custom properties seeding the base theme")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}
	config.Logger = newLogger()
	config.Stdout = cmd.OutOrStdout()

	result, err := cssconf.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	// The stylesheet itself is on stdout
	if config.Output == cssconf.StdoutOutput || getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	reporter := newReporter(cmd)
	reporter.PrintBuild(result)
	if getBoolWithFallback("verbose", "verbose", false) {
		reporter.PrintStatistics(result)
	}
	return nil
}
