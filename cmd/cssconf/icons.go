package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssconf"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List the icon utilities a build would generate",
	Long: `Scan the icon sources without writing anything and print each
utility class with its size and source file.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runIcons,
}

func runIcons(cmd *cobra.Command, _ []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}
	config.Logger = newLogger()

	rendered, err := cssconf.Render(config)
	if err != nil {
		return err
	}

	reporter := newReporter(cmd)
	reporter.PrintIcons(rendered.Icons)
	reporter.PrintWarnings(rendered.Warnings)
	return nil
}
