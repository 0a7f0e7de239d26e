package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssconf.yaml config file",
	Long: `Create a .cssconf.yaml configuration file in the current directory with
the brand theme and the standard plugin list.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = defaultConfigPath
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# cssconf configuration
# Paths are relative to the assets directory.

verbose: false
color: auto

content:
  - "./js/**/*.js"
  - "../lib/carbon_cop_check_app_web.ex"
  - "../lib/carbon_cop_check_app_web/**/*.*ex"

output: css/app.gen.css
# manifest: css/app.gen.json
# base-css: css/tokens.css

theme:
  extend:
    colors:
      cc-orange:
        DEFAULT: "#E8692C"
        light: "#F4A574"
        dark: "#C94E14"
      cc-blue:
        DEFAULT: "#2B7CBF"
        light: "#5BA3D9"
        dark: "#1A5A8F"
      cc-green:
        DEFAULT: "#2D7D4E"
        light: "#4CA66D"
        dark: "#1E5635"
      cc-gold:
        DEFAULT: "#D4A84B"
        light: "#E8C97A"
        dark: "#B08930"
      cc-cream:
        DEFAULT: "#FDF6E3"
        dark: "#F5E6C8"
      cc-brown:
        DEFAULT: "#3D2914"
        light: "#5C3D1E"
      brand: "#E8692C"
    fontFamily:
      script: ["Lobster", "cursive"]
      display: ["Bebas Neue", "sans-serif"]
      body: ["Source Sans 3", "sans-serif"]
    boxShadow:
      tattoo: "3px 3px 0 rgba(61, 41, 20, 0.8)"
      tattoo-sm: "2px 2px 0 rgba(61, 41, 20, 0.8)"
      tattoo-lg: "4px 4px 0 rgba(61, 41, 20, 0.8)"
    borderWidth:
      "3": "3px"

# Evaluated in order. Entries are names or {name, options}.
plugins:
  - forms
  - phx-click-loading
  - phx-submit-loading
  - phx-change-loading
  - heroicons

icons:
  root: ../deps/heroicons/optimized
  prefix: hero

forms:
  strategy: base           # base | class

watch:
  debounce: 200ms
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
