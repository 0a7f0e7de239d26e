package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssconf"
	"github.com/yacobolo/cssconf/internal/plugin"
	"github.com/yacobolo/cssconf/internal/report"
	"github.com/yacobolo/cssconf/internal/theme"
	"github.com/yacobolo/cssconf/internal/watch"
)

const defaultConfigPath = ".cssconf.yaml"

// Defaults match an assets directory sitting next to lib/ and deps/
var (
	defaultContent = []string{
		"./js/**/*.js",
		"../lib/carbon_cop_check_app_web.ex",
		"../lib/carbon_cop_check_app_web/**/*.*ex",
	}
	defaultOutput = "css/app.gen.css"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSCONF_* prefix)
	if err := k.Load(env.Provider("CSSCONF_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key:
//
//	CSSCONF_OUTPUT          -> output
//	CSSCONF_ICONS_ROOT      -> icons.root
//	CSSCONF_BASE__CSS       -> base-css
//	CSSCONF_WATCH_DEBOUNCE  -> watch.debounce
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CSSCONF_"))
	key = strings.ReplaceAll(key, "__", "-")
	return strings.ReplaceAll(key, "_", ".")
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() (cssconf.Config, error) {
	config := cssconf.Config{
		Content:  getStringsWithFallback("content", defaultContent),
		Output:   getStringWithFallback("output", "output", defaultOutput),
		Manifest: getStringWithFallback("manifest", "manifest", ""),
		BaseCSS:  getStringWithFallback("base-css", "base-css", ""),
	}

	if raw := k.Get("theme.extend"); raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return config, fmt.Errorf("theme.extend: expected a mapping, got %T", raw)
		}
		extend, err := theme.FromMap(m)
		if err != nil {
			return config, fmt.Errorf("theme.extend: %w", err)
		}
		config.Extend = extend
	}

	specs, err := pluginSpecs()
	if err != nil {
		return config, err
	}
	config.Plugins = specs

	return config, nil
}

// pluginSpecs decodes the plugins list. Entries are names or
// {name, options} mappings; the icons.* and forms.* sections fill in
// options the entries leave unset.
func pluginSpecs() ([]plugin.Spec, error) {
	var specs []plugin.Spec

	switch raw := k.Get("plugins").(type) {
	case nil:
		specs = plugin.DefaultSpecs()
	case string:
		// CSSCONF_PLUGINS="forms,heroicons"
		for _, name := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
			specs = append(specs, plugin.Spec{Name: name})
		}
	case []any:
		for i, entry := range raw {
			spec, err := decodePluginSpec(entry)
			if err != nil {
				return nil, fmt.Errorf("plugins[%d]: %w", i, err)
			}
			specs = append(specs, spec)
		}
	default:
		return nil, fmt.Errorf("plugins: expected a list, got %T", raw)
	}

	for i := range specs {
		switch specs[i].Name {
		case "heroicons":
			specs[i].Options = withDefault(specs[i].Options, "root", k.String("icons.root"))
			specs[i].Options = withDefault(specs[i].Options, "prefix", k.String("icons.prefix"))
		case "forms":
			specs[i].Options = withDefault(specs[i].Options, "strategy", k.String("forms.strategy"))
		}
	}
	return specs, nil
}

func decodePluginSpec(entry any) (plugin.Spec, error) {
	switch v := entry.(type) {
	case string:
		return plugin.Spec{Name: v}, nil
	case map[string]any:
		name, _ := v["name"].(string)
		if name == "" {
			return plugin.Spec{}, fmt.Errorf("missing name")
		}
		spec := plugin.Spec{Name: name}
		switch opts := v["options"].(type) {
		case nil:
		case map[string]any:
			spec.Options = plugin.Options(opts)
		default:
			return plugin.Spec{}, fmt.Errorf("plugin %s: options must be a mapping, got %T", name, opts)
		}
		return spec, nil
	default:
		return plugin.Spec{}, fmt.Errorf("expected a name or mapping, got %T", entry)
	}
}

// withDefault sets key when val is non-empty and the options leave it unset
func withDefault(opts plugin.Options, key, val string) plugin.Options {
	if val == "" {
		return opts
	}
	if _, ok := opts[key]; ok {
		return opts
	}
	if opts == nil {
		opts = plugin.Options{}
	}
	opts[key] = val
	return opts
}

// newLogger returns the stderr logger honoring --verbose and --quiet
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "cssconf"})
	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		logger.SetLevel(log.ErrorLevel)
	case getBoolWithFallback("verbose", "verbose", false):
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newReporter returns the stdout reporter honoring --color
func newReporter(cmd *cobra.Command) *report.Reporter {
	return report.NewReporter(cmd.OutOrStdout(), getStringWithFallback("color", "color", report.ColorAuto))
}

// watchDebounce returns the configured debounce, or the watcher default
func watchDebounce() time.Duration {
	if d := k.Duration("debounce"); d > 0 {
		return d
	}
	if d := k.Duration("watch.debounce"); d > 0 {
		return d
	}
	return watch.DefaultDebounce
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getStringsWithFallback returns a list key, accepting a comma-separated
// string from the environment, or the default.
func getStringsWithFallback(key string, defaultVal []string) []string {
	if v, ok := k.Get(key).(string); ok {
		if v == "" {
			return defaultVal
		}
		return strings.Split(v, ",")
	}
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}
