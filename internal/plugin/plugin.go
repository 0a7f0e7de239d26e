// Package plugin runs the configured stylesheet plugins against a shared API.
package plugin

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPlugin is returned when a configured plugin name has no factory
var ErrUnknownPlugin = errors.New("unknown plugin")

// Plugin contributes variants or rules to a build
type Plugin interface {
	Name() string
	Register(api *API) error
}

// Watcher is implemented by plugins that read files outside the content
// globs, so watch mode can follow them.
type Watcher interface {
	WatchPaths() []string
}

// Spec is a configured plugin: its name and options
type Spec struct {
	Name    string
	Options Options
}

// Factory builds a plugin from its options
type Factory func(opts Options) (Plugin, error)

var factories = map[string]Factory{
	"forms":              newForms,
	"heroicons":          newHeroicons,
	"phx-click-loading":  loadingVariantFactory("phx-click-loading"),
	"phx-submit-loading": loadingVariantFactory("phx-submit-loading"),
	"phx-change-loading": loadingVariantFactory("phx-change-loading"),
}

// DefaultSpecs is the plugin list used when none is configured
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: "forms"},
		{Name: "phx-click-loading"},
		{Name: "phx-submit-loading"},
		{Name: "phx-change-loading"},
		{Name: "heroicons"},
	}
}

// Names returns the registered plugin names in sorted order
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a plugin from its spec
func New(spec Spec) (Plugin, error) {
	factory, ok := factories[spec.Name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownPlugin, spec.Name, Names())
	}
	p, err := factory(spec.Options)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", spec.Name, err)
	}
	return p, nil
}

// Load builds every plugin in order
func Load(specs []Spec) ([]Plugin, error) {
	plugins := make([]Plugin, 0, len(specs))
	for _, spec := range specs {
		p, err := New(spec)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}

// Run registers every plugin against api in order. The first failure aborts.
func Run(api *API, plugins []Plugin) error {
	for _, p := range plugins {
		api.logger.Debug("Registering plugin", "plugin", p.Name())
		if err := p.Register(api); err != nil {
			return fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
	}
	return nil
}

// Options holds plugin settings decoded from config
type Options map[string]any

// String returns a string option or def when unset
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok && v != nil {
		if s := fmt.Sprint(v); s != "" {
			return s
		}
	}
	return def
}
