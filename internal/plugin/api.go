package plugin

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yacobolo/cssconf/internal/css"
	"github.com/yacobolo/cssconf/internal/theme"
	"github.com/yacobolo/cssconf/internal/variant"
)

// Icon describes an icon utility contributed by a plugin
type Icon struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Path  string `json:"path"`
	Size  string `json:"size"`
}

// API is the surface plugins register against
type API struct {
	theme    theme.Theme
	variants *variant.Registry
	sheet    *css.Stylesheet
	logger   *log.Logger

	icons    []Icon
	warnings []string
}

// NewAPI creates an API over a merged theme, a variant table and the
// stylesheet being built. A nil logger discards output.
func NewAPI(t theme.Theme, variants *variant.Registry, sheet *css.Stylesheet, logger *log.Logger) *API {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &API{
		theme:    t,
		variants: variants,
		sheet:    sheet,
		logger:   logger,
	}
}

// Theme resolves a "category.key" token path
func (a *API) Theme(path string) (string, bool) {
	return a.theme.Lookup(path)
}

// ThemeOr resolves a token path, falling back to def
func (a *API) ThemeOr(path, def string) string {
	if v, ok := a.theme.Lookup(path); ok {
		return v
	}
	return def
}

// AddVariant registers a conditional variant
func (a *API) AddVariant(name string, selectors ...string) error {
	return a.variants.Add(name, selectors...)
}

// AddBase appends rules to the base layer
func (a *API) AddBase(rules ...css.Rule) {
	_ = a.sheet.Add(css.LayerBase, rules...)
}

// AddComponents appends rules to the components layer
func (a *API) AddComponents(rules ...css.Rule) {
	_ = a.sheet.Add(css.LayerComponents, rules...)
}

// AddUtilities appends rules to the utilities layer
func (a *API) AddUtilities(rules ...css.Rule) {
	_ = a.sheet.Add(css.LayerUtilities, rules...)
}

// AddIcons records icon utilities for the build manifest
func (a *API) AddIcons(icons ...Icon) {
	a.icons = append(a.icons, icons...)
}

// Icons returns the recorded icons
func (a *API) Icons() []Icon {
	return a.icons
}

// Warn logs a warning and keeps it for the build result
func (a *API) Warn(msg string, keyvals ...any) {
	a.logger.Warn(msg, keyvals...)
	a.warnings = append(a.warnings, formatWarning(msg, keyvals))
}

// Warnings returns the warnings raised so far
func (a *API) Warnings() []string {
	return a.warnings
}

// Logger returns the build logger
func (a *API) Logger() *log.Logger {
	return a.logger
}

func formatWarning(msg string, keyvals []any) string {
	for i := 0; i+1 < len(keyvals); i += 2 {
		msg += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	return msg
}
