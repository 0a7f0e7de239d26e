package plugin

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssconf/internal/css"
	"github.com/yacobolo/cssconf/internal/icons"
	"github.com/yacobolo/cssconf/internal/theme"
	"github.com/yacobolo/cssconf/internal/variant"
)

func newTestAPI(t *testing.T, th theme.Theme) (*API, *variant.Registry, *css.Stylesheet) {
	t.Helper()
	if th == nil {
		th = theme.Base()
	}
	variants := variant.NewRegistry()
	sheet := css.NewStylesheet("")
	return NewAPI(th, variants, sheet, nil), variants, sheet
}

func iconRoot(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range icons.Dirs(root, icons.DefaultSources) {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, filepath.FromSlash(path)), []byte(content), 0644))
	}
	return root
}

func TestNewUnknownPlugin(t *testing.T) {
	_, err := New(Spec{Name: "typography"})
	require.ErrorIs(t, err, ErrUnknownPlugin)
	assert.Contains(t, err.Error(), `"typography"`)
}

func TestLoadDefaultSpecs(t *testing.T) {
	plugins, err := Load(DefaultSpecs())
	require.NoError(t, err)

	names := make([]string, len(plugins))
	for i, p := range plugins {
		names[i] = p.Name()
	}
	assert.Equal(t, []string{
		"forms",
		"phx-click-loading",
		"phx-submit-loading",
		"phx-change-loading",
		"heroicons",
	}, names)
}

func TestLoadingVariants(t *testing.T) {
	api, variants, sheet := newTestAPI(t, nil)

	plugins, err := Load([]Spec{
		{Name: "phx-click-loading"},
		{Name: "phx-submit-loading"},
		{Name: "phx-change-loading"},
	})
	require.NoError(t, err)
	require.NoError(t, Run(api, plugins))

	assert.Equal(t, 0, sheet.Len(), "variants contribute no rules")
	require.Equal(t, 3, variants.Len())

	for _, name := range []string{"phx-click-loading", "phx-submit-loading", "phx-change-loading"} {
		v, ok := variants.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, []string{"." + name + "&", "." + name + " &"}, v.Selectors)
	}
}

func TestFormsStrategies(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		api, _, sheet := newTestAPI(t, nil)
		p, err := New(Spec{Name: "forms"})
		require.NoError(t, err)
		require.NoError(t, p.Register(api))

		base := sheet.Rules(css.LayerBase)
		require.NotEmpty(t, base)
		assert.Empty(t, sheet.Rules(css.LayerComponents))
		assert.Contains(t, base[0].Selectors, "[type='text']")
		assert.Contains(t, base[0].Selectors, "textarea")

		v, ok := base[0].Get("border-color")
		require.True(t, ok)
		assert.Equal(t, "#6b7280", v)
	})

	t.Run("class", func(t *testing.T) {
		api, _, sheet := newTestAPI(t, nil)
		p, err := New(Spec{Name: "forms", Options: Options{"strategy": "class"}})
		require.NoError(t, err)
		require.NoError(t, p.Register(api))

		assert.Empty(t, sheet.Rules(css.LayerBase))
		components := sheet.Rules(css.LayerComponents)
		require.NotEmpty(t, components)
		assert.Equal(t, []string{".form-input", ".form-textarea", ".form-select", ".form-multiselect"}, components[0].Selectors)
		for _, r := range components {
			for _, sel := range r.Selectors {
				assert.NotContains(t, sel, "[type='file']")
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := New(Spec{Name: "forms", Options: Options{"strategy": "inline"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid strategy")
	})
}

func TestFormsUsesTheme(t *testing.T) {
	th := theme.Merge(theme.Base(), theme.Theme{"colors": {"blue-600": "#2B7CBF"}})
	api, _, sheet := newTestAPI(t, th)
	p, err := New(Spec{Name: "forms"})
	require.NoError(t, err)
	require.NoError(t, p.Register(api))

	focus := sheet.Rules(css.LayerBase)[1]
	v, ok := focus.Get("border-color")
	require.True(t, ok)
	assert.Equal(t, "#2B7CBF", v)
}

func TestHeroicons(t *testing.T) {
	root := iconRoot(t, map[string]string{
		"24/outline/check.svg": "<svg>\n<path/>\n</svg>",
		"24/solid/check.svg":   "<svg/>",
		"20/solid/check.svg":   "<svg/>",
		"16/solid/check.svg":   "<svg/>",
	})

	api, _, sheet := newTestAPI(t, nil)
	p, err := New(Spec{Name: "heroicons", Options: Options{"root": root}})
	require.NoError(t, err)
	require.NoError(t, p.Register(api))

	utilities := sheet.Rules(css.LayerUtilities)
	require.Len(t, utilities, 4)
	assert.Equal(t, ".hero-check", utilities[0].Selectors[0])

	recorded := api.Icons()
	require.Len(t, recorded, 4)
	sizes := map[string]string{}
	for _, ic := range recorded {
		sizes[ic.Name] = ic.Size
	}
	assert.Equal(t, map[string]string{
		"check":       "1.5rem",
		"check-solid": "1.5rem",
		"check-mini":  "1.25rem",
		"check-micro": "1rem",
	}, sizes)

	w, ok := p.(Watcher)
	require.True(t, ok)
	assert.Equal(t, icons.Dirs(root, icons.DefaultSources), w.WatchPaths())
}

func TestHeroiconsUsesSpacingScale(t *testing.T) {
	root := iconRoot(t, map[string]string{"20/solid/bolt.svg": "<svg/>"})
	th := theme.Merge(theme.Base(), theme.Theme{"spacing": {"5": "18px"}})

	api, _, sheet := newTestAPI(t, th)
	p, err := New(Spec{Name: "heroicons", Options: Options{"root": root}})
	require.NoError(t, err)
	require.NoError(t, p.Register(api))

	rules := sheet.Rules(css.LayerUtilities)
	require.Len(t, rules, 1)
	v, _ := rules[0].Get("width")
	assert.Equal(t, "18px", v)
}

func TestHeroiconsSizeFromName(t *testing.T) {
	root := iconRoot(t, map[string]string{"24/outline/arrow-mini.svg": "<svg/>"})

	api, _, sheet := newTestAPI(t, nil)
	p, err := New(Spec{Name: "heroicons", Options: Options{"root": root}})
	require.NoError(t, err)
	require.NoError(t, p.Register(api))

	recorded := api.Icons()
	require.Len(t, recorded, 1)
	assert.Equal(t, "arrow-mini", recorded[0].Name)
	assert.Equal(t, "1.25rem", recorded[0].Size)

	rules := sheet.Rules(css.LayerUtilities)
	require.Len(t, rules, 1)
	w, _ := rules[0].Get("width")
	h, _ := rules[0].Get("height")
	assert.Equal(t, "1.25rem", w)
	assert.Equal(t, "1.25rem", h)
}

func TestHeroiconsCollisionWarns(t *testing.T) {
	root := iconRoot(t, map[string]string{
		"24/outline/a-mini.svg": "<svg>outline</svg>",
		"20/solid/a.svg":        "<svg>mini</svg>",
	})

	api, _, sheet := newTestAPI(t, nil)
	p, err := New(Spec{Name: "heroicons", Options: Options{"root": root}})
	require.NoError(t, err)
	require.NoError(t, p.Register(api))

	require.Len(t, sheet.Rules(css.LayerUtilities), 1)
	require.Len(t, api.Warnings(), 1)
	assert.Contains(t, api.Warnings()[0], "name=a-mini")
}

func TestHeroiconsMissingSource(t *testing.T) {
	root := t.TempDir()
	api, _, sheet := newTestAPI(t, nil)
	p, err := New(Spec{Name: "heroicons", Options: Options{"root": root}})
	require.NoError(t, err)

	err = Run(api, []Plugin{p})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	var srcErr *icons.SourceError
	assert.True(t, errors.As(err, &srcErr))
	assert.Equal(t, 0, sheet.Len())
}

func TestHeroiconsMissingSpacingToken(t *testing.T) {
	root := iconRoot(t, nil)
	api, _, _ := newTestAPI(t, theme.Theme{"spacing": {"6": "1.5rem"}})
	p, err := New(Spec{Name: "heroicons", Options: Options{"root": root}})
	require.NoError(t, err)

	err = p.Register(api)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spacing.5")
}

func TestRunStopsAtFirstError(t *testing.T) {
	api, variants, _ := newTestAPI(t, nil)
	plugins := []Plugin{
		&loadingVariant{name: "phx-click-loading"},
		&loadingVariant{name: ""},
		&loadingVariant{name: "phx-change-loading"},
	}

	err := Run(api, plugins)
	require.ErrorIs(t, err, variant.ErrInvalidVariant)
	assert.Equal(t, 1, variants.Len())
}

func TestOptionsString(t *testing.T) {
	opts := Options{"root": "/icons", "empty": "", "nil": nil}
	assert.Equal(t, "/icons", opts.String("root", "x"))
	assert.Equal(t, "x", opts.String("empty", "x"))
	assert.Equal(t, "x", opts.String("nil", "x"))
	assert.Equal(t, "x", opts.String("missing", "x"))
}
