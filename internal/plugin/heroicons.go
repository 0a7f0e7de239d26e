package plugin

import (
	"fmt"

	"github.com/yacobolo/cssconf/internal/icons"
)

// DefaultIconRoot is where the icon library lives relative to the assets dir
const DefaultIconRoot = "../deps/heroicons/optimized"

// Spacing tokens per icon size
const (
	sizeDefaultToken = "spacing.6"
	sizeMiniToken    = "spacing.5"
	sizeMicroToken   = "spacing.4"
)

// heroicons inlines the icon library as mask utilities: ".hero-<name>"
type heroicons struct {
	root    string
	prefix  string
	sources []icons.Source
}

func newHeroicons(opts Options) (Plugin, error) {
	return &heroicons{
		root:    opts.String("root", DefaultIconRoot),
		prefix:  opts.String("prefix", icons.DefaultPrefix),
		sources: icons.DefaultSources,
	}, nil
}

func (p *heroicons) Name() string { return "heroicons" }

func (p *heroicons) WatchPaths() []string {
	return icons.Dirs(p.root, p.sources)
}

func (p *heroicons) Register(api *API) error {
	sizes, err := p.sizes(api)
	if err != nil {
		return err
	}

	set, collisions, err := icons.Scan(p.root, p.sources)
	if err != nil {
		return err
	}
	for _, c := range collisions {
		api.Warn("Icon name collision, later source wins", "name", c.Name, "replaced", c.Replaced, "by", c.By)
	}

	rules, err := icons.Rules(set, sizes, p.prefix)
	if err != nil {
		return err
	}
	api.AddUtilities(rules...)

	entries := set.Entries()
	recorded := make([]Icon, len(entries))
	for i, e := range entries {
		recorded[i] = Icon{
			Name:  e.Name,
			Class: p.prefix + "-" + e.Name,
			Path:  e.FullPath,
			Size:  sizes.For(e.Name),
		}
	}
	api.AddIcons(recorded...)

	api.Logger().Debug("Inlined icons", "root", p.root, "icons", len(rules))
	return nil
}

// sizes resolves the three icon sizes from the spacing scale
func (p *heroicons) sizes(api *API) (icons.Sizes, error) {
	var sizes icons.Sizes
	for _, s := range []struct {
		token string
		dst   *string
	}{
		{sizeDefaultToken, &sizes.Default},
		{sizeMiniToken, &sizes.Mini},
		{sizeMicroToken, &sizes.Micro},
	} {
		v, ok := api.Theme(s.token)
		if !ok {
			return icons.Sizes{}, fmt.Errorf("theme token %s is not defined", s.token)
		}
		*s.dst = v
	}
	return sizes, nil
}

