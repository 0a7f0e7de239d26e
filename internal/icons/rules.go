package icons

import (
	"fmt"
	"os"
	"strings"

	"github.com/yacobolo/cssconf/internal/css"
)

// DefaultPrefix is the utility class and custom property prefix
const DefaultPrefix = "hero"

// Sizes holds the rendered width/height per size class
type Sizes struct {
	Default string // outline and solid, spacing.6
	Mini    string // spacing.5
	Micro   string // spacing.4
}

// For returns the size for an icon name. Names ending in -mini or -micro
// take the smaller sizes whichever source they came from.
func (s Sizes) For(name string) string {
	switch {
	case strings.HasSuffix(name, SuffixMini):
		return s.Mini
	case strings.HasSuffix(name, SuffixMicro):
		return s.Micro
	default:
		return s.Default
	}
}

// Rules reads every icon in set and returns one utility rule per entry,
// in set order. The first unreadable file aborts generation with a
// *ReadError and no rules.
func Rules(set *Set, sizes Sizes, prefix string) ([]css.Rule, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	entries := set.Entries()
	rules := make([]css.Rule, 0, len(entries))
	for _, e := range entries {
		// #nosec G304 - paths come from listing the configured icon root
		content, err := os.ReadFile(e.FullPath)
		if err != nil {
			return nil, &ReadError{Name: e.Name, Path: e.FullPath, Err: err}
		}
		rules = append(rules, Rule(prefix, e, content, sizes.For(e.Name)))
	}
	return rules, nil
}

// Rule builds the mask utility for a single icon
func Rule(prefix string, e Entry, content []byte, size string) css.Rule {
	class := prefix + "-" + e.Name
	prop := "--" + css.EscapeIdent(class)
	ref := fmt.Sprintf("var(%s)", prop)

	return css.NewRule(css.ClassSelector(class),
		css.Decl(prop, DataURI(content)),
		css.Decl("-webkit-mask", ref),
		css.Decl("mask", ref),
		css.Decl("mask-repeat", "no-repeat"),
		css.Decl("background-color", "currentColor"),
		css.Decl("vertical-align", "middle"),
		css.Decl("display", "inline-block"),
		css.Decl("width", size),
		css.Decl("height", size),
	)
}

// DataURI embeds SVG source as a url() value with every CR and LF removed
func DataURI(content []byte) string {
	svg := strings.NewReplacer("\r", "", "\n", "").Replace(string(content))
	return "url('data:image/svg+xml;utf8," + svg + "')"
}
