// Package theme models the design-token table and its extension merge.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/cssconf/internal/css"
)

// DefaultKey names the unsuffixed member of a token group ("cc-orange.DEFAULT" -> "cc-orange")
const DefaultKey = "DEFAULT"

// Tokens maps token name to its literal value
type Tokens map[string]string

// Theme maps category ("colors", "fontFamily", ...) to its tokens
type Theme map[string]Tokens

// Category prefixes used for custom property names
var categoryPrefixes = map[string]string{
	"colors":      "color",
	"fontFamily":  "font",
	"boxShadow":   "shadow",
	"borderWidth": "border-width",
	"spacing":     "spacing",
	"custom":      "",
}

// Lookup resolves a "category.key" path. Only the first dot separates the
// category, so "spacing.0.5" resolves key "0.5".
func (t Theme) Lookup(path string) (string, bool) {
	category, key, ok := strings.Cut(path, ".")
	if !ok {
		return "", false
	}
	tokens, ok := t[category]
	if !ok {
		return "", false
	}
	v, ok := tokens[key]
	return v, ok
}

// Clone returns a deep copy
func (t Theme) Clone() Theme {
	out := make(Theme, len(t))
	for category, tokens := range t {
		cp := make(Tokens, len(tokens))
		for k, v := range tokens {
			cp[k] = v
		}
		out[category] = cp
	}
	return out
}

// Len returns the total number of tokens across categories
func (t Theme) Len() int {
	n := 0
	for _, tokens := range t {
		n += len(tokens)
	}
	return n
}

// Categories returns category names in sorted order
func (t Theme) Categories() []string {
	return sortedKeys(t)
}

// Keys returns token names in sorted order
func (tk Tokens) Keys() []string {
	return sortedKeys(tk)
}

// Merge applies ext on top of base. Every category/key in ext is inserted or
// overrides the base entry; categories absent from ext are left untouched.
// Values are not validated. Neither argument is modified.
func Merge(base, ext Theme) Theme {
	out := base.Clone()
	for category, tokens := range ext {
		dst, ok := out[category]
		if !ok {
			dst = make(Tokens, len(tokens))
			out[category] = dst
		}
		for k, v := range tokens {
			dst[k] = v
		}
	}
	return out
}

// CustomProperties renders the theme as custom property declarations,
// categories and keys in sorted order.
// colors.cc-orange-light -> --color-cc-orange-light
func (t Theme) CustomProperties() []css.Declaration {
	decls := make([]css.Declaration, 0, t.Len())
	for _, category := range t.Categories() {
		tokens := t[category]
		for _, key := range tokens.Keys() {
			decls = append(decls, css.Decl(PropertyName(category, key), tokens[key]))
		}
	}
	return decls
}

// PropertyName returns the custom property name for a token
func PropertyName(category, key string) string {
	prefix, ok := categoryPrefixes[category]
	if !ok {
		prefix = kebab(category)
	}

	name := key
	if key == DefaultKey {
		name = ""
	}

	switch {
	case prefix == "":
		return "--" + css.EscapeIdent(name)
	case name == "":
		return "--" + prefix
	default:
		return "--" + prefix + "-" + css.EscapeIdent(name)
	}
}

// FromMap converts a decoded config tree into a Theme.
//
// Nested groups flatten with "-" (DEFAULT maps to the group name) and
// list values are joined as font stacks.
func FromMap(raw map[string]any) (Theme, error) {
	out := make(Theme, len(raw))
	for category, v := range raw {
		group, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("theme category %q: expected a mapping, got %T", category, v)
		}
		tokens := make(Tokens)
		if err := flatten(tokens, "", group); err != nil {
			return nil, fmt.Errorf("theme category %q: %w", category, err)
		}
		out[category] = tokens
	}
	return out, nil
}

func flatten(dst Tokens, prefix string, group map[string]any) error {
	for key, v := range group {
		name := joinKey(prefix, key)
		switch val := v.(type) {
		case map[string]any:
			if err := flatten(dst, name, val); err != nil {
				return err
			}
		case []any:
			dst[name] = FontStack(val)
		case []string:
			items := make([]any, len(val))
			for i, s := range val {
				items[i] = s
			}
			dst[name] = FontStack(items)
		case nil:
			return fmt.Errorf("token %q has no value", name)
		default:
			dst[name] = fmt.Sprint(val)
		}
	}
	return nil
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == DefaultKey:
		return prefix
	default:
		return prefix + "-" + key
	}
}

// FontStack joins family names into a font-family value, quoting names
// that contain whitespace. ["Bebas Neue", "sans-serif"] -> "Bebas Neue", sans-serif
func FontStack(families []any) string {
	parts := make([]string, 0, len(families))
	for _, f := range families {
		name := strings.TrimSpace(fmt.Sprint(f))
		if name == "" {
			continue
		}
		if strings.ContainsAny(name, " \t") && !isQuoted(name) {
			name = `"` + name + `"`
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

func isQuoted(s string) bool {
	return len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0]
}

// kebab converts camelCase category names to kebab-case
func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
