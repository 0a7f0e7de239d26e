// Package variant keeps the table of conditional selector variants.
package variant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yacobolo/cssconf/internal/css"
)

// Placeholder marks where the utility selector goes in a template
const Placeholder = "&"

// ErrInvalidVariant is returned for variants without a name or a usable selector
var ErrInvalidVariant = errors.New("invalid variant")

// Variant is a named set of selector templates.
// ".phx-click-loading&" matches the element itself,
// ".phx-click-loading &" matches any descendant.
type Variant struct {
	Name      string   `json:"name"`
	Selectors []string `json:"selectors"`
}

// Expand returns the concrete selectors for a variant-prefixed utility.
// Expand("animate-ping") on phx-click-loading yields
// ".phx-click-loading.phx-click-loading\:animate-ping" and
// ".phx-click-loading .phx-click-loading\:animate-ping".
func (v Variant) Expand(utility string) []string {
	class := css.ClassSelector(v.Name + ":" + utility)
	out := make([]string, len(v.Selectors))
	for i, tmpl := range v.Selectors {
		out[i] = strings.ReplaceAll(tmpl, Placeholder, class)
	}
	return out
}

// Registry holds variants in registration order
type Registry struct {
	order  []string
	byName map[string]Variant
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Variant)}
}

// Add registers a variant. Re-registering a name replaces its selectors but
// keeps its original position.
func (r *Registry) Add(name string, selectors ...string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidVariant)
	}
	if len(selectors) == 0 {
		return fmt.Errorf("%w %q: no selectors", ErrInvalidVariant, name)
	}
	for _, sel := range selectors {
		if !strings.Contains(sel, Placeholder) {
			return fmt.Errorf("%w %q: selector %q has no %q placeholder", ErrInvalidVariant, name, sel, Placeholder)
		}
	}

	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = Variant{Name: name, Selectors: append([]string(nil), selectors...)}
	return nil
}

// Get looks up a variant by name
func (r *Registry) Get(name string) (Variant, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// All returns variants in registration order
func (r *Registry) All() []Variant {
	out := make([]Variant, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of registered variants
func (r *Registry) Len() int {
	return len(r.order)
}
