package plugin

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yacobolo/cssconf/internal/css"
)

// Forms strategies
const (
	FormsStrategyBase  = "base"  // style bare form elements in the base layer
	FormsStrategyClass = "class" // style .form-* classes in the components layer
)

// formRule is one forms rule with its base-strategy and class-strategy selectors.
// An empty list skips the rule for that strategy.
type formRule struct {
	base  []string
	class []string
	decls func(p formPalette) []css.Declaration
}

// formPalette holds the theme values the forms rules read
type formPalette struct {
	border  string
	focus   string
	bg      string
	width   string
	padX    string
	padY    string
	control string
	shadow0 string
}

var textInputs = []string{
	"[type='text']", "input:where(:not([type]))", "[type='email']", "[type='url']",
	"[type='password']", "[type='number']", "[type='date']", "[type='datetime-local']",
	"[type='month']", "[type='search']", "[type='tel']", "[type='time']", "[type='week']",
}

var formRules = []formRule{
	{
		base:  append(append([]string(nil), textInputs...), "[multiple]", "textarea", "select"),
		class: []string{".form-input", ".form-textarea", ".form-select", ".form-multiselect"},
		decls: func(p formPalette) []css.Declaration {
			return []css.Declaration{
				css.Decl("appearance", "none"),
				css.Decl("background-color", p.bg),
				css.Decl("border-color", p.border),
				css.Decl("border-width", p.width),
				css.Decl("border-radius", "0px"),
				css.Decl("padding-top", p.padY),
				css.Decl("padding-right", p.padX),
				css.Decl("padding-bottom", p.padY),
				css.Decl("padding-left", p.padX),
				css.Decl("font-size", "1rem"),
				css.Decl("line-height", "1.5rem"),
				css.Decl("--tw-shadow", p.shadow0),
			}
		},
	},
	{
		base:  withPseudo(append(append([]string(nil), textInputs...), "[multiple]", "textarea", "select"), ":focus"),
		class: withPseudo([]string{".form-input", ".form-textarea", ".form-select", ".form-multiselect"}, ":focus"),
		decls: func(p formPalette) []css.Declaration {
			return []css.Declaration{
				css.Decl("outline", "2px solid transparent"),
				css.Decl("outline-offset", "2px"),
				css.Decl("--tw-ring-color", p.focus),
				css.Decl("box-shadow", "0 0 0 1px "+p.focus),
				css.Decl("border-color", p.focus),
			}
		},
	},
	{
		base:  []string{"input::placeholder", "textarea::placeholder"},
		class: []string{".form-input::placeholder", ".form-textarea::placeholder"},
		decls: func(p formPalette) []css.Declaration {
			return []css.Declaration{
				css.Decl("color", p.border),
				css.Decl("opacity", "1"),
			}
		},
	},
	{
		base:  []string{"select"},
		class: []string{".form-select"},
		decls: func(p formPalette) []css.Declaration {
			chevron := `<svg xmlns='http://www.w3.org/2000/svg' fill='none' viewBox='0 0 20 20'><path stroke='` +
				p.border + `' stroke-linecap='round' stroke-linejoin='round' stroke-width='1.5' d='M6 8l4 4 4-4'/></svg>`
			return []css.Declaration{
				css.Decl("background-image", svgURL(chevron)),
				css.Decl("background-position", "right 0.5rem center"),
				css.Decl("background-repeat", "no-repeat"),
				css.Decl("background-size", "1.5em 1.5em"),
				css.Decl("padding-right", "2.5rem"),
				css.Decl("print-color-adjust", "exact"),
			}
		},
	},
	{
		base:  []string{"[multiple]", "[size]:where(select:not([size='1']))"},
		class: []string{".form-multiselect"},
		decls: func(p formPalette) []css.Declaration {
			return []css.Declaration{
				css.Decl("background-image", "initial"),
				css.Decl("background-position", "initial"),
				css.Decl("background-repeat", "unset"),
				css.Decl("background-size", "initial"),
				css.Decl("padding-right", p.padX),
				css.Decl("print-color-adjust", "unset"),
			}
		},
	},
	{
		base:  []string{"[type='checkbox']", "[type='radio']"},
		class: []string{".form-checkbox", ".form-radio"},
		decls: func(p formPalette) []css.Declaration {
			return []css.Declaration{
				css.Decl("appearance", "none"),
				css.Decl("padding", "0"),
				css.Decl("print-color-adjust", "exact"),
				css.Decl("display", "inline-block"),
				css.Decl("vertical-align", "middle"),
				css.Decl("background-origin", "border-box"),
				css.Decl("user-select", "none"),
				css.Decl("flex-shrink", "0"),
				css.Decl("height", p.control),
				css.Decl("width", p.control),
				css.Decl("color", p.focus),
				css.Decl("background-color", p.bg),
				css.Decl("border-color", p.border),
				css.Decl("border-width", p.width),
			}
		},
	},
	{
		base:  []string{"[type='checkbox']"},
		class: []string{".form-checkbox"},
		decls: func(formPalette) []css.Declaration {
			return []css.Declaration{css.Decl("border-radius", "0px")}
		},
	},
	{
		base:  []string{"[type='radio']"},
		class: []string{".form-radio"},
		decls: func(formPalette) []css.Declaration {
			return []css.Declaration{css.Decl("border-radius", "100%")}
		},
	},
	{
		base:  []string{"[type='checkbox']:checked", "[type='radio']:checked"},
		class: []string{".form-checkbox:checked", ".form-radio:checked"},
		decls: func(formPalette) []css.Declaration {
			return []css.Declaration{
				css.Decl("border-color", "transparent"),
				css.Decl("background-color", "currentColor"),
				css.Decl("background-size", "100% 100%"),
				css.Decl("background-position", "center"),
				css.Decl("background-repeat", "no-repeat"),
			}
		},
	},
	{
		base:  []string{"[type='checkbox']:checked"},
		class: []string{".form-checkbox:checked"},
		decls: func(formPalette) []css.Declaration {
			check := `<svg viewBox='0 0 16 16' fill='white' xmlns='http://www.w3.org/2000/svg'><path d='M12.207 4.793a1 1 0 010 1.414l-5 5a1 1 0 01-1.414 0l-2-2a1 1 0 011.414-1.414L6.5 9.086l4.293-4.293a1 1 0 011.414 0z'/></svg>`
			return []css.Declaration{css.Decl("background-image", svgURL(check))}
		},
	},
	{
		base:  []string{"[type='radio']:checked"},
		class: []string{".form-radio:checked"},
		decls: func(formPalette) []css.Declaration {
			dot := `<svg viewBox='0 0 16 16' fill='white' xmlns='http://www.w3.org/2000/svg'><circle cx='8' cy='8' r='3'/></svg>`
			return []css.Declaration{css.Decl("background-image", svgURL(dot))}
		},
	},
	{
		base:  []string{"[type='file']"},
		class: nil,
		decls: func(formPalette) []css.Declaration {
			return []css.Declaration{
				css.Decl("background", "unset"),
				css.Decl("border-color", "inherit"),
				css.Decl("border-width", "0"),
				css.Decl("border-radius", "0"),
				css.Decl("padding", "0"),
				css.Decl("font-size", "unset"),
				css.Decl("line-height", "inherit"),
			}
		},
	},
}

// forms is a reset for form controls that makes them easy to override with
// utilities
type forms struct {
	strategy string
}

func newForms(opts Options) (Plugin, error) {
	strategy := opts.String("strategy", FormsStrategyBase)
	if strategy != FormsStrategyBase && strategy != FormsStrategyClass {
		return nil, fmt.Errorf("invalid strategy %q (want %q or %q)", strategy, FormsStrategyBase, FormsStrategyClass)
	}
	return &forms{strategy: strategy}, nil
}

func (p *forms) Name() string { return "forms" }

func (p *forms) Register(api *API) error {
	palette := formPalette{
		border:  api.ThemeOr("colors.gray-500", "#6b7280"),
		focus:   api.ThemeOr("colors.blue-600", "#2563eb"),
		bg:      api.ThemeOr("colors.white", "#fff"),
		width:   api.ThemeOr("borderWidth.DEFAULT", "1px"),
		padX:    api.ThemeOr("spacing.3", "0.75rem"),
		padY:    api.ThemeOr("spacing.2", "0.5rem"),
		control: api.ThemeOr("spacing.4", "1rem"),
		shadow0: "0 0 #0000",
	}

	for _, r := range formRules {
		selectors := r.base
		if p.strategy == FormsStrategyClass {
			selectors = r.class
		}
		if len(selectors) == 0 {
			continue
		}
		rule := css.Rule{Selectors: selectors, Declarations: r.decls(palette)}
		if p.strategy == FormsStrategyClass {
			api.AddComponents(rule)
		} else {
			api.AddBase(rule)
		}
	}
	return nil
}

func withPseudo(selectors []string, pseudo string) []string {
	out := make([]string, len(selectors))
	for i, s := range selectors {
		out[i] = s + pseudo
	}
	return out
}

// svgURL percent-encodes an inline SVG for use in a url() value
func svgURL(svg string) string {
	escaped := strings.NewReplacer("+", "%20").Replace(url.QueryEscape(svg))
	return `url("data:image/svg+xml,` + escaped + `")`
}
