// Package css holds the rule model and writer for generated stylesheets.
package css

import (
	"fmt"
	"strings"

	tdcss "github.com/tdewolff/parse/v2/css"
)

// Declaration is a single property: value pair inside a rule
type Declaration struct {
	Property string
	Value    string
}

// Decl is shorthand for building a Declaration
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// Rule is a selector list with its declarations.
// Declarations are rendered in the order they were added.
type Rule struct {
	Selectors    []string
	Declarations []Declaration
}

// NewRule builds a rule for a single selector
func NewRule(selector string, decls ...Declaration) Rule {
	return Rule{Selectors: []string{selector}, Declarations: decls}
}

// Get returns the value of the last declaration for property
func (r Rule) Get(property string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == property {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// ClassSelector returns the escaped selector for a class name
func ClassSelector(name string) string {
	return "." + EscapeIdent(name)
}

// EscapeIdent escapes a class name so it is a valid CSS identifier.
// "phx-click-loading:animate-ping" -> "phx-click-loading\:animate-ping"
func EscapeIdent(name string) string {
	if name == "" || tdcss.IsIdent([]byte(name)) {
		return name
	}

	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 0x80, c == '-', c == '_',
			c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= '0' && c <= '9':
			// A leading digit (or a digit after a single leading hyphen)
			// must be written as a code point escape
			if i == 0 || (i == 1 && name[0] == '-') {
				fmt.Fprintf(&b, "\\%x ", c)
			} else {
				b.WriteByte(c)
			}
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, "\\%x ", c)
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}
