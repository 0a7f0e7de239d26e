package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// LoadCSS reads a stylesheet of custom properties and returns them as a theme.
// "--color-brand: #E8692C;" becomes colors.brand. Properties whose prefix
// matches no known category land in the "custom" category under their full
// name.
func LoadCSS(path string) (Theme, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read base css: %w", err)
	}
	return ParseCSS(string(content)), nil
}

// ParseCSS extracts custom property declarations from CSS source
func ParseCSS(content string) Theme {
	out := make(Theme)
	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		if tt == css.CustomPropertyNameToken || (tt == css.IdentToken && strings.HasPrefix(string(text), "--")) {
			name := string(text)
			value, ok := readValue(lexer)
			if !ok {
				continue
			}
			category, key := splitPropertyName(name)
			if out[category] == nil {
				out[category] = make(Tokens)
			}
			out[category][key] = value
		}
	}

	return out
}

// readValue consumes ": value" up to the terminating ; or }
func readValue(lexer *css.Lexer) (string, bool) {
	tt, _ := lexer.Next()
	for tt == css.WhitespaceToken || tt == css.CommentToken {
		tt, _ = lexer.Next()
	}
	if tt != css.ColonToken {
		return "", false
	}

	var parts []string
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.SemicolonToken || tt == css.RightBraceToken {
			break
		}
		if tt == css.CommentToken {
			continue
		}
		if tt == css.WhitespaceToken {
			parts = append(parts, " ")
			continue
		}
		parts = append(parts, string(text))
	}

	value := strings.TrimSpace(strings.Join(parts, ""))
	if value == "" {
		return "", false
	}
	return strings.Join(strings.Fields(value), " "), true
}

// splitPropertyName maps "--border-width-3" back to ("borderWidth", "3").
// The longest matching prefix wins.
func splitPropertyName(name string) (string, string) {
	bare := strings.TrimPrefix(name, "--")

	bestCategory, bestPrefix := "", ""
	for category, prefix := range categoryPrefixes {
		if prefix == "" || len(prefix) <= len(bestPrefix) {
			continue
		}
		if bare == prefix || strings.HasPrefix(bare, prefix+"-") {
			bestCategory, bestPrefix = category, prefix
		}
	}

	if bestCategory == "" {
		return "custom", bare
	}
	if bare == bestPrefix {
		return bestCategory, DefaultKey
	}
	return bestCategory, unescape(strings.TrimPrefix(bare, bestPrefix+"-"))
}

// unescape reverses simple backslash escapes ("0\.5" -> "0.5")
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
