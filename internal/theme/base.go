package theme

// Base returns the default design-token table the extension is merged into.
// A new table is returned on every call.
func Base() Theme {
	return Theme{
		"spacing": {
			"px":  "1px",
			"0":   "0px",
			"0.5": "0.125rem",
			"1":   "0.25rem",
			"1.5": "0.375rem",
			"2":   "0.5rem",
			"2.5": "0.625rem",
			"3":   "0.75rem",
			"3.5": "0.875rem",
			"4":   "1rem",
			"5":   "1.25rem",
			"6":   "1.5rem",
			"7":   "1.75rem",
			"8":   "2rem",
			"9":   "2.25rem",
			"10":  "2.5rem",
			"11":  "2.75rem",
			"12":  "3rem",
			"14":  "3.5rem",
			"16":  "4rem",
			"20":  "5rem",
			"24":  "6rem",
			"28":  "7rem",
			"32":  "8rem",
			"36":  "9rem",
			"40":  "10rem",
			"44":  "11rem",
			"48":  "12rem",
			"52":  "13rem",
			"56":  "14rem",
			"60":  "15rem",
			"64":  "16rem",
			"72":  "18rem",
			"80":  "20rem",
			"96":  "24rem",
		},
		"colors": {
			"transparent": "transparent",
			"current":     "currentColor",
			"black":       "#000",
			"white":       "#fff",
			"gray-500":    "#6b7280",
			"blue-600":    "#2563eb",
		},
		"fontFamily": {
			"sans":  `ui-sans-serif, system-ui, sans-serif, "Apple Color Emoji", "Segoe UI Emoji"`,
			"serif": `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`,
			"mono":  `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace`,
		},
		"boxShadow": {
			"sm":      "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"DEFAULT": "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
			"md":      "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
			"lg":      "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
			"none":    "none",
		},
		"borderWidth": {
			"DEFAULT": "1px",
			"0":       "0px",
			"2":       "2px",
			"4":       "4px",
			"8":       "8px",
		},
	}
}
