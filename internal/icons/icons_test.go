package icons

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssconf/internal/css"
)

var testSizes = Sizes{Default: "1.5rem", Mini: "1.25rem", Micro: "1rem"}

// writeIcons creates root/<dir>/<file> for every entry and returns root
func writeIcons(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for _, src := range DefaultSources {
		require.NoError(t, os.MkdirAll(filepath.Join(root, src.Dir), 0755))
	}
	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}

func ruleByClass(rules []css.Rule, class string) (css.Rule, bool) {
	for _, r := range rules {
		if r.Selectors[0] == css.ClassSelector(class) {
			return r, true
		}
	}
	return css.Rule{}, false
}

func TestScanNamesAndSuffixes(t *testing.T) {
	root := writeIcons(t, map[string]string{
		"24/outline/check.svg":   "<svg>outline</svg>",
		"24/outline/x-mark.svg":  "<svg>x</svg>",
		"24/solid/check.svg":     "<svg>solid</svg>",
		"20/solid/check.svg":     "<svg>mini</svg>",
		"16/solid/check.svg":     "<svg>micro</svg>",
		"24/outline/README.md":   "not an icon",
		"24/outline/.hidden.svg": "<svg/>",
	})

	set, collisions, err := Scan(root, DefaultSources)
	require.NoError(t, err)
	assert.Empty(t, collisions)

	names := make([]string, 0, set.Len())
	for _, e := range set.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"check", "x-mark", "check-solid", "check-mini", "check-micro"}, names)

	e, ok := set.Get("check-solid")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "24", "solid", "check.svg"), e.FullPath)
	assert.Equal(t, "-solid", e.Suffix)
}

func TestScanCollisionLastWins(t *testing.T) {
	// outline/a-solid.svg and solid/a.svg both map to "a-solid";
	// solid is scanned after outline and wins
	root := writeIcons(t, map[string]string{
		"24/outline/a-solid.svg": "<svg>outline</svg>",
		"24/outline/b.svg":       "<svg>b</svg>",
		"24/solid/a.svg":         "<svg>solid</svg>",
	})

	set, collisions, err := Scan(root, DefaultSources)
	require.NoError(t, err)

	require.Len(t, collisions, 1)
	assert.Equal(t, "a-solid", collisions[0].Name)
	assert.Equal(t, filepath.Join(root, "24", "outline", "a-solid.svg"), collisions[0].Replaced)
	assert.Equal(t, filepath.Join(root, "24", "solid", "a.svg"), collisions[0].By)

	e, ok := set.Get("a-solid")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "24", "solid", "a.svg"), e.FullPath)
	assert.Equal(t, "-solid", e.Suffix)

	// The overwritten entry keeps its original position
	names := make([]string, 0, set.Len())
	for _, e := range set.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a-solid", "b"}, names)

	rules, err := Rules(set, testSizes, "")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	r, ok := ruleByClass(rules, "hero-a-solid")
	require.True(t, ok)
	v, _ := r.Get("--hero-a-solid")
	assert.Contains(t, v, "<svg>solid</svg>")
	assert.NotContains(t, v, "outline")
}

func TestScanCollisionAcrossSizes(t *testing.T) {
	root := writeIcons(t, map[string]string{
		"24/outline/bell-micro.svg": "<svg>outline</svg>",
		"16/solid/bell.svg":         "<svg>micro</svg>",
	})

	set, collisions, err := Scan(root, DefaultSources)
	require.NoError(t, err)
	require.Len(t, collisions, 1)

	rules, err := Rules(set, testSizes, "")
	require.NoError(t, err)
	require.Len(t, rules, 1)

	// The micro file won, so the micro size applies
	w, _ := rules[0].Get("width")
	assert.Equal(t, "1rem", w)
	v, _ := rules[0].Get("--hero-bell-micro")
	assert.Contains(t, v, "<svg>micro</svg>")
}

func TestScanMissingDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "24", "outline"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "24", "outline", "a.svg"), []byte("<svg/>"), 0644))

	set, collisions, err := Scan(root, DefaultSources)
	require.Error(t, err)
	assert.Nil(t, set)
	assert.Nil(t, collisions)

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "-solid", srcErr.Source.Suffix)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRulesDeclarations(t *testing.T) {
	root := writeIcons(t, map[string]string{
		"24/outline/x-mark.svg": "<svg>\n  <path d=\"M6 18L18 6\"/>\r\n</svg>\n",
	})

	set, _, err := Scan(root, DefaultSources)
	require.NoError(t, err)

	rules, err := Rules(set, testSizes, "")
	require.NoError(t, err)
	require.Len(t, rules, 1)

	rule := rules[0]
	assert.Equal(t, []string{".hero-x-mark"}, rule.Selectors)
	assert.Equal(t, []css.Declaration{
		{Property: "--hero-x-mark", Value: `url('data:image/svg+xml;utf8,<svg>  <path d="M6 18L18 6"/></svg>')`},
		{Property: "-webkit-mask", Value: "var(--hero-x-mark)"},
		{Property: "mask", Value: "var(--hero-x-mark)"},
		{Property: "mask-repeat", Value: "no-repeat"},
		{Property: "background-color", Value: "currentColor"},
		{Property: "vertical-align", Value: "middle"},
		{Property: "display", Value: "inline-block"},
		{Property: "width", Value: "1.5rem"},
		{Property: "height", Value: "1.5rem"},
	}, rule.Declarations)
}

func TestRulesSizeBySuffix(t *testing.T) {
	root := writeIcons(t, map[string]string{
		"24/outline/bolt.svg": "<svg/>",
		"24/solid/bolt.svg":   "<svg/>",
		"20/solid/bolt.svg":   "<svg/>",
		"16/solid/bolt.svg":   "<svg/>",
	})

	set, _, err := Scan(root, DefaultSources)
	require.NoError(t, err)
	rules, err := Rules(set, testSizes, "")
	require.NoError(t, err)
	require.Len(t, rules, 4)

	tests := []struct {
		class string
		size  string
	}{
		{class: "hero-bolt", size: "1.5rem"},
		{class: "hero-bolt-solid", size: "1.5rem"},
		{class: "hero-bolt-mini", size: "1.25rem"},
		{class: "hero-bolt-micro", size: "1rem"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			r, ok := ruleByClass(rules, tt.class)
			require.True(t, ok)
			w, _ := r.Get("width")
			h, _ := r.Get("height")
			assert.Equal(t, tt.size, w)
			assert.Equal(t, tt.size, h)
		})
	}
}

func TestRulesOneRulePerFile(t *testing.T) {
	files := map[string]string{}
	for i, name := range []string{"academic-cap", "adjustments", "archive-box"} {
		files["24/outline/"+name+".svg"] = strings.Repeat("<g/>", i+1)
		files["16/solid/"+name+".svg"] = "<svg/>"
	}
	root := writeIcons(t, files)

	set, _, err := Scan(root, DefaultSources)
	require.NoError(t, err)
	rules, err := Rules(set, testSizes, "")
	require.NoError(t, err)
	assert.Len(t, rules, 6)

	for _, e := range set.Entries() {
		r, ok := ruleByClass(rules, "hero-"+e.Name)
		require.True(t, ok, "missing rule for %s", e.Name)
		_, ok = r.Get("--hero-" + e.Name)
		assert.True(t, ok)
	}
}

func TestRulesCustomPrefix(t *testing.T) {
	root := writeIcons(t, map[string]string{"24/outline/home.svg": "<svg/>"})
	set, _, err := Scan(root, DefaultSources)
	require.NoError(t, err)

	rules, err := Rules(set, testSizes, "icon")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, ".icon-home", rules[0].Selectors[0])
	assert.Equal(t, "--icon-home", rules[0].Declarations[0].Property)
}

func TestRulesReadError(t *testing.T) {
	root := writeIcons(t, map[string]string{
		"24/outline/a.svg": "<svg/>",
		"24/outline/b.svg": "<svg/>",
	})
	set, _, err := Scan(root, DefaultSources)
	require.NoError(t, err)

	// Remove a discovered file before generation
	require.NoError(t, os.Remove(filepath.Join(root, "24", "outline", "b.svg")))

	rules, err := Rules(set, testSizes, "")
	require.Error(t, err)
	assert.Nil(t, rules)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "b", readErr.Name)
}

func TestRulesUnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced")
	}
	root := writeIcons(t, map[string]string{"24/outline/lock.svg": "<svg/>"})
	require.NoError(t, os.Chmod(filepath.Join(root, "24", "outline", "lock.svg"), 0000))

	set, _, err := Scan(root, DefaultSources)
	require.NoError(t, err)
	_, err = Rules(set, testSizes, "")
	require.ErrorIs(t, err, fs.ErrPermission)
}

func TestDataURIStripsNewlines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lf", in: "<svg>\n<g/>\n</svg>\n", want: "<svg><g/></svg>"},
		{name: "crlf", in: "<svg>\r\n<g/>\r\n</svg>", want: "<svg><g/></svg>"},
		{name: "cr", in: "<svg>\r<g/></svg>", want: "<svg><g/></svg>"},
		{name: "none", in: "<svg/>", want: "<svg/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DataURI([]byte(tt.in))
			assert.Equal(t, "url('data:image/svg+xml;utf8,"+tt.want+"')", got)
			assert.NotContains(t, got, "\n")
			assert.NotContains(t, got, "\r")
		})
	}
}

func TestSizesFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "check", want: "1.5rem"},
		{name: "check-solid", want: "1.5rem"},
		{name: "check-mini", want: "1.25rem"},
		{name: "check-micro", want: "1rem"},
		{name: "minimize", want: "1.5rem"},
		{name: "arrow-mini-solid", want: "1.5rem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testSizes.For(tt.name))
		})
	}
}

func TestRulesSizeByName(t *testing.T) {
	root := writeIcons(t, map[string]string{
		"24/outline/arrow-mini.svg":  "<svg/>",
		"24/outline/arrow-micro.svg": "<svg/>",
		"20/solid/check.svg":         "<svg/>",
		"16/solid/check.svg":         "<svg/>",
	})

	set, _, err := Scan(root, DefaultSources)
	require.NoError(t, err)
	rules, err := Rules(set, testSizes, "")
	require.NoError(t, err)

	// Outline files named *-mini / *-micro take the small sizes too
	for class, size := range map[string]string{
		"hero-arrow-mini":  "1.25rem",
		"hero-arrow-micro": "1rem",
		"hero-check-mini":  "1.25rem",
		"hero-check-micro": "1rem",
	} {
		r, ok := ruleByClass(rules, class)
		require.True(t, ok, class)
		w, _ := r.Get("width")
		assert.Equal(t, size, w, class)
	}
}
