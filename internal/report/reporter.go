// Package report prints build results to the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yacobolo/cssconf"
	"github.com/yacobolo/cssconf/internal/plugin"
)

// Color modes accepted by NewReporter
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Reporter formats build results
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter. mode is one of ColorAuto, ColorAlways or
// ColorNever; anything else behaves like ColorAuto.
func NewReporter(w io.Writer, mode string) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(mode),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(mode string) bool {
	// Explicit mode wins
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintBuild outputs the one-line build summary followed by any warnings
func (r *Reporter) PrintBuild(result *cssconf.BuildResult) {
	target := result.Output
	if target == cssconf.StdoutOutput {
		target = "stdout"
	}

	fmt.Fprintf(r.w, "%s %s (%s) in %s\n",
		r.paint(roleSuccess, "Built"),
		r.paint(roleTarget, target),
		humanize.Bytes(uint64(result.BytesWritten)),
		formatDuration(result.Duration))

	fmt.Fprintln(r.w, r.paint(roleMuted, fmt.Sprintf("  %s, %s, %s, %s from %s",
		pluralizeCount(result.Tokens, "token", "tokens"),
		pluralizeCount(result.Variants, "variant", "variants"),
		pluralizeCount(result.Icons, "icon", "icons"),
		pluralizeCount(result.Rules, "rule", "rules"),
		pluralizeCount(result.Content.FilesIncluded, "content file", "content files"),
	)))

	if result.Manifest != "" {
		fmt.Fprintf(r.w, "  manifest: %s\n", result.Manifest)
	}

	r.PrintWarnings(result.Warnings)
}

// PrintWarnings lists build warnings
func (r *Reporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, r.paint(roleWarning, pluralizeCount(len(warnings), "warning", "warnings")+":"))
	for _, w := range warnings {
		fmt.Fprintf(r.w, "* %s\n", w)
	}
}

// PrintStatistics outputs the detailed build breakdown shown with --verbose
func (r *Reporter) PrintStatistics(result *cssconf.BuildResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, r.paint(roleTarget, "Build Statistics"))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Content Files Matched:  %s\n", humanize.Comma(int64(result.Content.FilesDiscovered)))
	fmt.Fprintf(r.w, "Content Files Skipped:  %s\n", humanize.Comma(int64(result.Content.FilesSkipped)))
	fmt.Fprintf(r.w, "Theme Tokens:           %s\n", humanize.Comma(int64(result.Tokens)))
	fmt.Fprintf(r.w, "Variants:               %s\n", humanize.Comma(int64(result.Variants)))
	fmt.Fprintf(r.w, "Icons:                  %s\n", humanize.Comma(int64(result.Icons)))
	fmt.Fprintf(r.w, "Rules:                  %s\n", humanize.Comma(int64(result.Rules)))
	fmt.Fprintf(r.w, "Stylesheet Size:        %s\n", humanize.Bytes(uint64(result.BytesWritten)))
}

// PrintIcons lists resolved icons as name, size and source file
func (r *Reporter) PrintIcons(icons []plugin.Icon) {
	width := 0
	for _, ic := range icons {
		width = max(width, len(ic.Class))
	}

	for _, ic := range icons {
		fmt.Fprintf(r.w, "%s%s  %-8s %s\n",
			r.paint(roleIcon, ic.Class),
			strings.Repeat(" ", width-len(ic.Class)),
			ic.Size,
			r.paint(roleMuted, ic.Path))
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, pluralizeCount(len(icons), "icon", "icons"))
}

// PrintError outputs a build failure
func (r *Reporter) PrintError(err error) {
	fmt.Fprintf(r.w, "%s %v\n", r.paint(roleFailure, "Build failed:"), err)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}
