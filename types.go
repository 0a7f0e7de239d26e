package cssconf

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yacobolo/cssconf/internal/plugin"
	"github.com/yacobolo/cssconf/internal/theme"
)

// Aliases so callers outside this module can build a Config
type (
	Theme         = theme.Theme
	Tokens        = theme.Tokens
	PluginSpec    = plugin.Spec
	PluginOptions = plugin.Options
)

// StdoutOutput as Config.Output writes the stylesheet to Config.Stdout
const StdoutOutput = "-"

// DefaultHeader is the comment placed at the top of generated stylesheets
const DefaultHeader = "Code generated by cssconf. DO NOT EDIT."

// Config holds build configuration
type Config struct {
	Content  []string      // ["./js/**/*.js", "../lib/app_web/**/*.*ex"]
	Output   string        // "css/app.gen.css", or "-" for stdout
	Manifest string        // Optional JSON manifest path
	BaseCSS  string        // Optional stylesheet of custom properties seeding the base theme
	Extend   theme.Theme   // Theme extension merged over the base table
	Plugins  []plugin.Spec // Evaluated in order
	Header   string        // Stylesheet header comment (default: DefaultHeader)

	Stdout io.Writer   // Used when Output is "-"
	Logger *log.Logger // nil discards logs
}

// BuildResult contains build stats
type BuildResult struct {
	Output       string
	Manifest     string
	Content      ContentStats
	Tokens       int // Design tokens after the merge
	Variants     int
	Icons        int
	Rules        int
	BytesWritten int64
	Warnings     []string
	Duration     time.Duration
}
