package cssconf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yacobolo/cssconf/internal/css"
	"github.com/yacobolo/cssconf/internal/plugin"
	"github.com/yacobolo/cssconf/internal/theme"
	"github.com/yacobolo/cssconf/internal/variant"
)

// Rendered is the in-memory result of evaluating a config
type Rendered struct {
	Theme      theme.Theme
	Variants   []variant.Variant
	Icons      []plugin.Icon
	Stylesheet *css.Stylesheet
	Warnings   []string
}

// Build is the main entry point. Nothing is written unless every step
// succeeds.
func Build(config Config) (*BuildResult, error) {
	start := time.Now()
	logger := config.logger()
	result := &BuildResult{Output: config.Output, Manifest: config.Manifest}

	// 1. Resolve content globs
	files, stats, err := ResolveContent(config.Content, config.Output, config.Manifest)
	if err != nil {
		return nil, fmt.Errorf("resolve content: %w", err)
	}
	result.Content = stats
	logger.Debug("Resolved content", "files", stats.FilesIncluded, "skipped", stats.FilesSkipped)

	// 2-3. Merge theme and run plugins
	rendered, err := Render(config)
	if err != nil {
		return nil, err
	}
	result.Tokens = rendered.Theme.Len()
	result.Variants = len(rendered.Variants)
	result.Icons = len(rendered.Icons)
	result.Rules = rendered.Stylesheet.Len()
	result.Warnings = rendered.Warnings

	// 4. Render everything before touching the filesystem
	var cssBuf bytes.Buffer
	if _, err := rendered.Stylesheet.WriteTo(&cssBuf); err != nil {
		return nil, fmt.Errorf("render stylesheet: %w", err)
	}

	var manifestBuf bytes.Buffer
	if config.Manifest != "" {
		if err := WriteManifest(&manifestBuf, NewManifest(files, rendered)); err != nil {
			return nil, fmt.Errorf("render manifest: %w", err)
		}
	}

	// 5. Stage every file, then move them into place. The stylesheet goes
	// last so a failed manifest leaves the previous stylesheet alone.
	var staged []stagedFile
	defer func() {
		for _, f := range staged {
			_ = os.Remove(f.tmp)
		}
	}()

	if config.Manifest != "" {
		f, err := stageFile(config.Manifest, manifestBuf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
		staged = append(staged, f)
	}
	if config.Output != StdoutOutput {
		f, err := stageFile(config.Output, cssBuf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("write stylesheet: %w", err)
		}
		staged = append(staged, f)
	}

	if err := commitFiles(staged); err != nil {
		return nil, err
	}
	if config.Manifest != "" {
		logger.Debug("Wrote manifest", "path", config.Manifest)
	}

	if config.Output == StdoutOutput {
		w := config.Stdout
		if w == nil {
			w = os.Stdout
		}
		n, err := w.Write(cssBuf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("write stylesheet: %w", err)
		}
		result.BytesWritten = int64(n)
	} else {
		result.BytesWritten = int64(cssBuf.Len())
		logger.Debug("Wrote stylesheet", "path", config.Output, "bytes", cssBuf.Len())
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Render merges the theme and runs every plugin without writing anything
func Render(config Config) (*Rendered, error) {
	logger := config.logger()

	base := theme.Base()
	if config.BaseCSS != "" {
		fromCSS, err := theme.LoadCSS(config.BaseCSS)
		if err != nil {
			return nil, err
		}
		base = theme.Merge(base, fromCSS)
		logger.Debug("Loaded base tokens", "path", config.BaseCSS, "tokens", fromCSS.Len())
	}
	merged := theme.Merge(base, config.Extend)

	header := config.Header
	if header == "" {
		header = DefaultHeader
	}
	sheet := css.NewStylesheet(header)
	if err := sheet.Add(css.LayerBase, css.Rule{
		Selectors:    []string{":root"},
		Declarations: merged.CustomProperties(),
	}); err != nil {
		return nil, err
	}

	specs := config.Plugins
	if specs == nil {
		specs = plugin.DefaultSpecs()
	}
	plugins, err := plugin.Load(specs)
	if err != nil {
		return nil, err
	}

	variants := variant.NewRegistry()
	api := plugin.NewAPI(merged, variants, sheet, logger)
	if err := plugin.Run(api, plugins); err != nil {
		return nil, err
	}

	return &Rendered{
		Theme:      merged,
		Variants:   variants.All(),
		Icons:      api.Icons(),
		Stylesheet: sheet,
		Warnings:   api.Warnings(),
	}, nil
}

// WatchPaths returns the directories a rebuild depends on: content glob
// bases, the base stylesheet and every plugin source directory.
func WatchPaths(config Config) ([]string, error) {
	paths := contentDirs(config.Content)
	if config.BaseCSS != "" {
		paths = append(paths, filepath.Dir(config.BaseCSS))
	}

	specs := config.Plugins
	if specs == nil {
		specs = plugin.DefaultSpecs()
	}
	plugins, err := plugin.Load(specs)
	if err != nil {
		return nil, err
	}
	for _, p := range plugins {
		if w, ok := p.(plugin.Watcher); ok {
			paths = append(paths, w.WatchPaths()...)
		}
	}
	return paths, nil
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

// stagedFile is a fully written temp file waiting to replace path
type stagedFile struct {
	tmp  string
	path string
}

// stageFile writes data to a temp file next to path
func stageFile(path string, data []byte) (stagedFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return stagedFile{}, err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return stagedFile{}, err
	}
	f := stagedFile{tmp: tmp.Name(), path: path}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(f.tmp)
		return stagedFile{}, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(f.tmp)
		return stagedFile{}, err
	}
	if err := os.Chmod(f.tmp, 0644); err != nil {
		os.Remove(f.tmp)
		return stagedFile{}, err
	}
	return f, nil
}

// commitFiles renames staged files into place in order. Targets are
// checked up front so a path that cannot be replaced fails before any
// file moves.
func commitFiles(files []stagedFile) error {
	for _, f := range files {
		if fi, err := os.Stat(f.path); err == nil && fi.IsDir() {
			return fmt.Errorf("write %s: is a directory", f.path)
		}
	}
	for _, f := range files {
		if err := os.Rename(f.tmp, f.path); err != nil {
			return fmt.Errorf("write %s: %w", f.path, err)
		}
	}
	return nil
}
