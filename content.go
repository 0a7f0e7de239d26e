package cssconf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ContentStats tracks content glob resolution
type ContentStats struct {
	FilesDiscovered int // Total files matched by the globs
	FilesIncluded   int // Files kept after filtering
	FilesSkipped    int // Files dropped by .gitignore or as build output
}

// loadGitIgnore loads .gitignore from the working directory.
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether a matched file is excluded from content.
// Only paths inside the working directory are checked against .gitignore;
// absolute paths and paths reaching outside (../lib/...) are never skipped.
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return false
	}
	return gi.MatchesPath(clean)
}

// ResolveContent expands content globs to the deduplicated list of source
// files the stylesheet depends on. Files listed in exclude (the build's own
// outputs) are never returned.
func ResolveContent(patterns []string, exclude ...string) ([]string, ContentStats, error) {
	var stats ContentStats
	var files []string
	seen := make(map[string]bool)

	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		if e != "" {
			excluded[filepath.Clean(e)] = true
		}
	}

	gi := loadGitIgnore()

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if excluded[filepath.Clean(match)] || shouldSkipFile(match, gi) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	stats.FilesIncluded = len(files)
	return files, stats, nil
}

// contentDirs returns the non-glob base directory of every pattern
func contentDirs(patterns []string) []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		// The base is everything up to the last slash before any meta
		// character, so plain file paths yield their directory
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		dir := filepath.Clean(filepath.FromSlash(base))
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
