// Package icons inlines a directory tree of SVG icons as CSS mask utilities.
//
// Icons are discovered under a root directory in four fixed sources:
//
//	""        24/outline
//	"-solid"  24/solid
//	"-mini"   20/solid
//	"-micro"  16/solid
//
// Each file becomes one entry named after its base name plus the source
// suffix ("check.svg" in 24/solid -> "check-solid").
package icons

import (
	"os"
	"path/filepath"
	"strings"
)

// Source pairs a name suffix with a directory relative to the icon root
type Source struct {
	Suffix string
	Dir    string
}

// Suffixes with a dedicated size
const (
	SuffixMini  = "-mini"
	SuffixMicro = "-micro"
)

// DefaultSources lists the icon sources in scan order
var DefaultSources = []Source{
	{Suffix: "", Dir: "24/outline"},
	{Suffix: "-solid", Dir: "24/solid"},
	{Suffix: SuffixMini, Dir: "20/solid"},
	{Suffix: SuffixMicro, Dir: "16/solid"},
}

// Entry is a discovered icon
type Entry struct {
	Name     string
	FullPath string
	Suffix   string
}

// Collision records an entry replaced by a later source
type Collision struct {
	Name     string
	Replaced string // path of the dropped file
	By       string // path of the file that won
}

// Set is a name -> entry mapping that remembers insertion order.
// Putting an existing name replaces the entry in place.
type Set struct {
	order   []string
	entries map[string]Entry
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{entries: make(map[string]Entry)}
}

// Put inserts or replaces an entry. It returns the replaced entry, if any.
func (s *Set) Put(e Entry) (Entry, bool) {
	prev, exists := s.entries[e.Name]
	if !exists {
		s.order = append(s.order, e.Name)
	}
	s.entries[e.Name] = e
	return prev, exists
}

// Get looks up an entry by name
func (s *Set) Get(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Entries returns entries in first-insertion order
func (s *Set) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.entries[name])
	}
	return out
}

// Len returns the number of entries
func (s *Set) Len() int {
	return len(s.order)
}

// Scan lists every source directory under root in order and collects the
// icons found. A later source overwrites an earlier entry of the same name;
// every overwrite is reported as a Collision.
//
// A missing or unreadable source directory fails the scan with a
// *SourceError and no entries.
func Scan(root string, sources []Source) (*Set, []Collision, error) {
	set := NewSet()
	var collisions []Collision

	for _, src := range sources {
		dir := filepath.Join(root, filepath.FromSlash(src.Dir))

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, nil, &SourceError{Source: src, Path: dir, Err: err}
		}

		// os.ReadDir returns entries sorted by file name
		for _, de := range entries {
			if de.IsDir() || !isSVG(de.Name()) {
				continue
			}

			entry := Entry{
				Name:     strings.TrimSuffix(de.Name(), filepath.Ext(de.Name())) + src.Suffix,
				FullPath: filepath.Join(dir, de.Name()),
				Suffix:   src.Suffix,
			}
			if prev, replaced := set.Put(entry); replaced {
				collisions = append(collisions, Collision{
					Name:     entry.Name,
					Replaced: prev.FullPath,
					By:       entry.FullPath,
				})
			}
		}
	}

	return set, collisions, nil
}

// Dirs returns the source directories under root in scan order
func Dirs(root string, sources []Source) []string {
	dirs := make([]string, len(sources))
	for i, src := range sources {
		dirs[i] = filepath.Join(root, filepath.FromSlash(src.Dir))
	}
	return dirs
}

func isSVG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".svg") && !strings.HasPrefix(name, ".")
}
