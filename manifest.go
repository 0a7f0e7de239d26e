package cssconf

import (
	"encoding/json"
	"io"

	"github.com/yacobolo/cssconf/internal/plugin"
	"github.com/yacobolo/cssconf/internal/theme"
	"github.com/yacobolo/cssconf/internal/variant"
)

// ManifestVersion is the manifest schema version
const ManifestVersion = "1.0"

// Manifest is the JSON export of a build for tooling integration
type Manifest struct {
	Version  string            `json:"version"`
	Content  []string          `json:"content"`
	Theme    theme.Theme       `json:"theme"`
	Variants []variant.Variant `json:"variants"`
	Icons    []plugin.Icon     `json:"icons"`
}

// NewManifest converts a rendered build into its manifest
func NewManifest(content []string, r *Rendered) Manifest {
	m := Manifest{
		Version:  ManifestVersion,
		Content:  content,
		Theme:    r.Theme,
		Variants: r.Variants,
		Icons:    r.Icons,
	}
	// Empty lists encode as [] rather than null
	if m.Content == nil {
		m.Content = []string{}
	}
	if m.Variants == nil {
		m.Variants = []variant.Variant{}
	}
	if m.Icons == nil {
		m.Icons = []plugin.Icon{}
	}
	return m
}

// WriteManifest writes the manifest as indented JSON
func WriteManifest(w io.Writer, m Manifest) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m)
}
