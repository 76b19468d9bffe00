// Package export renders a palette into downloadable documents (CSS, JSON, plain hex).
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jmylchreest/swatch/internal/palette"
)

// Exporter renders a palette into a single document.
type Exporter interface {
	// Name returns the exporter's name (e.g., "css", "json").
	Name() string

	// Description returns a human-readable description of the exporter.
	Description() string

	// Filename returns the default file name for the document.
	Filename() string

	// MIMEType returns the document's media type.
	MIMEType() string

	// Export renders the palette.
	Export(p palette.Palette) ([]byte, error)
}

// Registry holds all registered exporters.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exporters: make(map[string]Exporter),
	}
}

// DefaultRegistry returns a registry with the built-in exporters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewCSS())
	r.Register(NewJSON())
	r.Register(NewHex())
	return r
}

// Register adds an exporter to the registry.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// List returns all registered exporter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Write renders p with e and writes it to dir/e.Filename().
// Returns the written path.
func Write(dir string, e Exporter, p palette.Palette) (string, error) {
	content, err := e.Export(p)
	if err != nil {
		return "", fmt.Errorf("%s export failed: %w", e.Name(), err)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 -- user-chosen output directory
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, e.Filename())
	if err := os.WriteFile(path, content, 0o644); err != nil { // #nosec G306 -- exported stylesheet is not sensitive
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
