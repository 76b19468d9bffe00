package export

import (
	"encoding/json"

	"github.com/jmylchreest/swatch/internal/palette"
)

// JSON renders the palette as an array of {color, locked} objects.
type JSON struct{}

// NewJSON creates the JSON exporter.
func NewJSON() *JSON {
	return &JSON{}
}

func (j *JSON) Name() string        { return "json" }
func (j *JSON) Description() string { return "JSON array of {color, locked}" }
func (j *JSON) Filename() string    { return "palette.json" }
func (j *JSON) MIMEType() string    { return "application/json" }

// Export renders the palette. A nil palette encodes as [].
func (j *JSON) Export(p palette.Palette) ([]byte, error) {
	if p == nil {
		p = palette.Palette{}
	}
	return json.MarshalIndent(p, "", "  ")
}
