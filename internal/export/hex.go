package export

import (
	"strings"

	"github.com/jmylchreest/swatch/internal/palette"
)

// Hex renders one colour per line.
type Hex struct{}

// NewHex creates the plain hex list exporter.
func NewHex() *Hex {
	return &Hex{}
}

func (h *Hex) Name() string        { return "hex" }
func (h *Hex) Description() string { return "Plain list of hex codes, one per line" }
func (h *Hex) Filename() string    { return "palette.txt" }
func (h *Hex) MIMEType() string    { return "text/plain" }

// Export renders the palette's colours.
func (h *Hex) Export(p palette.Palette) ([]byte, error) {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteString(string(s.Color))
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}
