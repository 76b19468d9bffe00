package export

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/jmylchreest/swatch/internal/palette"
)

//go:embed *.tmpl
var templates embed.FS

// CSS renders the palette as CSS custom properties on :root.
type CSS struct {
	tmpl *template.Template
}

// NewCSS creates the stylesheet exporter.
func NewCSS() *CSS {
	return &CSS{
		tmpl: template.Must(template.New("root.css.tmpl").
			Funcs(templateFuncs()).
			ParseFS(templates, "root.css.tmpl")),
	}
}

func (c *CSS) Name() string        { return "css" }
func (c *CSS) Description() string { return "CSS custom properties (--color1, --color2, ...)" }
func (c *CSS) Filename() string    { return "palette.css" }
func (c *CSS) MIMEType() string    { return "text/css" }

// Export renders one custom property per swatch, 1-indexed, in palette order.
func (c *CSS) Export(p palette.Palette) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}
	return buf.Bytes(), nil
}

// templateFuncs returns template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
}
