// Package colour provides the colour maths used by swatch: hex parsing,
// random colour generation and WCAG luminance/contrast ratings.
package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a colour string is not a six digit hex value.
var ErrInvalidColorFormat = errors.New("invalid colour format")

// Hex is a canonical colour string in the form "#RRGGBB" (uppercase).
type Hex string

// String implements fmt.Stringer.
func (h Hex) String() string {
	return string(h)
}

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical hex form (e.g., "#1A2B3C").
func (rgb RGB) Hex() Hex {
	return Hex(fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B))
}

// ParseHex parses a hex colour string into an RGB struct.
// Accepts "#RRGGBB" or "RRGGBB" in either case.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q: expected 6 hex digits, got %d", ErrInvalidColorFormat, s, len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: non-hex characters", ErrInvalidColorFormat, s)
	}

	return RGB{
		R: uint8(v >> 16), // #nosec G115 -- masked to 24 bits by length check
		G: uint8(v >> 8),  // #nosec G115
		B: uint8(v),       // #nosec G115
	}, nil
}

// NormaliseHex validates s and returns it in canonical "#RRGGBB" form.
func NormaliseHex(s string) (Hex, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// MustParseHex is like ParseHex but panics on error. Intended for constants.
func MustParseHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}
