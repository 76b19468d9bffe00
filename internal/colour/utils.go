package colour

import (
	"math"
)

// WCAG 2.0 contrast thresholds for normal text.
const (
	ThresholdAA  = 4.5
	ThresholdAAA = 7.0
)

// White is the default background colours are rated against.
const White Hex = "#FFFFFF"

// Level is a WCAG contrast tier.
type Level int

const (
	// LevelFail is below the AA threshold.
	LevelFail Level = iota
	// LevelAA meets 4.5:1.
	LevelAA
	// LevelAAA meets 7:1.
	LevelAAA
)

// String returns the tier name.
func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	default:
		return "Fail"
	}
}

// Passes reports whether the level meets at least AA.
func (l Level) Passes() bool {
	return l >= LevelAA
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Luminance calculates the relative luminance of a hex colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(hex string) (float64, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return rgb.Luminance(), nil
}

// Luminance returns the WCAG relative luminance of rgb.
func (rgb RGB) Luminance() float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two hex colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) (float64, error) {
	c1, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	c2, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatioRGB(c1, c2), nil
}

// ContrastRatioRGB is ContrastRatio for already parsed colours.
func ContrastRatioRGB(c1, c2 RGB) float64 {
	l1 := c1.Luminance()
	l2 := c2.Luminance()

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastLabel maps a contrast ratio to its WCAG tier.
// Lower bounds are inclusive.
func ContrastLabel(ratio float64) Level {
	switch {
	case ratio >= ThresholdAAA:
		return LevelAAA
	case ratio >= ThresholdAA:
		return LevelAA
	default:
		return LevelFail
	}
}

// Rating is the contrast of a colour against a background.
type Rating struct {
	Color      Hex     `json:"color"`
	Background Hex     `json:"background"`
	Ratio      float64 `json:"ratio"`
	Level      Level   `json:"level"`
}

// Rate computes the contrast rating of c against bg.
func Rate(c, bg string) (Rating, error) {
	fg, err := ParseHex(c)
	if err != nil {
		return Rating{}, err
	}
	back, err := ParseHex(bg)
	if err != nil {
		return Rating{}, err
	}

	ratio := ContrastRatioRGB(fg, back)
	return Rating{
		Color:      fg.Hex(),
		Background: back.Hex(),
		Ratio:      ratio,
		Level:      ContrastLabel(ratio),
	}, nil
}

// ReadableText returns black or white, whichever contrasts more with bg.
func ReadableText(bg RGB) RGB {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	if ContrastRatioRGB(black, bg) >= ContrastRatioRGB(white, bg) {
		return black
	}
	return white
}
