// Package palette holds the working palette and the operations that mutate it.
package palette

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
)

const (
	// MaxSwatches is the most swatches Add will allow.
	MaxSwatches = 10

	// DefaultCount is the number of swatches generated into an empty palette.
	DefaultCount = 5
)

var (
	// ErrPaletteFull is returned by Add when the palette already holds MaxSwatches.
	ErrPaletteFull = errors.New("palette is full")

	// ErrIndexOutOfRange is returned when an index does not name an existing swatch.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCount is returned by Generate for a non-positive count.
	ErrInvalidCount = errors.New("count must be a positive integer")
)

// Swatch is one palette entry. Locked swatches survive regeneration.
type Swatch struct {
	Color  colour.Hex `json:"color"`
	Locked bool       `json:"locked"`
}

// Palette is an ordered list of swatches. Order is display and export order.
type Palette []Swatch

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Colors returns the palette's colours in order.
func (p Palette) Colors() []colour.Hex {
	out := make([]colour.Hex, len(p))
	for i, s := range p {
		out[i] = s.Color
	}
	return out
}

// Validate checks every swatch holds a parseable colour.
func (p Palette) Validate() error {
	for i, s := range p {
		if _, err := colour.ParseHex(string(s.Color)); err != nil {
			return fmt.Errorf("swatch %d: %w", i, err)
		}
	}
	return nil
}

func indexError(index, length int) error {
	return fmt.Errorf("%w: %d (palette has %d colours)", ErrIndexOutOfRange, index, length)
}
