package palette

import (
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ColourSource supplies random colours to the engine.
type ColourSource interface {
	Random() colour.Hex
}

// Engine owns a palette and applies every mutation to it.
// It has a single writer; callers must not share an Engine across goroutines.
type Engine struct {
	palette Palette
	source  ColourSource
}

// New creates an engine with an empty palette.
// A nil source falls back to a crypto-seeded colour.Generator.
func New(source ColourSource) *Engine {
	if source == nil {
		source = colour.NewRandomGenerator()
	}
	return &Engine{source: source}
}

// FromPalette creates an engine that takes over a copy of p.
func FromPalette(p Palette, source ColourSource) *Engine {
	e := New(source)
	e.palette = p.Clone()
	return e
}

// Len returns the number of swatches.
func (e *Engine) Len() int {
	return len(e.palette)
}

// Swatches returns a copy of the current palette.
func (e *Engine) Swatches() Palette {
	return e.palette.Clone()
}

// At returns the swatch at index.
func (e *Engine) At(index int) (Swatch, error) {
	if err := e.checkIndex(index); err != nil {
		return Swatch{}, err
	}
	return e.palette[index], nil
}

// Generate fills an empty palette with count fresh swatches, or re-rolls
// every unlocked swatch of a populated one in place (count is then ignored).
//
// count is not clamped to MaxSwatches here; only Add enforces the bound.
func (e *Engine) Generate(count int) error {
	if len(e.palette) == 0 {
		if count <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCount, count)
		}
		p := make(Palette, count)
		for i := range p {
			p[i] = Swatch{Color: e.source.Random()}
		}
		e.palette = p
		return nil
	}

	for i, s := range e.palette {
		if s.Locked {
			continue
		}
		e.palette[i] = Swatch{Color: e.source.Random()}
	}
	return nil
}

// Add appends an unlocked swatch. The colour is normalised to "#RRGGBB".
func (e *Engine) Add(color string) error {
	if len(e.palette) >= MaxSwatches {
		return fmt.Errorf("%w: maximum %d colours allowed", ErrPaletteFull, MaxSwatches)
	}

	hex, err := colour.NormaliseHex(color)
	if err != nil {
		return err
	}

	e.palette = append(e.palette, Swatch{Color: hex})
	return nil
}

// Remove deletes the swatch at index, shifting later swatches down.
func (e *Engine) Remove(index int) error {
	if err := e.checkIndex(index); err != nil {
		return err
	}
	e.palette = append(e.palette[:index], e.palette[index+1:]...)
	return nil
}

// ToggleLock flips the locked flag of the swatch at index.
func (e *Engine) ToggleLock(index int) error {
	if err := e.checkIndex(index); err != nil {
		return err
	}
	e.palette[index].Locked = !e.palette[index].Locked
	return nil
}

// SetLock sets the locked flag of the swatch at index.
func (e *Engine) SetLock(index int, locked bool) error {
	if err := e.checkIndex(index); err != nil {
		return err
	}
	e.palette[index].Locked = locked
	return nil
}

// Ratings computes each swatch's contrast against background.
func (e *Engine) Ratings(background string) ([]colour.Rating, error) {
	ratings := make([]colour.Rating, len(e.palette))
	for i, s := range e.palette {
		r, err := colour.Rate(string(s.Color), background)
		if err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
		ratings[i] = r
	}
	return ratings, nil
}

func (e *Engine) checkIndex(index int) error {
	if index < 0 || index >= len(e.palette) {
		return indexError(index, len(e.palette))
	}
	return nil
}
