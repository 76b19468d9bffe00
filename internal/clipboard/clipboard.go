// Package clipboard copies colours to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Writer accepts a single colour.
type Writer interface {
	Copy(hex colour.Hex) error
}

// System writes to the OS clipboard.
type System struct{}

// Copy places hex on the system clipboard.
func (System) Copy(hex colour.Hex) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	if err := clipboard.WriteAll(string(hex)); err != nil {
		return fmt.Errorf("failed to copy %s: %w", hex, err)
	}
	return nil
}

// Memory records copied colours. Useful for tests and headless sessions.
type Memory struct {
	Copied []colour.Hex
}

// Copy records hex.
func (m *Memory) Copy(hex colour.Hex) error {
	m.Copied = append(m.Copied, hex)
	return nil
}

// Last returns the most recently copied colour.
func (m *Memory) Last() (colour.Hex, bool) {
	if len(m.Copied) == 0 {
		return "", false
	}
	return m.Copied[len(m.Copied)-1], true
}
