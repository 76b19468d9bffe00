package clipboard

import "testing"

func TestMemory(t *testing.T) {
	var m Memory
	if _, ok := m.Last(); ok {
		t.Error("Last() on empty Memory should report false")
	}

	_ = m.Copy("#FF0000")
	_ = m.Copy("#00FF00")

	got, ok := m.Last()
	if !ok || got != "#00FF00" {
		t.Errorf("Last() = %s, %v; want #00FF00, true", got, ok)
	}
	if len(m.Copied) != 2 {
		t.Errorf("Copied = %v, want 2 entries", m.Copied)
	}
}

var _ Writer = System{}
var _ Writer = (*Memory)(nil)
