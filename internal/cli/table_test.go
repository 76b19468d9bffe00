package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Name", "Age", "City"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow([]string{"Alice", "30"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Fewer columns are padded.
	table.AddRow([]string{"Bob"})
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected padded row, got %q", table.rows[1])
	}

	// Extra columns are truncated.
	table.AddRow([]string{"Charlie", "25", "Extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"#", "Colour"})
	table.AddRow([]string{"1", "#FF0000"})
	table.AddRow([]string{"10", "#00FF00"})

	want := "#   Colour\n" +
		"--  -------\n" +
		"1   #FF0000\n" +
		"10  #00FF00\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderANSIWidth(t *testing.T) {
	table := NewTable([]string{"Swatch", "Hex"})
	table.AddRow([]string{"\033[48;2;255;0;0m  \033[0m", "#FF0000"})

	lines := strings.Split(strings.TrimSpace(table.Render()), "\n")
	if !strings.HasPrefix(lines[2], "\033[48;2;255;0;0m  \033[0m      #FF0000") {
		t.Errorf("ANSI cell not padded by display width: %q", lines[2])
	}
}

func TestTableRenderEmptyHeaders(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abcdef"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
