package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmylchreest/swatch/internal/palette"
)

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir(), nil)

	saved, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if saved == nil || len(saved) != 0 {
		t.Errorf("Load() = %v, want empty non-nil list", saved)
	}
}

func TestLoadBlankFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SavedFile), []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	saved, err := New(dir, nil).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("Load() = %v, want empty", saved)
	}
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SavedFile), []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir, nil).Load(); err == nil {
		t.Error("Load() expected error for corrupt file")
	}
}

func TestAppend(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested"), nil)

	first := palette.Palette{{Color: "#FF0000"}, {Color: "#00FF00", Locked: true}}
	second := palette.Palette{{Color: "#0000FF"}}

	n, err := s.Append(first)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Append() count = %d, want 1", n)
	}
	if n, err = s.Append(second); err != nil || n != 2 {
		t.Fatalf("Append() = %d, %v; want 2, nil", n, err)
	}

	saved, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []palette.Palette{first, second}
	if diff := cmp.Diff(want, saved); diff != "" {
		t.Errorf("saved palettes mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendFormat(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	if _, err := s.Append(palette.Palette{{Color: "#ABCDEF"}}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SavedFile))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"color": "#ABCDEF"`, `"locked": false`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("saved file missing %s:\n%s", want, data)
		}
	}
}

func TestSession(t *testing.T) {
	s := New(t.TempDir(), nil)

	p, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if len(p) != 0 {
		t.Errorf("LoadSession() = %v, want empty", p)
	}

	want := palette.Palette{{Color: "#111111", Locked: true}, {Color: "#222222"}}
	if err := s.SaveSession(want); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	got, err := s.LoadSession()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionInvalidColour(t *testing.T) {
	dir := t.TempDir()
	body := `[{"color":"#12","locked":false}]`
	if err := os.WriteFile(filepath.Join(dir, SessionFile), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir, nil).LoadSession(); err == nil {
		t.Error("LoadSession() expected error for invalid colour")
	}
}

func TestNoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	if err := s.SaveSession(palette.Palette{{Color: "#000000"}}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != SessionFile {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected files: %v", names)
	}
}
