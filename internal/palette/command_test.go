package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr error
	}{
		{line: "generate", want: GenerateCmd{Count: DefaultCount}},
		{line: "gen 7", want: GenerateCmd{Count: 7}},
		{line: "generate 0", wantErr: ErrInvalidCount},
		{line: "add #ff0000", want: AddCmd{Color: "#ff0000"}},
		{line: "remove 1", want: RemoveCmd{Index: 0}},
		{line: "  LOCK   3 ", want: ToggleLockCmd{Index: 2}},
		{line: "toggle 1", want: ToggleLockCmd{Index: 0}},
		{line: "unlock 2", want: SetLockCmd{Index: 1, Locked: false}},
		{line: "undo", wantErr: ErrUnknownCommand},
		{line: "", wantErr: ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCommand(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand(%q) unexpected error: %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCommand(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseCommandBadArgs(t *testing.T) {
	for _, line := range []string{"add", "add #000000 #FFFFFF", "remove", "remove x", "lock 1 2"} {
		if _, err := ParseCommand(line); err == nil {
			t.Errorf("ParseCommand(%q) expected error", line)
		}
	}
}

func TestApply(t *testing.T) {
	e := newTestEngine(nil)

	steps := []Command{
		GenerateCmd{Count: DefaultCount},
		AddCmd{Color: "#ff0000"},
		ToggleLockCmd{Index: 5},
		RemoveCmd{Index: 0},
	}
	for _, cmd := range steps {
		if err := e.Apply(cmd); err != nil {
			t.Fatalf("Apply(%s) error = %v", cmd.Name(), err)
		}
	}

	want := Palette{
		{Color: "#000002"},
		{Color: "#000003"},
		{Color: "#000004"},
		{Color: "#000005"},
		{Color: "#FF0000", Locked: true},
	}
	if diff := cmp.Diff(want, e.Swatches()); diff != "" {
		t.Errorf("unexpected palette (-want +got):\n%s", diff)
	}
}

func TestApplyGenerateNeedsPositiveCount(t *testing.T) {
	for _, count := range []int{0, -3} {
		e := newTestEngine(nil)
		if err := e.Apply(GenerateCmd{Count: count}); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Apply(GenerateCmd{Count: %d}) error = %v, want ErrInvalidCount", count, err)
		}
		if e.Len() != 0 {
			t.Errorf("Apply(GenerateCmd{Count: %d}) left %d swatches, want 0", count, e.Len())
		}
	}
}

func TestApplyUnlockIsIdempotent(t *testing.T) {
	e := newTestEngine(Palette{{Color: "#AAAAAA", Locked: true}, {Color: "#BBBBBB"}})

	for _, line := range []string{"unlock 1", "unlock 1", "unlock 2"} {
		cmd, err := ParseCommand(line)
		if err != nil {
			t.Fatalf("ParseCommand(%q) error = %v", line, err)
		}
		if err := e.Apply(cmd); err != nil {
			t.Fatalf("Apply(%q) error = %v", line, err)
		}
	}

	want := Palette{{Color: "#AAAAAA"}, {Color: "#BBBBBB"}}
	if diff := cmp.Diff(want, e.Swatches()); diff != "" {
		t.Errorf("unexpected palette (-want +got):\n%s", diff)
	}
}

func TestApplyErrors(t *testing.T) {
	e := newTestEngine(nil)
	if err := e.Apply(RemoveCmd{Index: 0}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Apply(remove) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := e.Apply(nil); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Apply(nil) error = %v, want ErrUnknownCommand", err)
	}
}
