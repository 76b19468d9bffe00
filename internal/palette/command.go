package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for an unrecognised verb.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a single user intent against the palette.
type Command interface {
	// Name returns the command verb (e.g., "generate", "add").
	Name() string

	apply(e *Engine) error
}

// GenerateCmd regenerates unlocked swatches, or fills an empty palette with Count.
type GenerateCmd struct {
	Count int
}

// AddCmd appends a colour.
type AddCmd struct {
	Color string
}

// RemoveCmd deletes the swatch at Index (0-based).
type RemoveCmd struct {
	Index int
}

// ToggleLockCmd flips the lock on the swatch at Index (0-based).
type ToggleLockCmd struct {
	Index int
}

// SetLockCmd sets the lock on the swatch at Index (0-based) to Locked.
type SetLockCmd struct {
	Index  int
	Locked bool
}

func (GenerateCmd) Name() string   { return "generate" }
func (AddCmd) Name() string        { return "add" }
func (RemoveCmd) Name() string     { return "remove" }
func (ToggleLockCmd) Name() string { return "toggle" }

func (c SetLockCmd) Name() string {
	if c.Locked {
		return "lock"
	}
	return "unlock"
}

func (c GenerateCmd) apply(e *Engine) error   { return e.Generate(c.Count) }
func (c AddCmd) apply(e *Engine) error        { return e.Add(c.Color) }
func (c RemoveCmd) apply(e *Engine) error     { return e.Remove(c.Index) }
func (c ToggleLockCmd) apply(e *Engine) error { return e.ToggleLock(c.Index) }
func (c SetLockCmd) apply(e *Engine) error    { return e.SetLock(c.Index, c.Locked) }

// Apply runs cmd against the engine. Errors are returned unchanged.
func (e *Engine) Apply(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: nil", ErrUnknownCommand)
	}
	return cmd.apply(e)
}

// ParseCommand turns a textual intent into a Command.
// Indices in text are 1-based, matching the numbering in exports.
//
//	generate [count]
//	add <hex>
//	remove <n>
//	lock <n>     (toggle)
//	unlock <n>
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrUnknownCommand)
	}

	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case "generate", "gen":
		if len(args) == 0 {
			return GenerateCmd{Count: DefaultCount}, nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCount, args[0])
		}
		return GenerateCmd{Count: n}, nil
	case "add":
		if len(args) != 1 {
			return nil, fmt.Errorf("add: expected one colour, got %d arguments", len(args))
		}
		return AddCmd{Color: args[0]}, nil
	case "remove", "rm":
		idx, err := parsePosition(verb, args)
		if err != nil {
			return nil, err
		}
		return RemoveCmd{Index: idx}, nil
	case "lock", "toggle":
		idx, err := parsePosition(verb, args)
		if err != nil {
			return nil, err
		}
		return ToggleLockCmd{Index: idx}, nil
	case "unlock":
		idx, err := parsePosition(verb, args)
		if err != nil {
			return nil, err
		}
		return SetLockCmd{Index: idx, Locked: false}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
	}
}

// parsePosition converts a 1-based position argument to a 0-based index.
func parsePosition(verb string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: expected one position, got %d arguments", verb, len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: invalid position %q: %w", verb, args[0], err)
	}
	return n - 1, nil
}
