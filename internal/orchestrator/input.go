package orchestrator

import (
	"strconv"
	"strings"
)

// InputKind classifies one line of operator input.
type InputKind int

const (
	// InputInvalid is anything that is not a command or a number.
	InputInvalid InputKind = iota
	// InputIndex is an integer; range checks are left to the caller.
	InputIndex
	// InputResume is "r".
	InputResume
	// InputContinue is "c".
	InputContinue
	// InputBack is "b".
	InputBack
	// InputNew is "n".
	InputNew
	// InputQuit is "q".
	InputQuit
)

// String returns the kind name.
func (k InputKind) String() string {
	switch k {
	case InputIndex:
		return "index"
	case InputResume:
		return "resume"
	case InputContinue:
		return "continue"
	case InputBack:
		return "back"
	case InputNew:
		return "new"
	case InputQuit:
		return "quit"
	default:
		return "invalid"
	}
}

// Input is a parsed line of operator input.
type Input struct {
	Kind InputKind

	// Index is the parsed number when Kind is InputIndex.
	Index int

	// Raw is the trimmed line as typed.
	Raw string
}

// ParseInput classifies s. Commands are single letters matched
// case-insensitively; surrounding spaces are ignored.
func ParseInput(s string) Input {
	raw := strings.TrimSpace(s)
	in := Input{Kind: InputInvalid, Raw: raw}

	switch strings.ToLower(raw) {
	case "r":
		in.Kind = InputResume
	case "c":
		in.Kind = InputContinue
	case "b":
		in.Kind = InputBack
	case "n":
		in.Kind = InputNew
	case "q":
		in.Kind = InputQuit
	default:
		if n, err := strconv.Atoi(raw); err == nil {
			in.Kind = InputIndex
			in.Index = n
		}
	}
	return in
}

// InRange reports whether the input is an index between 1 and n.
func (in Input) InRange(n int) bool {
	return in.Kind == InputIndex && in.Index >= 1 && in.Index <= n
}
