package orchestrator

// State is a phase of the interactive loop.
type State int

const (
	// AwaitingEntryPoint waits for a URL or a resume request.
	AwaitingEntryPoint State = iota
	// SessionActive lists the files of one session.
	SessionActive
	// Analyzing runs the analysis of one file.
	Analyzing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case AwaitingEntryPoint:
		return "awaiting-entry-point"
	case SessionActive:
		return "session-active"
	case Analyzing:
		return "analyzing"
	default:
		return "unknown"
	}
}

// Navigation is the outcome of a state handler.
type Navigation int

const (
	// NavContinue moves forward: into the chosen session, or back to the
	// file list after an analysis.
	NavContinue Navigation = iota
	// NavBack returns to AwaitingEntryPoint.
	NavBack
	// NavNew returns to AwaitingEntryPoint to enter a new URL.
	NavNew
	// NavQuit ends the loop.
	NavQuit
)

// String returns the navigation name.
func (n Navigation) String() string {
	switch n {
	case NavContinue:
		return "continue"
	case NavBack:
		return "back"
	case NavNew:
		return "new"
	case NavQuit:
		return "quit"
	default:
		return "unknown"
	}
}
