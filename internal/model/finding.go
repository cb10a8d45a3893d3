package model

// Severity ranks a local finding on the same scale the analysis prompt asks
// the model to use.
type Severity int

// Severity levels, lowest first.
const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Finding is a match of a local pattern check in a file. The analysis
// verdict is free text; findings are the only structured output.
type Finding struct {
	// Check is the name of the pattern that matched, e.g. "openai_api_key".
	Check string

	// Title is a short human-readable label.
	Title string

	// Description explains why the match matters.
	Description string

	// Severity is the pattern's severity.
	Severity Severity

	// Value is the matched text with secret material redacted.
	Value string

	// Line is the 1-based line of the first match.
	Line int
}
