// Package orchestrator drives the interactive session loop.
//
// The loop has three states. AwaitingEntryPoint asks for a URL to fetch
// or "r" to resume an existing session. SessionActive lists the session's
// files ranked by token count and asks which one to analyze. Analyzing
// runs the analysis pipeline on the chosen file, shows the verdict and asks
// what to do next. Every handler returns an explicit Navigation value that
// decides the next state.
//
// Operator mistakes (bad numbers, unknown commands, a page that cannot be
// fetched) are reported and re-prompted. Anything else, such as a file that
// is not UTF-8 text or a failing analysis service, ends Run with an error.
package orchestrator
