// Package pipeline runs the analysis cycle for one selected file as a
// sequence of steps: read and count, run the local checks, analyze, save the
// report, record the history entry. The local checks and history steps are
// optional.
//
// Steps share a *model.Analysis; each one reads what the previous steps
// filled in. The pipeline stops at the first failing step and returns its
// error, so a decoding failure or an analysis service error ends the cycle
// before anything is written.
package pipeline
